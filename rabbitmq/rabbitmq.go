package rabbitmq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"

	"github.com/stablepay/stablepay.go/db/models"
)

// bufPool is a classic buffer pool pattern that allows more clever reuse of heap memory.
// Instead of allocating new memory everytime we need to encode an invoice we
// reuse buffers from this buffer pool. If we publish events sequentially there will
// only be one buffer in this pool at all times, but when scaling to multiple go
// routines this memory pool will scale with it.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

const (
	contentTypeJSON = "application/json"
)

type (
	SubscribeToInvoicesFunc   = func() (paid chan models.Invoice, unsubscribe func(), err error)
	EncodeOutgoingInvoiceFunc = func(ctx context.Context, w io.Writer, invoice models.Invoice) error
)

type Client interface {
	StartPublishInvoices(context.Context, SubscribeToInvoicesFunc, EncodeOutgoingInvoiceFunc) error
	// Close will close all connections to rabbitmq
	Close() error
}

type DefaultClient struct {
	conn *amqp.Connection

	publishChannel *amqp.Channel

	logger *lecho.Logger

	invoiceExchange string
}

type ClientOption = func(client *DefaultClient)

func WithInvoiceExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.invoiceExchange = exchange
	}
}

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

// Dial sets up a connection to rabbitmq with a channel that is ready to publish
func Dial(uri string, options ...ClientOption) (Client, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, err
	}

	publishChannel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	client := &DefaultClient{
		conn: conn,

		publishChannel: publishChannel,

		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),

		invoiceExchange: "stablepay_invoice",
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (client *DefaultClient) Close() error { return client.conn.Close() }

// StartPublishInvoices drains the subscription returned by
// invoicesSubscribeFunc into the invoice exchange until the context is
// canceled.
func (client *DefaultClient) StartPublishInvoices(ctx context.Context, invoicesSubscribeFunc SubscribeToInvoicesFunc, payloadFunc EncodeOutgoingInvoiceFunc) error {
	err := client.publishChannel.ExchangeDeclare(
		client.invoiceExchange,
		// topic is a type of exchange that allows routing messages to different queue's bases on a routing key
		"topic",
		// Durable and Non-Auto-Deleted exchanges will survive server restarts and remain
		// declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchange's accept direct publishing
		false,
		// Nowait: We set this to false as we want to wait for a server response
		// to check whether the exchange was created succesfully
		false,
		nil,
	)
	if err != nil {
		return err
	}

	client.logger.Info("Starting rabbitmq invoice publisher")

	paidInvoices, unsubscribe, err := invoicesSubscribeFunc()
	if err != nil {
		return err
	}
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return context.Canceled
		case invoice, ok := <-paidInvoices:
			if !ok {
				return fmt.Errorf("invoice channel was closed")
			}
			err := client.publishInvoice(ctx, invoice, payloadFunc)
			if err != nil {
				client.logger.Error(err)
				sentry.CaptureException(err)
			}
		}
	}
}

func (client *DefaultClient) publishInvoice(ctx context.Context, invoice models.Invoice, payloadFunc EncodeOutgoingInvoiceFunc) error {
	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	err := payloadFunc(ctx, payload, invoice)
	if err != nil {
		return err
	}

	key := routingKey(invoice)
	client.logger.Debugf("Publishing invoice %s with routing key %s", invoice.ID, key)

	return client.publishChannel.PublishWithContext(ctx,
		client.invoiceExchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			Body:        payload.Bytes(),
		},
	)
}

func routingKey(invoice models.Invoice) string {
	return fmt.Sprintf("invoice.%s.%s", strings.ToLower(invoice.Status), strings.ToLower(invoice.Currency))
}
