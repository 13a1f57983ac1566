package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"

	"github.com/stablepay/stablepay.go/db/models"
	"github.com/stablepay/stablepay.go/usdc"
)

// PublishPaidInvoice fans a settled invoice out to the in-process
// subscribers (the webhook poster and the rabbitmq publisher). It is
// wired into the reconciler as its on-paid callback.
func (svc *PaylinkService) PublishPaidInvoice(invoice models.Invoice, event usdc.TransferEvent) {
	svc.InvoicePubSub.Publish(TopicInvoicePaid, invoice)
}

// StartWebhookSubscription posts every settled invoice to the configured
// webhook url until the context is canceled.
func (svc *PaylinkService) StartWebhookSubscription(ctx context.Context, url string) {
	svc.Logger.Infof("Starting webhook subscription with webhook url %s", url)

	paidInvoices := make(chan models.Invoice)
	subId, err := svc.InvoicePubSub.Subscribe(TopicInvoicePaid, paidInvoices)
	if err != nil {
		svc.Logger.Errorf("Failed to subscribe to paid invoices: %v", err)
		return
	}
	for {
		select {
		case <-ctx.Done():
			svc.InvoicePubSub.Unsubscribe(subId, TopicInvoicePaid)
			return
		case invoice := <-paidInvoices:
			svc.postToWebhook(invoice, url)
		}
	}
}

func (svc *PaylinkService) postToWebhook(invoice models.Invoice, url string) {
	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(invoice)
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	// the receiver gets a few chances, the invoice state itself is
	// already persisted so nothing is lost if we give up
	err = backoff.Retry(func() error {
		resp, err := http.Post(url, "application/json", bytes.NewReader(payload.Bytes()))
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			msg, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			return fmt.Errorf("webhook status code was %d, body: %s", resp.StatusCode, msg)
		}
		return nil
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		svc.Logger.Errorf("Failed to deliver webhook for invoice %s: %v", invoice.ID, err)
	}
}
