package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/stablepay/stablepay.go/db/models"
)

// SubscribePaidInvoices feeds the rabbitmq publisher from the in-process
// pubsub. The returned function tears the subscription down again.
func (svc *PaylinkService) SubscribePaidInvoices() (chan models.Invoice, func(), error) {
	paidInvoices := make(chan models.Invoice)
	subId, err := svc.InvoicePubSub.Subscribe(TopicInvoicePaid, paidInvoices)
	if err != nil {
		return nil, nil, err
	}
	return paidInvoices, func() {
		svc.InvoicePubSub.Unsubscribe(subId, TopicInvoicePaid)
	}, nil
}

func (svc *PaylinkService) EncodeInvoice(ctx context.Context, w io.Writer, invoice models.Invoice) error {
	return json.NewEncoder(w).Encode(invoice)
}
