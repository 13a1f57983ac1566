package usdc

import (
	"context"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"

	"github.com/stablepay/stablepay.go/common"
	"github.com/stablepay/stablepay.go/db/models"
)

// InvoiceStore is the slice of the invoice store the reconciler needs.
type InvoiceStore interface {
	// PendingInvoicesForWallet returns a wallet's PENDING invoices in
	// creation order.
	PendingInvoicesForWallet(ctx context.Context, wallet string) ([]models.Invoice, error)
	// MarkInvoicePaid flips a PENDING invoice to PAID. It reports false
	// when the row was no longer PENDING, which is not an error: another
	// delivery got there first.
	MarkInvoicePaid(ctx context.Context, invoiceID string) (bool, error)
}

type OnInvoicePaidFunc = func(invoice models.Invoice, event TransferEvent)

// Reconciler applies incoming webhook deliveries to the invoice store.
// One Reconciler is shared between concurrent deliveries; all its state
// is read-only after construction.
type Reconciler struct {
	store   InvoiceStore
	decoder *Decoder
	logger  *lecho.Logger
	onPaid  OnInvoicePaidFunc
}

type ReconcilerOption = func(r *Reconciler)

func WithLogger(logger *lecho.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithOnInvoicePaid registers a callback invoked after an invoice has been
// settled, with the settled invoice and the transfer that settled it.
func WithOnInvoicePaid(fn OnInvoicePaidFunc) ReconcilerOption {
	return func(r *Reconciler) {
		r.onPaid = fn
	}
}

func NewReconciler(store InvoiceStore, tokenContract string, options ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		store:   store,
		decoder: NewDecoder(tokenContract),

		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.INFO),
			lecho.WithTimestamp(),
		),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// ProcessPayload handles one webhook delivery. A body that does not parse
// into the expected shape is acknowledged as ignored; the sender is never
// signaled of per-log skips, so it has no reason to retry-storm us.
func (r *Reconciler) ProcessPayload(ctx context.Context, body []byte) (paid int, ignored bool) {
	payload, err := ParsePayload(body)
	if err != nil {
		r.logger.Errorf("Could not decode webhook body: %v", err)
		return 0, true
	}
	logs := payload.Logs()
	if len(logs) == 0 {
		r.logger.Info("Webhook delivery contained no logs")
		return 0, true
	}
	return r.ProcessLogs(ctx, logs), false
}

// ProcessLogs runs the per-log reconciliation strictly in order: a later
// log may target an invoice an earlier log in the same batch just settled.
// One record's skip or failure never aborts the batch.
func (r *Reconciler) ProcessLogs(ctx context.Context, logs []Log) (paid int) {
	for _, l := range logs {
		event, skip := r.decoder.Decode(l)
		if skip != SkipNone {
			r.logger.Debugf("Skipping log for contract %s: %s", l.Account.Address, skip)
			continue
		}
		if r.reconcile(ctx, event) {
			paid++
		}
	}
	return paid
}

func (r *Reconciler) reconcile(ctx context.Context, event TransferEvent) bool {
	wallet := strings.ToLower(event.To)

	pending, err := r.store.PendingInvoicesForWallet(ctx, wallet)
	if err != nil {
		r.logger.Errorf("Failed to load pending invoices for wallet %s: %v", wallet, err)
		sentry.CaptureException(err)
		return false
	}
	if len(pending) == 0 {
		r.logger.Debugf("No pending invoices for wallet %s", wallet)
		return false
	}

	invoice, found := MatchInvoice(event.Amount, pending)
	if !found {
		r.logger.Infof("No invoice for wallet %s matches amount %s", wallet, event.Amount)
		return false
	}

	// The query above only returns PENDING rows, but the row may have
	// been settled between the select and the update.
	if invoice.Status == common.InvoiceStatusPaid {
		r.logger.Infof("Invoice %s already paid, skipping", invoice.ID)
		return false
	}

	updated, err := r.store.MarkInvoicePaid(ctx, invoice.ID)
	if err != nil {
		r.logger.Errorf("Failed to mark invoice %s paid: %v", invoice.ID, err)
		sentry.CaptureException(err)
		return false
	}
	if !updated {
		r.logger.Infof("Invoice %s was settled concurrently, skipping", invoice.ID)
		return false
	}

	r.logger.Infof("Invoice %s settled by transfer of %s from %s", invoice.ID, event.Amount, event.From)

	if r.onPaid != nil {
		invoice.Status = common.InvoiceStatusPaid
		r.onPaid(invoice, event)
	}
	return true
}
