package usdc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stablepay/stablepay.go/common"
	"github.com/stablepay/stablepay.go/db/models"
)

// fakeInvoiceStore is an in-memory InvoiceStore.
type fakeInvoiceStore struct {
	invoices  []*models.Invoice
	selectErr error
	updates   int
}

func (s *fakeInvoiceStore) PendingInvoicesForWallet(ctx context.Context, wallet string) ([]models.Invoice, error) {
	if s.selectErr != nil {
		err := s.selectErr
		s.selectErr = nil
		return nil, err
	}
	pending := []models.Invoice{}
	for _, invoice := range s.invoices {
		if invoice.MerchantWallet == strings.ToLower(wallet) && invoice.Status == common.InvoiceStatusPending {
			pending = append(pending, *invoice)
		}
	}
	return pending, nil
}

func (s *fakeInvoiceStore) MarkInvoicePaid(ctx context.Context, invoiceID string) (bool, error) {
	for _, invoice := range s.invoices {
		if invoice.ID == invoiceID && invoice.Status == common.InvoiceStatusPending {
			invoice.Status = common.InvoiceStatusPaid
			s.updates++
			return true, nil
		}
	}
	return false, nil
}

func storeWithInvoice(id, wallet, amount string) *fakeInvoiceStore {
	return &fakeInvoiceStore{
		invoices: []*models.Invoice{
			{
				ID:             id,
				Amount:         decimal.RequireFromString(amount),
				MerchantWallet: wallet,
				Status:         common.InvoiceStatusPending,
			},
		},
	}
}

func TestReconcileMarksInvoicePaid(t *testing.T) {
	store := storeWithInvoice("INV-1", merchantAddress, "25.00")

	var paidInvoice models.Invoice
	reconciler := NewReconciler(store, testTokenContract, WithOnInvoicePaid(func(invoice models.Invoice, event TransferEvent) {
		paidInvoice = invoice
	}))

	// raw 25000000 = 25 USDC
	paid := reconciler.ProcessLogs(context.Background(), []Log{
		transferLog(testTokenContract, senderAddress, merchantAddress, "0x17d7840"),
	})

	assert.Equal(t, 1, paid)
	assert.Equal(t, common.InvoiceStatusPaid, store.invoices[0].Status)
	assert.Equal(t, "INV-1", paidInvoice.ID)
	assert.Equal(t, common.InvoiceStatusPaid, paidInvoice.Status)
}

func TestReconcileIsIdempotent(t *testing.T) {
	store := storeWithInvoice("INV-1", merchantAddress, "25.00")
	reconciler := NewReconciler(store, testTokenContract)

	logs := []Log{transferLog(testTokenContract, senderAddress, merchantAddress, "0x17d7840")}

	assert.Equal(t, 1, reconciler.ProcessLogs(context.Background(), logs))
	// the second delivery of the same transfer is a no-op, not an error
	assert.Equal(t, 0, reconciler.ProcessLogs(context.Background(), logs))
	assert.Equal(t, 1, store.updates)
}

func TestReconcileSkipsWrongContract(t *testing.T) {
	store := storeWithInvoice("INV-1", merchantAddress, "25.00")
	reconciler := NewReconciler(store, testTokenContract)

	paid := reconciler.ProcessLogs(context.Background(), []Log{
		transferLog("0x4200000000000000000000000000000000000006", senderAddress, merchantAddress, "0x17d7840"),
	})

	assert.Equal(t, 0, paid)
	assert.Equal(t, common.InvoiceStatusPending, store.invoices[0].Status)
}

func TestReconcileSkipsUnknownWallet(t *testing.T) {
	store := &fakeInvoiceStore{}
	reconciler := NewReconciler(store, testTokenContract)

	paid := reconciler.ProcessLogs(context.Background(), []Log{
		transferLog(testTokenContract, senderAddress, merchantAddress, "0x17d7840"),
	})

	assert.Equal(t, 0, paid)
	assert.Equal(t, 0, store.updates)
}

func TestReconcileSkipsAmountMismatch(t *testing.T) {
	store := storeWithInvoice("INV-1", merchantAddress, "26.00")
	reconciler := NewReconciler(store, testTokenContract)

	paid := reconciler.ProcessLogs(context.Background(), []Log{
		transferLog(testTokenContract, senderAddress, merchantAddress, "0x17d7840"),
	})

	assert.Equal(t, 0, paid)
	assert.Equal(t, common.InvoiceStatusPending, store.invoices[0].Status)
}

func TestReconcileStoreErrorDoesNotAbortBatch(t *testing.T) {
	store := storeWithInvoice("INV-1", merchantAddress, "25.00")
	store.selectErr = errors.New("connection reset")
	reconciler := NewReconciler(store, testTokenContract)

	// the first record hits the store error, the second one still settles
	paid := reconciler.ProcessLogs(context.Background(), []Log{
		transferLog(testTokenContract, senderAddress, merchantAddress, "0x17d7840"),
		transferLog(testTokenContract, senderAddress, merchantAddress, "0x17d7840"),
	})

	assert.Equal(t, 1, paid)
	assert.Equal(t, common.InvoiceStatusPaid, store.invoices[0].Status)
}

func TestIntraBatchSettlementOfTwoInvoices(t *testing.T) {
	store := storeWithInvoice("INV-1", merchantAddress, "25.00")
	store.invoices = append(store.invoices, &models.Invoice{
		ID:             "INV-2",
		Amount:         decimal.RequireFromString("25.00"),
		MerchantWallet: merchantAddress,
		Status:         common.InvoiceStatusPending,
	})
	reconciler := NewReconciler(store, testTokenContract)

	// two equal transfers in one batch settle two equal invoices in order
	paid := reconciler.ProcessLogs(context.Background(), []Log{
		transferLog(testTokenContract, senderAddress, merchantAddress, "0x17d7840"),
		transferLog(testTokenContract, senderAddress, merchantAddress, "0x17d7840"),
	})

	assert.Equal(t, 2, paid)
	assert.Equal(t, common.InvoiceStatusPaid, store.invoices[0].Status)
	assert.Equal(t, common.InvoiceStatusPaid, store.invoices[1].Status)
}

func TestProcessPayloadMalformedBodyIsIgnored(t *testing.T) {
	store := storeWithInvoice("INV-1", merchantAddress, "25.00")
	reconciler := NewReconciler(store, testTokenContract)

	paid, ignored := reconciler.ProcessPayload(context.Background(), []byte("not json"))
	assert.True(t, ignored)
	assert.Equal(t, 0, paid)

	paid, ignored = reconciler.ProcessPayload(context.Background(), []byte(`{"event":{}}`))
	assert.True(t, ignored)
	assert.Equal(t, 0, paid)
	assert.Equal(t, common.InvoiceStatusPending, store.invoices[0].Status)
}

func TestProcessPayloadEndToEnd(t *testing.T) {
	store := storeWithInvoice("INV-1", merchantAddress, "25.00")
	reconciler := NewReconciler(store, testTokenContract)

	body := []byte(`{
		"webhookId": "wh_test",
		"event": {"data": {"block": {"logs": [{
			"account": {"address": "` + testTokenContract + `"},
			"topics": [
				"` + transferEventTopic + `",
				"` + paddedTopic(senderAddress) + `",
				"` + paddedTopic(merchantAddress) + `"
			],
			"data": "0x17d7840"
		}]}}}
	}`)

	paid, ignored := reconciler.ProcessPayload(context.Background(), body)
	assert.False(t, ignored)
	assert.Equal(t, 1, paid)
	assert.Equal(t, common.InvoiceStatusPaid, store.invoices[0].Status)
}
