package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stablepay/stablepay.go/common"
	"github.com/stablepay/stablepay.go/db/models"
	"github.com/stablepay/stablepay.go/usdc"
)

const (
	testTokenContract  = "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"
	transferEventTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
	testSender         = "0x5afe003925666402ae58f277e03158891e8a11ce"
	testMerchant       = "0xabcabcabcabcabcabcabcabcabcabcabcabcabc0"
)

type memoryStore struct {
	invoices []*models.Invoice
}

func (s *memoryStore) PendingInvoicesForWallet(ctx context.Context, wallet string) ([]models.Invoice, error) {
	pending := []models.Invoice{}
	for _, invoice := range s.invoices {
		if invoice.MerchantWallet == strings.ToLower(wallet) && invoice.Status == common.InvoiceStatusPending {
			pending = append(pending, *invoice)
		}
	}
	return pending, nil
}

func (s *memoryStore) MarkInvoicePaid(ctx context.Context, invoiceID string) (bool, error) {
	for _, invoice := range s.invoices {
		if invoice.ID == invoiceID && invoice.Status == common.InvoiceStatusPending {
			invoice.Status = common.InvoiceStatusPaid
			return true, nil
		}
	}
	return false, nil
}

func paddedTopic(address string) string {
	return "0x" + strings.Repeat("0", 24) + strings.TrimPrefix(address, "0x")
}

func webhookBody(contract, dataHex string) string {
	return `{
		"webhookId": "wh_test",
		"event": {"data": {"block": {"logs": [{
			"account": {"address": "` + contract + `"},
			"topics": [
				"` + transferEventTopic + `",
				"` + paddedTopic(testSender) + `",
				"` + paddedTopic(testMerchant) + `"
			],
			"data": "` + dataHex + `"
		}]}}}
	}`
}

func performWebhookRequest(store *memoryStore, body string) (*httptest.ResponseRecorder, WebhookResponseBody) {
	e := echo.New()
	reconciler := usdc.NewReconciler(store, testTokenContract)
	e.POST("/webhooks/alchemy", NewWebhookController(reconciler).HandleTokenTransfers)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/alchemy", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	response := WebhookResponseBody{}
	json.Unmarshal(rec.Body.Bytes(), &response)
	return rec, response
}

func pendingStore(amount string) *memoryStore {
	return &memoryStore{
		invoices: []*models.Invoice{
			{
				ID:             "INV-TEST123",
				Amount:         decimal.RequireFromString(amount),
				MerchantWallet: testMerchant,
				Status:         common.InvoiceStatusPending,
			},
		},
	}
}

func TestWebhookSettlesMatchingInvoice(t *testing.T) {
	store := pendingStore("25.00")

	// raw 25000000 decodes to 25.0 USDC
	rec, response := performWebhookRequest(store, webhookBody(testTokenContract, "0x17d7840"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, common.InvoiceStatusPaid, store.invoices[0].Status)
}

func TestWebhookIgnoresOtherTokenContracts(t *testing.T) {
	store := pendingStore("25.00")

	rec, response := performWebhookRequest(store, webhookBody("0x4200000000000000000000000000000000000006", "0x17d7840"))

	// the record is skipped but the delivery is still acknowledged
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, common.InvoiceStatusPending, store.invoices[0].Status)
}

func TestWebhookWithoutPendingInvoices(t *testing.T) {
	store := &memoryStore{}

	rec, response := performWebhookRequest(store, webhookBody(testTokenContract, "0x17d7840"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", response.Status)
	assert.Empty(t, store.invoices)
}

func TestWebhookMalformedBodyIsAcknowledgedAsIgnored(t *testing.T) {
	store := pendingStore("25.00")

	rec, response := performWebhookRequest(store, "this is not json")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ignored", response.Status)
	assert.Equal(t, common.InvoiceStatusPending, store.invoices[0].Status)
}

func TestWebhookRedeliveryIsIdempotent(t *testing.T) {
	store := pendingStore("25.00")
	body := webhookBody(testTokenContract, "0x17d7840")

	_, first := performWebhookRequest(store, body)
	_, second := performWebhookRequest(store, body)

	assert.Equal(t, "ok", first.Status)
	assert.Equal(t, "ok", second.Status)
	assert.Equal(t, common.InvoiceStatusPaid, store.invoices[0].Status)
}
