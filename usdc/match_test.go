package usdc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stablepay/stablepay.go/db/models"
)

func pendingInvoice(id, amount string) models.Invoice {
	return models.Invoice{
		ID:     id,
		Amount: decimal.RequireFromString(amount),
		Status: "PENDING",
	}
}

func TestMatchWithinTolerance(t *testing.T) {
	invoices := []models.Invoice{pendingInvoice("INV-1", "10.000000")}

	matched, found := MatchInvoice(decimal.RequireFromString("10.0000005"), invoices)
	assert.True(t, found)
	assert.Equal(t, "INV-1", matched.ID)
}

func TestNoMatchOutsideTolerance(t *testing.T) {
	invoices := []models.Invoice{pendingInvoice("INV-1", "10")}

	_, found := MatchInvoice(decimal.RequireFromString("10.01"), invoices)
	assert.False(t, found)
}

func TestMatchExactAmount(t *testing.T) {
	invoices := []models.Invoice{pendingInvoice("INV-1", "25.00")}

	matched, found := MatchInvoice(decimal.RequireFromString("25"), invoices)
	assert.True(t, found)
	assert.Equal(t, "INV-1", matched.ID)
}

func TestFirstMatchWinsOnTie(t *testing.T) {
	// both invoices fall inside the tolerance window, input order decides
	invoices := []models.Invoice{
		pendingInvoice("INV-1", "10.0000005"),
		pendingInvoice("INV-2", "10.000000"),
	}

	matched, found := MatchInvoice(decimal.RequireFromString("10.000000"), invoices)
	assert.True(t, found)
	assert.Equal(t, "INV-1", matched.ID)
}

func TestNoMatchOnEmptyInput(t *testing.T) {
	_, found := MatchInvoice(decimal.RequireFromString("10"), nil)
	assert.False(t, found)
}
