package rabbitmq

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stablepay/stablepay.go/common"
	"github.com/stablepay/stablepay.go/db/models"
)

func TestRoutingKey(t *testing.T) {
	invoice := models.Invoice{
		ID:       "INV-1",
		Amount:   decimal.RequireFromString("25.00"),
		Currency: "USD",
		Status:   common.InvoiceStatusPaid,
	}

	assert.Equal(t, "invoice.paid.usd", routingKey(invoice))
}
