package usdc

import (
	"github.com/shopspring/decimal"

	"github.com/stablepay/stablepay.go/db/models"
)

// Tolerance is the maximum discrepancy between an invoice amount and a
// transfer amount for the two to be considered matching. It absorbs
// rounding noise from the decimal conversion, it is not an underpayment
// allowance.
var Tolerance = decimal.New(1, -6)

// MatchInvoice returns the first invoice whose amount is within Tolerance
// of the transferred amount. First match in input order wins; when several
// pending invoices fall inside the tolerance window no closest-amount
// ranking is attempted.
func MatchInvoice(amount decimal.Decimal, invoices []models.Invoice) (models.Invoice, bool) {
	for _, invoice := range invoices {
		if invoice.Amount.Sub(amount).Abs().LessThanOrEqual(Tolerance) {
			return invoice, true
		}
	}
	return models.Invoice{}, false
}
