package common

const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"

	// USDC carries 6 decimals on every chain it is issued on.
	TokenDecimals = 6
)
