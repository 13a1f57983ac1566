package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stablepay/stablepay.go/common"
	"github.com/stablepay/stablepay.go/db/models"
)

// newInvoiceID returns an opaque invoice token, e.g. INV-90AF4C22B1.
// There is no semantic structure in the suffix.
func newInvoiceID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return "INV-" + strings.ToUpper(suffix)
}

func (svc *PaylinkService) PaymentLink(invoiceID string) string {
	return fmt.Sprintf("%s/?invoice_id=%s", strings.TrimSuffix(svc.Config.FrontendUrl, "/"), invoiceID)
}

func (svc *PaylinkService) CreateInvoice(ctx context.Context, amount decimal.Decimal, currency, memo, merchantWallet string) (*models.Invoice, error) {
	invoice := &models.Invoice{
		ID:             newInvoiceID(),
		Amount:         amount,
		Currency:       strings.ToUpper(currency),
		Memo:           memo,
		MerchantWallet: strings.ToLower(merchantWallet),
		Status:         common.InvoiceStatusPending,
	}
	invoice.PaymentLink = svc.PaymentLink(invoice.ID)

	if _, err := svc.DB.NewInsert().Model(invoice).Exec(ctx); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (svc *PaylinkService) FindInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice

	err := svc.DB.NewSelect().Model(&invoice).Where("invoice.id = ?", invoiceID).Limit(1).Scan(ctx)
	if err != nil {
		return &invoice, err
	}
	return &invoice, nil
}

func (svc *PaylinkService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}

	err := svc.DB.NewSelect().Model(&invoices).OrderExpr("created_at DESC").Scan(ctx)
	return invoices, err
}

// PendingInvoicesForWallet returns a wallet's PENDING invoices oldest
// first, which keeps the matcher's first-match tie-break deterministic.
func (svc *PaylinkService) PendingInvoicesForWallet(ctx context.Context, wallet string) ([]models.Invoice, error) {
	invoices := []models.Invoice{}

	err := svc.DB.NewSelect().Model(&invoices).
		Where("merchant_wallet = ? AND status = ?", strings.ToLower(wallet), common.InvoiceStatusPending).
		OrderExpr("created_at ASC").
		Scan(ctx)
	return invoices, err
}

// MarkInvoicePaid performs the conditional PENDING to PAID update. Zero
// rows affected means another delivery settled the invoice first, which
// the caller treats as already handled, not as an error.
func (svc *PaylinkService) MarkInvoicePaid(ctx context.Context, invoiceID string) (bool, error) {
	now := time.Now()

	res, err := svc.DB.NewUpdate().Model((*models.Invoice)(nil)).
		Set("status = ?", common.InvoiceStatusPaid).
		Set("settled_at = ?", now).
		Set("updated_at = ?", now).
		Where("id = ? AND status = ?", invoiceID, common.InvoiceStatusPending).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
