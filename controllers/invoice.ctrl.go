package controllers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/stablepay/stablepay.go/common"
	"github.com/stablepay/stablepay.go/db/models"
	"github.com/stablepay/stablepay.go/lib/responses"
	"github.com/stablepay/stablepay.go/lib/service"
)

// InvoiceController : Invoice controller struct
type InvoiceController struct {
	svc *service.PaylinkService
}

func NewInvoiceController(svc *service.PaylinkService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

type AddInvoiceRequestBody struct {
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	Currency       string          `json:"currency" validate:"required,alpha,len=3"`
	Memo           string          `json:"memo"`
	MerchantWallet string          `json:"merchant_wallet" validate:"required,eth_addr"`
}

type Invoice struct {
	ID             string          `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Memo           string          `json:"memo,omitempty"`
	MerchantWallet string          `json:"merchant_wallet"`
	Status         string          `json:"status"`
	PaymentLink    string          `json:"payment_link"`
	CreatedAt      time.Time       `json:"created_at"`
	SettledAt      time.Time       `json:"settled_at,omitempty"`
	IsPaid         bool            `json:"is_paid"`
}

type GetInvoicesResponseBody struct {
	Invoices []Invoice `json:"invoices"`
}

func invoiceResponse(invoice *models.Invoice) Invoice {
	return Invoice{
		ID:             invoice.ID,
		Amount:         invoice.Amount,
		Currency:       invoice.Currency,
		Memo:           invoice.Memo,
		MerchantWallet: invoice.MerchantWallet,
		Status:         invoice.Status,
		PaymentLink:    invoice.PaymentLink,
		CreatedAt:      invoice.CreatedAt,
		SettledAt:      invoice.SettledAt.Time,
		IsPaid:         invoice.Status == common.InvoiceStatusPaid,
	}
}

// AddInvoice godoc
// @Summary      Create an invoice
// @Description  Returns a new invoice with a payment link
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Param        invoice  body      AddInvoiceRequestBody  True  "Create Invoice"
// @Success      200      {object}  Invoice
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /v2/invoices [post]
func (controller *InvoiceController) AddInvoice(c echo.Context) error {
	var body AddInvoiceRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if !body.Amount.IsPositive() {
		c.Logger().Errorf("Invoice amount must be positive: %s", body.Amount)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.CreateInvoice(c.Request().Context(), body.Amount, body.Currency, body.Memo, body.MerchantWallet)
	if err != nil {
		c.Logger().Errorf("Failed to create invoice: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	response := invoiceResponse(invoice)
	return c.JSON(http.StatusOK, &response)
}

// GetInvoice godoc
// @Summary      Retrieve an invoice
// @Description  Returns a single invoice by id
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Param        invoice_id  path      string  true  "Invoice ID"
// @Success      200         {object}  Invoice
// @Failure      404         {object}  responses.ErrorResponse
// @Failure      500         {object}  responses.ErrorResponse
// @Router       /v2/invoices/{invoice_id} [get]
func (controller *InvoiceController) GetInvoice(c echo.Context) error {
	invoice, err := controller.svc.FindInvoice(c.Request().Context(), c.Param("invoice_id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, responses.InvoiceNotFoundError)
		}
		return err
	}

	response := invoiceResponse(invoice)
	return c.JSON(http.StatusOK, &response)
}

// GetInvoices godoc
// @Summary      Retrieve all invoices
// @Description  Returns all invoices, newest first
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Success      200  {object}  GetInvoicesResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/invoices [get]
func (controller *InvoiceController) GetInvoices(c echo.Context) error {
	invoices, err := controller.svc.ListInvoices(c.Request().Context())
	if err != nil {
		return err
	}

	response := make([]Invoice, len(invoices))
	for i, invoice := range invoices {
		invoice := invoice
		response[i] = invoiceResponse(&invoice)
	}
	return c.JSON(http.StatusOK, &GetInvoicesResponseBody{Invoices: response})
}
