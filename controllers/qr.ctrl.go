package controllers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/stablepay/stablepay.go/lib/responses"
	"github.com/stablepay/stablepay.go/lib/service"
)

// QrController : QR code controller struct
type QrController struct {
	svc *service.PaylinkService
}

func NewQrController(svc *service.PaylinkService) *QrController {
	return &QrController{svc: svc}
}

// InvoiceQr godoc
// @Summary      Render an invoice payment link as a QR code
// @Description  Returns a PNG QR code encoding the invoice's payment link
// @Produce      png
// @Tags         Invoice
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      200  {string}  binary  "PNG image"
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/invoices/{invoice_id}/qr [get]
func (controller *QrController) InvoiceQr(c echo.Context) error {
	invoice, err := controller.svc.FindInvoice(c.Request().Context(), c.Param("invoice_id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, responses.InvoiceNotFoundError)
		}
		return err
	}

	png, err := qrcode.Encode(invoice.PaymentLink, qrcode.Medium, 256)
	if err != nil {
		c.Logger().Errorf("Failed to encode QR code for invoice %s: %v", invoice.ID, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
