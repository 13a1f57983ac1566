package transport

import (
	"github.com/labstack/echo/v4"

	"github.com/stablepay/stablepay.go/controllers"
	"github.com/stablepay/stablepay.go/lib/service"
	"github.com/stablepay/stablepay.go/usdc"
)

func RegisterEndpoints(svc *service.PaylinkService, e *echo.Echo, reconciler *usdc.Reconciler, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	invoiceCtrl := controllers.NewInvoiceController(svc)
	qrCtrl := controllers.NewQrController(svc)
	webhookCtrl := controllers.NewWebhookController(reconciler)

	e.POST("/v2/invoices", invoiceCtrl.AddInvoice, strictRateLimitMiddleware, logMw)
	e.GET("/v2/invoices", invoiceCtrl.GetInvoices, logMw)
	e.GET("/v2/invoices/:invoice_id", invoiceCtrl.GetInvoice, logMw)
	e.GET("/v2/invoices/:invoice_id/qr", qrCtrl.InvoiceQr, logMw)

	// payment status must stay fresh, only the static info endpoint is cached
	cacheClient := CreateCacheClient()
	e.GET("/v2/info", controllers.NewInfoController(svc).Info, echo.WrapMiddleware(cacheClient.Middleware), logMw)

	e.POST("/webhooks/alchemy", webhookCtrl.HandleTokenTransfers, logMw)
	e.GET("/health", controllers.NewHealthController().Check)
}
