package controllers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stablepay/stablepay.go/usdc"
)

// WebhookController : Webhook controller struct
type WebhookController struct {
	reconciler *usdc.Reconciler
}

func NewWebhookController(reconciler *usdc.Reconciler) *WebhookController {
	return &WebhookController{reconciler: reconciler}
}

type WebhookResponseBody struct {
	Status string `json:"status"`
}

// HandleTokenTransfers godoc
// @Summary      Receive token transfer events
// @Description  Reconciles a batch of USDC transfer logs against pending invoices. Always acknowledges the delivery so the sender does not retry-storm on unmatched data.
// @Accept       json
// @Produce      json
// @Tags         Webhook
// @Success      200  {object}  WebhookResponseBody
// @Router       /webhooks/alchemy [post]
func (controller *WebhookController) HandleTokenTransfers(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		c.Logger().Errorf("Failed to read webhook body: %v", err)
		return c.JSON(http.StatusOK, &WebhookResponseBody{Status: "ignored"})
	}

	_, ignored := controller.reconciler.ProcessPayload(c.Request().Context(), body)
	if ignored {
		return c.JSON(http.StatusOK, &WebhookResponseBody{Status: "ignored"})
	}
	return c.JSON(http.StatusOK, &WebhookResponseBody{Status: "ok"})
}
