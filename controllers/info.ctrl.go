package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stablepay/stablepay.go/common"
	"github.com/stablepay/stablepay.go/lib/service"
)

// InfoController : Info controller struct
type InfoController struct {
	svc *service.PaylinkService
}

func NewInfoController(svc *service.PaylinkService) *InfoController {
	return &InfoController{svc: svc}
}

type InfoResponseBody struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Url           string `json:"url"`
	Chain         string `json:"chain"`
	TokenContract string `json:"token_contract"`
	TokenDecimals int    `json:"token_decimals"`
}

// Info godoc
// @Summary      Retrieve service info
// @Description  Returns branding and the token contract invoices are settled against
// @Accept       json
// @Produce      json
// @Tags         Info
// @Success      200  {object}  InfoResponseBody
// @Router       /v2/info [get]
func (controller *InfoController) Info(c echo.Context) error {
	branding := controller.svc.Config.Branding
	return c.JSON(http.StatusOK, &InfoResponseBody{
		Title:         branding.Title,
		Description:   branding.Desc,
		Url:           branding.Url,
		Chain:         controller.svc.Config.ChainName,
		TokenContract: controller.svc.Config.TokenContract,
		TokenDecimals: common.TokenDecimals,
	})
}
