package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var InvoiceNotFoundError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "invoice not found",
	HttpStatusCode: 404,
}

var InvalidWalletError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "invalid merchant wallet address",
	HttpStatusCode: 400,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		c.JSON(code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// isErrAllowedForSentry filters lookups of invoices that simply don't
// exist, those are expected and would drown out real exceptions.
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	return he.Code != http.StatusNotFound
}
