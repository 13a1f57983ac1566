package responses

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorsNotAllowedForSentry(t *testing.T) {
	notFoundErrResponse := echo.NewHTTPError(http.StatusNotFound, echo.Map{
		"error":   true,
		"code":    2,
		"message": "invoice not found",
	})

	isAllowed := isErrAllowedForSentry(notFoundErrResponse)
	assert.False(t, isAllowed)
}

func TestOtherHTTPErrorsAllowedForSentry(t *testing.T) {
	badRequestErrResponse := echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"error":   true,
		"code":    8,
		"message": "Bad arguments",
	})

	isAllowed := isErrAllowedForSentry(badRequestErrResponse)
	assert.True(t, isAllowed)
}

func TestNonErrorResponseErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	isAllowed := isErrAllowedForSentry(err)
	assert.True(t, isAllowed)
}
