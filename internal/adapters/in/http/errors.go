package http

import (
	"errors"
	"net/http"

	"spotserve/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFromError translates application error kinds into HTTP status codes.
// Unrecognized errors become 500 so internals never leak to clients.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStatusConflict),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPaymentProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}
