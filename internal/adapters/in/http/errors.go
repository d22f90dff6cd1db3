package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps domain and application errors onto HTTP status codes.
// Validation failures are client errors; contention on stock, drivers, and
// unique keys is a conflict; everything unrecognized is a server error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateKey),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrDriverUnavailable),
		errors.Is(err, errs.ErrInvariantViolation),
		errors.Is(err, commands.ErrStockItemInUse),
		errors.Is(err, order.ErrOrderIsTerminal):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the uniform error payload for err.
func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// respondBadRequest writes a 400 with the given message.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
