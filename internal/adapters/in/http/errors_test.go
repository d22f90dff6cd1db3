package http

import (
	"errors"
	"net/http"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "object not found maps to 404",
			err:  errs.NewObjectNotFoundError("orderCode", "ORD-1001"),
			want: http.StatusNotFound,
		},
		{
			name: "duplicate key maps to 409",
			err:  errs.NewDuplicateKeyError("orderCode", "ORD-1001"),
			want: http.StatusConflict,
		},
		{
			name: "insufficient stock maps to 409",
			err:  errs.NewInsufficientStockError("p1", 10, 3),
			want: http.StatusConflict,
		},
		{
			name: "driver unavailable maps to 409",
			err:  errs.NewDriverUnavailableError("d1"),
			want: http.StatusConflict,
		},
		{
			name: "stock item in use maps to 409",
			err:  commands.ErrStockItemInUse,
			want: http.StatusConflict,
		},
		{
			name: "terminal order maps to 409",
			err:  order.ErrOrderIsTerminal,
			want: http.StatusConflict,
		},
		{
			name: "invalid value maps to 400",
			err:  errs.NewValueIsInvalidError("quantity"),
			want: http.StatusBadRequest,
		},
		{
			name: "required value maps to 400",
			err:  errs.NewValueIsRequiredError("orderCode"),
			want: http.StatusBadRequest,
		},
		{
			name: "storage unavailable maps to 503",
			err:  errs.NewStorageUnavailableError("commit", errors.New("connection reset")),
			want: http.StatusServiceUnavailable,
		},
		{
			name: "unknown error maps to 500",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
