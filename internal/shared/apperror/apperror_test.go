package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.InsufficientBalance("custody balance is not enough")

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeInsufficientBalance, httpErr.Code)
		assert.Equal(t, "custody balance is not enough", httpErr.Message)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("create advance: %w", apperror.ErrNotFound)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "connection refused")
	})

	t.Run("validator errors become invalid input", func(t *testing.T) {
		type payload struct {
			CustodyID string `validate:"required"`
		}
		err := validator.New().Struct(payload{})

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code)
		assert.Equal(t, "Custodyid is required", httpErr.Message)
	})
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", apperror.InsufficientBalance("no"))

	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientBalance))
	assert.False(t, apperror.HasCode(err, apperror.CodeNotFound))
	assert.False(t, apperror.HasCode(errors.New("plain"), apperror.CodeNotFound))
}
