package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldErr map[string]string

func (f fieldErr) Error() string { return "field error" }
func (f fieldErr) Values() map[string]string { return f }

func TestNewInvalidInput(t *testing.T) {
	t.Run("FromFieldError", func(t *testing.T) {
		src := fieldErr{"email": "Invalid email format."}

		err := NewInvalidInput(src)

		var gerr *Error
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, "Validation error", gerr.Msg())
		assert.Equal(t, TypeValidation, gerr.Type())
		assert.Equal(t, CodeInvalidInput, gerr.Code())
		assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
		assert.Equal(t, map[string]string(src), gerr.Fields())

		var unwrapped fieldErr
		require.ErrorAs(t, err, &unwrapped)
		assert.Equal(t, src, unwrapped)
	})

	t.Run("FromPlainError", func(t *testing.T) {
		err := NewInvalidInput(errors.New("boom"))

		var gerr *Error
		require.True(t, errors.As(err, &gerr))
		assert.Nil(t, gerr.Fields())
		assert.Equal(t, "boom", gerr.Error())
	})

	t.Run("FromPairs", func(t *testing.T) {
		err := NewInvalidInput(nil, "name", "Name is required.", "email", "Email is required.")

		var gerr *Error
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, map[string]string{
			"name":  "Name is required.",
			"email": "Email is required.",
		}, gerr.Fields())
	})

	t.Run("OddPairs", func(t *testing.T) {
		err := NewInvalidInput(nil, "name")

		var gerr *Error
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, CodeInvalidFormat, gerr.Code())
		assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	})
}

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: NewServer(errors.New("db down")), want: http.StatusInternalServerError},
		{err: NewInvalidFormat(), want: http.StatusBadRequest},
		{err: NewBusiness("missing", CodeNotFound), want: http.StatusNotFound},
		{err: NewBusiness("off", CodeUnavailable), want: http.StatusServiceUnavailable},
		{err: NewBusiness("wrong verb", CodeMethodNotAllowed), want: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		var gerr *Error
		require.True(t, errors.As(tt.err, &gerr))
		assert.Equal(t, tt.want, gerr.StatusCode())
	}
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "Unknown field", NewInvalidFormat("Unknown field").Error())
	assert.Equal(t, "Validation violation", (&Error{errType: TypeValidation}).Error())
	assert.Equal(t, "Internal error", (&Error{errType: TypeServer}).Error())
	assert.Contains(t, (&Error{code: CodeInvalidInput}).String(), "ERROR_CODE_INVALID_INPUT")
}
