package registration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/formcheck/internal/pkg/clock"
	"github.com/shandysiswandi/formcheck/internal/pkg/instrument"
	"github.com/shandysiswandi/formcheck/internal/pkg/router"
	"github.com/shandysiswandi/formcheck/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	clk := clock.NewFixed(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	v, err := validator.NewV10Validator(clk)
	require.NoError(t, err)

	t.Run("missing validator", func(t *testing.T) {
		assert.ErrorIs(t, New(Dependency{}), ErrValidatorRequired)
	})

	t.Run("missing router", func(t *testing.T) {
		err := New(Dependency{Validator: v, Clock: clk, Instrument: instrument.NewNoop()})

		var verr validator.V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Values(), "Router")
	})

	t.Run("registers endpoints", func(t *testing.T) {
		r := router.NewRouter(router.Config{})
		require.NoError(t, New(Dependency{
			Router:     r,
			Instrument: instrument.NewNoop(),
			Clock:      clk,
			Validator:  v,
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/registration/check", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
