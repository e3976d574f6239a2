package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func callAdminGate(t *testing.T, configured, header string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := AdminGate(configured, zap.NewNop())(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tables-info", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestAdminGate(t *testing.T) {
	t.Run("no configured token disables the routes", func(t *testing.T) {
		rec := callAdminGate(t, "", "Bearer s3cret")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := callAdminGate(t, "s3cret", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		rec := callAdminGate(t, "s3cret", "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		rec := callAdminGate(t, "s3cret", "Bearer s3cret")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})
}
