package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	apperrors "movilab/pkg/errors"
	"movilab/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AdminGate protects the destructive schema endpoints with a static
// bearer token. With no token configured the endpoints are disabled
// outright rather than left open.
func AdminGate(token string, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return utils.ErrorResponse(c,
					apperrors.NewHttpError(http.StatusForbidden, "operaciones de administración deshabilitadas", apperrors.ErrForbidden, nil),
					logger,
				)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			provided, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				return utils.ErrorResponse(c,
					apperrors.NewHttpError(http.StatusUnauthorized, "token de administración inválido", apperrors.ErrForbidden, nil),
					logger,
				)
			}
			return next(c)
		}
	}
}
