package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "movilab/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPResponse is the JSON envelope every /api endpoint answers with.
// The legacy personnel endpoints answer plain text instead.
type HTTPResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Body    interface{} `json:"body,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Success: true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse converts an error into its HTTP shape. HttpError keeps
// its code and user message; validator errors become a 400; anything
// else is logged and hidden behind a generic 500.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("error HTTP",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return ctx.JSON(httpErr.Code, &HTTPResponse{Success: false, Message: httpErr.Message})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, &HTTPResponse{Success: false, Message: apperrors.ErrNotFound.Error()})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("el campo '%s' no cumple la regla '%s'", e.Field(), e.Tag()))
		}
		return ctx.JSON(http.StatusBadRequest, &HTTPResponse{
			Success: false,
			Message: "datos incompletos o incorrectos: " + strings.Join(msgs, "; "),
		})
	}

	logger.Error("error inesperado", zap.Error(err))
	return ctx.JSON(http.StatusInternalServerError, &HTTPResponse{
		Success: false,
		Message: "error interno del servidor",
	})
}
