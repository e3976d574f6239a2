package utils

import (
	"net/http"
	"strconv"

	apperrors "movilab/pkg/errors"

	"github.com/labstack/echo/v4"
)

// ParseIDParam reads the ":id" path parameter as an unsigned integer.
func ParseIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"ID inválido",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
