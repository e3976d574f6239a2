package controllers

import (
	"net/http"

	"movilab/internal/dto"
	"movilab/internal/services"
	apperrors "movilab/pkg/errors"
	"movilab/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AdminController struct {
	adminService services.AdminServiceInterface
	logger       *zap.Logger
}

func NewAdminController(adminService services.AdminServiceInterface, logger *zap.Logger) *AdminController {
	return &AdminController{adminService: adminService, logger: logger}
}

func (c *AdminController) GetTablesInfo(ctx echo.Context) error {
	info, err := c.adminService.GetTablesInfo(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, info)
}

func (c *AdminController) DeleteTable(ctx echo.Context) error {
	var payload dto.DeleteTableDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "el nombre de la tabla es requerido", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.adminService.DeleteTable(ctx.Request().Context(), payload.TableName); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.String(http.StatusOK, "Table deleted successfully")
}
