package controllers

import (
	"context"
	"net/http"

	"movilab/internal/dto"
	"movilab/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PersonalController serves the legacy personnel endpoints. They
// predate the /api envelope and keep answering plain text, the
// management page depends on those exact strings.
type PersonalController struct {
	personalService services.PersonalServiceInterface
	logger          *zap.Logger
}

func NewPersonalController(personalService services.PersonalServiceInterface, logger *zap.Logger) *PersonalController {
	return &PersonalController{personalService: personalService, logger: logger}
}

func (c *PersonalController) AddTechnician(ctx echo.Context) error {
	var payload dto.CreateTecnicoDTO
	if err := ctx.Bind(&payload); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid technician name")
	}
	if err := ctx.Validate(&payload); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid technician name")
	}

	if _, err := c.personalService.CreateTecnico(ctx.Request().Context(), payload.Nombre); err != nil {
		c.logger.Error("error al crear técnico", zap.Error(err))
		return ctx.String(http.StatusInternalServerError, "Error adding technician")
	}
	return ctx.String(http.StatusOK, "Technician added successfully")
}

func (c *PersonalController) AddEngineer(ctx echo.Context) error {
	var payload dto.CreateIngenieroDTO
	if err := ctx.Bind(&payload); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid engineer name")
	}
	if err := ctx.Validate(&payload); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid engineer name")
	}

	if _, err := c.personalService.CreateIngeniero(ctx.Request().Context(), payload.Nombre); err != nil {
		c.logger.Error("error al crear ingeniero", zap.Error(err))
		return ctx.String(http.StatusInternalServerError, "Error adding engineer")
	}
	return ctx.String(http.StatusOK, "Engineer added successfully")
}

func (c *PersonalController) ViewData(ctx echo.Context) error {
	data, err := c.personalService.GetViewData(ctx.Request().Context())
	if err != nil {
		c.logger.Error("error al listar personal", zap.Error(err))
		return ctx.String(http.StatusInternalServerError, "Error retrieving data")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (c *PersonalController) EditTechnician(ctx echo.Context) error {
	return c.edit(ctx, c.personalService.UpdateTecnico, "Technician updated successfully", "Error updating technician")
}

func (c *PersonalController) EditEngineer(ctx echo.Context) error {
	return c.edit(ctx, c.personalService.UpdateIngeniero, "Engineer updated successfully", "Error updating engineer")
}

func (c *PersonalController) DeleteTechnician(ctx echo.Context) error {
	return c.remove(ctx, c.personalService.DeleteTecnico, "Technician deleted successfully", "Error deleting technician")
}

func (c *PersonalController) DeleteEngineer(ctx echo.Context) error {
	return c.remove(ctx, c.personalService.DeleteIngeniero, "Engineer deleted successfully", "Error deleting engineer")
}

func (c *PersonalController) GetTecnicos(ctx echo.Context) error {
	nombres, err := c.personalService.GetNombresTecnicos(ctx.Request().Context())
	if err != nil {
		c.logger.Error("error al listar técnicos", zap.Error(err))
		return ctx.String(http.StatusInternalServerError, "Error retrieving technicians")
	}
	return ctx.JSON(http.StatusOK, nombres)
}

func (c *PersonalController) GetIngenieros(ctx echo.Context) error {
	nombres, err := c.personalService.GetNombresIngenieros(ctx.Request().Context())
	if err != nil {
		c.logger.Error("error al listar ingenieros", zap.Error(err))
		return ctx.String(http.StatusInternalServerError, "Error retrieving engineers")
	}
	return ctx.JSON(http.StatusOK, nombres)
}

func (c *PersonalController) edit(
	ctx echo.Context,
	update func(context.Context, uint64, string) error,
	okMsg, failMsg string,
) error {
	var payload dto.UpdatePersonalDTO
	if err := ctx.Bind(&payload); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid data")
	}
	if err := ctx.Validate(&payload); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid data")
	}

	if err := update(ctx.Request().Context(), payload.ID, payload.Nombre); err != nil {
		c.logger.Error("error al actualizar personal", zap.Error(err))
		return ctx.String(http.StatusInternalServerError, failMsg)
	}
	return ctx.String(http.StatusOK, okMsg)
}

func (c *PersonalController) remove(
	ctx echo.Context,
	del func(context.Context, uint64) error,
	okMsg, failMsg string,
) error {
	var payload dto.DeletePersonalDTO
	if err := ctx.Bind(&payload); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid ID")
	}
	if err := ctx.Validate(&payload); err != nil {
		return ctx.String(http.StatusBadRequest, "Invalid ID")
	}

	if err := del(ctx.Request().Context(), payload.ID); err != nil {
		c.logger.Error("error al eliminar personal", zap.Error(err))
		return ctx.String(http.StatusInternalServerError, failMsg)
	}
	return ctx.String(http.StatusOK, okMsg)
}
