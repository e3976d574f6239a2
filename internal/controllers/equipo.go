package controllers

import (
	"errors"
	"net/http"

	"movilab/internal/dto"
	"movilab/internal/services"
	apperrors "movilab/pkg/errors"
	"movilab/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EquipoController exposes the equipment lifecycle endpoints. Read
// endpoints answer the raw payload the front end consumes, mutations
// answer the {success, message} envelope.
type EquipoController struct {
	equipoService services.EquipoServiceInterface
	logger        *zap.Logger
}

func NewEquipoController(equipoService services.EquipoServiceInterface, logger *zap.Logger) *EquipoController {
	return &EquipoController{equipoService: equipoService, logger: logger}
}

func (c *EquipoController) GetEquipos(ctx echo.Context) error {
	equipos, err := c.equipoService.GetEquipos(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, equipos)
}

// FindEquipo keeps the legacy contract of /api/equipos/:id: a missing
// record is a 200 with a null body, not a 404.
func (c *EquipoController) FindEquipo(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipo, err := c.equipoService.FindEquipo(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ctx.JSON(http.StatusOK, nil)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, equipo)
}

// DetalleEquipo is the stricter fetch: a missing record is a 404.
func (c *EquipoController) DetalleEquipo(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipo, err := c.equipoService.FindEquipo(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx, apperrors.NotFound("equipo no encontrado"), c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, equipo)
}

func (c *EquipoController) GetUltimosEquipos(ctx echo.Context) error {
	equipos, err := c.equipoService.GetUltimosEquipos(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, equipos)
}

func (c *EquipoController) BuscarEquipos(ctx echo.Context) error {
	direccion := ctx.QueryParam("direccion")
	equipos, err := c.equipoService.BuscarPorDireccion(ctx.Request().Context(), direccion)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, equipos)
}

func (c *EquipoController) GuardarEquipo(ctx echo.Context) error {
	var payload dto.CreateEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "datos incompletos o incorrectos", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if _, err := c.equipoService.GuardarEquipo(ctx.Request().Context(), payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Datos guardados correctamente", http.StatusOK)
}

func (c *EquipoController) GuardarDireccion(ctx echo.Context) error {
	var payload dto.GuardarDireccionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "dirección resultante es requerida", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if _, err := c.equipoService.GuardarDireccion(ctx.Request().Context(), payload.DireccionResultante); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Dirección guardada correctamente", http.StatusOK)
}

func (c *EquipoController) GuardarRevision(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.RevisionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "fecha de revisión y diagnóstico son requeridos", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipoService.GuardarRevision(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Revisión guardada correctamente y estado actualizado", http.StatusOK)
}

func (c *EquipoController) Reparar(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ReparacionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "fecha de reparación, diagnóstico y nombre del reparador son requeridos", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipoService.Reparar(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Reparación guardada correctamente y estado actualizado", http.StatusOK)
}

func (c *EquipoController) EliminarEquipo(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipoService.EliminarEquipo(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Equipo eliminado con éxito", http.StatusOK)
}
