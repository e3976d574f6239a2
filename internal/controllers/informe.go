package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"movilab/internal/services"
	apperrors "movilab/pkg/errors"
	"movilab/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type InformeController struct {
	informeService services.InformeServiceInterface
	equipoService  services.EquipoServiceInterface
	logger         *zap.Logger
}

func NewInformeController(
	informeService services.InformeServiceInterface,
	equipoService services.EquipoServiceInterface,
	logger *zap.Logger,
) *InformeController {
	return &InformeController{
		informeService: informeService,
		equipoService:  equipoService,
		logger:         logger,
	}
}

// GenerarInforme answers the printable HTML report for one record.
func (c *InformeController) GenerarInforme(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	html, err := c.informeService.GenerarInforme(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ctx.String(http.StatusNotFound, "Equipo no encontrado")
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.HTMLBlob(http.StatusOK, html)
}

var exportHeaders = []string{
	"ID", "Movimiento", "Tipo de Equipo", "Tarjetas Ingresadas", "Dirección",
	"Nombre Entrega", "Nombre Recibe", "Observaciones", "Estado", "Fecha Notificación",
	"Fecha Revisión", "Diagnóstico Revisión",
	"Fecha Reparación", "Diagnóstico Reparación", "Nombre Reparador",
}

// ExportEquipos writes the full equipment listing as an xlsx
// attachment.
func (c *InformeController) ExportEquipos(ctx echo.Context) error {
	equipos, err := c.equipoService.GetEquipos(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f := excelize.NewFile()
	sheet := "Equipos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &exportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "O1", style)

	for i, e := range equipos {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			e.ID, e.Movimiento.String, e.TipoEquipo.String, e.TarjetasIngresadas.String,
			e.Direccion.String, e.NombreEntrega.String, e.NombreRecibe.String,
			e.Observaciones.String, e.Estado.String, e.FechaNotificacion.String,
			e.FechaRevision.String, e.DiagnosticoRevision.String,
			e.FechaReparacion.String, e.DiagnosticoReparacion.String, e.NombreReparador.String,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "E", 22)
	f.SetColWidth(sheet, "F", "O", 18)

	fileName := fmt.Sprintf("equipos_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
