package services

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"strconv"

	"movilab/internal/entities"
	"movilab/internal/repositories"

	"go.uber.org/zap"
)

//go:embed templates/informe.html
var informeFS embed.FS

var informeTemplate = template.Must(template.ParseFS(informeFS, "templates/informe.html"))

type InformeServiceInterface interface {
	GenerarInforme(ctx context.Context, id uint64) ([]byte, error)
}

// InformeService renders the printable report for one equipment
// record. html/template escapes every stored value, field contents are
// treated as opaque text.
type InformeService struct {
	equipoRepo repositories.EquipoRepositoryInterface
	logger     *zap.Logger
}

func NewInformeService(equipoRepo repositories.EquipoRepositoryInterface, logger *zap.Logger) *InformeService {
	return &InformeService{equipoRepo: equipoRepo, logger: logger}
}

type informeFila struct {
	Etiqueta string
	Valor    string
}

type informeData struct {
	TipoEquipo        string
	Direccion         string
	FechaNotificacion string
	Filas             []informeFila
}

func (s *InformeService) GenerarInforme(ctx context.Context, id uint64) ([]byte, error) {
	equipo, err := s.equipoRepo.FindEquipo(ctx, id)
	if err != nil {
		return nil, err
	}

	data := buildInformeData(equipo)
	var buf bytes.Buffer
	if err := informeTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("no se pudo renderizar el informe", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildInformeData fixes the label order of the report table. Every
// field of the record appears, including the delivery-stage columns
// that only an external process fills in.
func buildInformeData(e *entities.Equipo) informeData {
	return informeData{
		TipoEquipo:        e.TipoEquipo.String,
		Direccion:         e.Direccion.String,
		FechaNotificacion: e.FechaNotificacion.String,
		Filas: []informeFila{
			{"ID", strconv.FormatUint(e.ID, 10)},
			{"Movimiento", e.Movimiento.String},
			{"Tarjetas Ingresadas", e.TarjetasIngresadas.String},
			{"Nombre Entrega", e.NombreEntrega.String},
			{"Nombre Recibe", e.NombreRecibe.String},
			{"Estado", e.Estado.String},
			{"Observaciones", e.Observaciones.String},
			{"Fecha Revisión", e.FechaRevision.String},
			{"Diagnóstico Revisión", e.DiagnosticoRevision.String},
			{"Fecha Reparación", e.FechaReparacion.String},
			{"Nombre de Reparador", e.NombreReparador.String},
			{"Diagnóstico Reparación", e.DiagnosticoReparacion.String},
			{"Fecha Entrega", e.FechaEntrega.String},
			{"Diagnóstico Entrega", e.DiagnosticoEntrega.String},
			{"Nombre Entrega Revisado", e.NombreEntregaRevisado.String},
			{"Nombre Recibe Revisado", e.NombreRecibeRevisado.String},
			{"Dirección Entrega", e.DireccionEntrega.String},
		},
	}
}

