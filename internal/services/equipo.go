package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"movilab/internal/dto"
	"movilab/internal/entities"
	"movilab/internal/repositories"
	apperrors "movilab/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

const (
	ultimosEquiposKey   = "equipos:ultimos"
	ultimosEquiposLimit = 5
)

type EquipoServiceInterface interface {
	GetEquipos(ctx context.Context) ([]entities.Equipo, error)
	FindEquipo(ctx context.Context, id uint64) (*entities.Equipo, error)
	GetUltimosEquipos(ctx context.Context) ([]entities.Equipo, error)
	BuscarPorDireccion(ctx context.Context, direccion string) ([]entities.Equipo, error)
	GuardarEquipo(ctx context.Context, payload dto.CreateEquipoDTO) (uint64, error)
	GuardarDireccion(ctx context.Context, direccion string) (uint64, error)
	GuardarRevision(ctx context.Context, id uint64, payload dto.RevisionDTO) error
	Reparar(ctx context.Context, id uint64, payload dto.ReparacionDTO) error
	EliminarEquipo(ctx context.Context, id uint64) error
}

// EquipoService owns the equipment lifecycle: intake, the review and
// repair transitions, search and deletion.
type EquipoService struct {
	equipoRepo repositories.EquipoRepositoryInterface
	cache      repositories.CacheRepositoryInterface
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewEquipoService(
	equipoRepo repositories.EquipoRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *EquipoService {
	return &EquipoService{
		equipoRepo: equipoRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// FlattenTarjetas renders the intake card sequence as the display
// string stored in tarjetas_ingresadas. The flattening is one-way, the
// string is never parsed back.
func FlattenTarjetas(tarjetas []dto.TarjetaDTO) string {
	parts := make([]string, 0, len(tarjetas))
	for _, t := range tarjetas {
		parts = append(parts, fmt.Sprintf("%s (%d)", t.Tarjeta, t.Cantidad))
	}
	return strings.Join(parts, ", ")
}

func (s *EquipoService) GetEquipos(ctx context.Context) ([]entities.Equipo, error) {
	return s.equipoRepo.GetEquipos(ctx)
}

func (s *EquipoService) FindEquipo(ctx context.Context, id uint64) (*entities.Equipo, error) {
	return s.equipoRepo.FindEquipo(ctx, id)
}

func (s *EquipoService) GetUltimosEquipos(ctx context.Context) ([]entities.Equipo, error) {
	if cached, err := s.cache.Get(ctx, ultimosEquiposKey); err == nil {
		var equipos []entities.Equipo
		if err := json.Unmarshal([]byte(cached), &equipos); err == nil {
			return equipos, nil
		}
		s.logger.Warn("contenido de caché inválido, se descarta", zap.String("key", ultimosEquiposKey))
	}

	equipos, err := s.equipoRepo.GetUltimosEquipos(ctx, ultimosEquiposLimit)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(equipos); err == nil {
		if err := s.cache.Set(ctx, ultimosEquiposKey, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("no se pudo escribir en caché", zap.Error(err))
		}
	}
	return equipos, nil
}

func (s *EquipoService) BuscarPorDireccion(ctx context.Context, direccion string) ([]entities.Equipo, error) {
	if strings.TrimSpace(direccion) == "" {
		return nil, apperrors.BadRequest("dirección es requerida")
	}
	return s.equipoRepo.SearchByDireccion(ctx, direccion)
}

func (s *EquipoService) GuardarEquipo(ctx context.Context, payload dto.CreateEquipoDTO) (uint64, error) {
	// nil means the field was absent; an empty sequence is accepted and
	// flattens to an empty string.
	if payload.TarjetasIngresadas == nil {
		return 0, apperrors.BadRequest("tarjetas_ingresadas debe ser una lista")
	}

	equipo := entities.Equipo{
		Movimiento:         null.StringFrom(payload.TipoMovimiento),
		TipoEquipo:         null.StringFrom(payload.TipoEquipo),
		TarjetasIngresadas: null.StringFrom(FlattenTarjetas(payload.TarjetasIngresadas)),
		Direccion:          null.StringFrom(payload.DireccionResultante),
		NombreEntrega:      null.StringFrom(payload.NombreEntrega),
		NombreRecibe:       null.StringFrom(payload.NombreRecibe),
		Observaciones:      null.NewString(payload.Observaciones, payload.Observaciones != ""),
		Estado:             null.NewString(payload.Estado, payload.Estado != ""),
		FechaNotificacion:  null.NewString(payload.FechaNotificacion, payload.FechaNotificacion != ""),
	}

	id, err := s.equipoRepo.CreateEquipo(ctx, equipo)
	if err != nil {
		return 0, err
	}
	s.invalidateUltimos(ctx)
	s.logger.Info("equipo registrado", zap.Uint64("id", id), zap.String("tipo", payload.TipoEquipo))
	return id, nil
}

func (s *EquipoService) GuardarDireccion(ctx context.Context, direccion string) (uint64, error) {
	id, err := s.equipoRepo.CreateDireccion(ctx, direccion)
	if err != nil {
		return 0, err
	}
	s.invalidateUltimos(ctx)
	return id, nil
}

// GuardarRevision applies the review transition: both fields and the
// estado are overwritten in one statement. Prior estado is not
// checked, stages may arrive out of order.
func (s *EquipoService) GuardarRevision(ctx context.Context, id uint64, payload dto.RevisionDTO) error {
	err := s.equipoRepo.SaveRevision(ctx, id, payload.FechaRevision, payload.DiagnosticoRevision)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewHttpError(http.StatusNotFound, "equipo no encontrado", nil, nil)
		}
		return err
	}
	s.invalidateUltimos(ctx)
	return nil
}

// Reparar applies the repair transition with the same overwrite
// semantics as the review.
func (s *EquipoService) Reparar(ctx context.Context, id uint64, payload dto.ReparacionDTO) error {
	err := s.equipoRepo.SaveReparacion(ctx, id, payload.FechaReparacion, payload.DiagnosticoReparacion, payload.NombreReparador)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewHttpError(http.StatusNotFound, "equipo no encontrado", nil, nil)
		}
		return err
	}
	s.invalidateUltimos(ctx)
	return nil
}

// EliminarEquipo deletes through the store only; deleting an id that
// does not exist is still a success.
func (s *EquipoService) EliminarEquipo(ctx context.Context, id uint64) error {
	if err := s.equipoRepo.DeleteEquipo(ctx, id); err != nil {
		return err
	}
	s.invalidateUltimos(ctx)
	return nil
}

func (s *EquipoService) invalidateUltimos(ctx context.Context) {
	if err := s.cache.Del(ctx, ultimosEquiposKey); err != nil {
		s.logger.Warn("no se pudo invalidar caché", zap.Error(err))
	}
}
