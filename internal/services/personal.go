package services

import (
	"context"

	"movilab/internal/dto"
	"movilab/internal/entities"
	"movilab/internal/repositories"

	"go.uber.org/zap"
)

type PersonalServiceInterface interface {
	GetViewData(ctx context.Context) (*dto.ViewDataDTO, error)
	GetNombresTecnicos(ctx context.Context) ([]string, error)
	GetNombresIngenieros(ctx context.Context) ([]string, error)
	CreateTecnico(ctx context.Context, nombre string) (uint64, error)
	CreateIngeniero(ctx context.Context, nombre string) (uint64, error)
	UpdateTecnico(ctx context.Context, id uint64, nombre string) error
	UpdateIngeniero(ctx context.Context, id uint64, nombre string) error
	DeleteTecnico(ctx context.Context, id uint64) error
	DeleteIngeniero(ctx context.Context, id uint64) error
}

// PersonalService keeps the two personnel registries. Both tables are
// independent, there is no relation to equipment records.
type PersonalService struct {
	tecnicoRepo   repositories.PersonalRepositoryInterface
	ingenieroRepo repositories.PersonalRepositoryInterface
	logger        *zap.Logger
}

func NewPersonalService(
	tecnicoRepo repositories.PersonalRepositoryInterface,
	ingenieroRepo repositories.PersonalRepositoryInterface,
	logger *zap.Logger,
) *PersonalService {
	return &PersonalService{
		tecnicoRepo:   tecnicoRepo,
		ingenieroRepo: ingenieroRepo,
		logger:        logger,
	}
}

func (s *PersonalService) GetViewData(ctx context.Context) (*dto.ViewDataDTO, error) {
	tecnicos, err := s.tecnicoRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	ingenieros, err := s.ingenieroRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if tecnicos == nil {
		tecnicos = make([]entities.Personal, 0)
	}
	if ingenieros == nil {
		ingenieros = make([]entities.Personal, 0)
	}
	return &dto.ViewDataDTO{Technicians: tecnicos, Engineers: ingenieros}, nil
}

func (s *PersonalService) GetNombresTecnicos(ctx context.Context) ([]string, error) {
	return s.tecnicoRepo.GetNombres(ctx)
}

func (s *PersonalService) GetNombresIngenieros(ctx context.Context) ([]string, error) {
	return s.ingenieroRepo.GetNombres(ctx)
}

func (s *PersonalService) CreateTecnico(ctx context.Context, nombre string) (uint64, error) {
	id, err := s.tecnicoRepo.Create(ctx, nombre)
	if err == nil {
		s.logger.Info("técnico creado", zap.Uint64("id", id))
	}
	return id, err
}

func (s *PersonalService) CreateIngeniero(ctx context.Context, nombre string) (uint64, error) {
	id, err := s.ingenieroRepo.Create(ctx, nombre)
	if err == nil {
		s.logger.Info("ingeniero creado", zap.Uint64("id", id))
	}
	return id, err
}

func (s *PersonalService) UpdateTecnico(ctx context.Context, id uint64, nombre string) error {
	return s.tecnicoRepo.Update(ctx, id, nombre)
}

func (s *PersonalService) UpdateIngeniero(ctx context.Context, id uint64, nombre string) error {
	return s.ingenieroRepo.Update(ctx, id, nombre)
}

func (s *PersonalService) DeleteTecnico(ctx context.Context, id uint64) error {
	return s.tecnicoRepo.Delete(ctx, id)
}

func (s *PersonalService) DeleteIngeniero(ctx context.Context, id uint64) error {
	return s.ingenieroRepo.Delete(ctx, id)
}
