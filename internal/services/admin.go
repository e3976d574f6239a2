package services

import (
	"context"

	"movilab/internal/dto"
	"movilab/internal/repositories"

	"go.uber.org/zap"
)

type AdminServiceInterface interface {
	GetTablesInfo(ctx context.Context) ([]dto.TableInfoDTO, error)
	DeleteTable(ctx context.Context, table string) error
}

// AdminService exposes the schema maintenance operations. Both are
// destructive or revealing, the router puts them behind the admin
// token gate.
type AdminService struct {
	adminRepo repositories.AdminRepositoryInterface
	logger    *zap.Logger
}

func NewAdminService(adminRepo repositories.AdminRepositoryInterface, logger *zap.Logger) *AdminService {
	return &AdminService{adminRepo: adminRepo, logger: logger}
}

func (s *AdminService) GetTablesInfo(ctx context.Context) ([]dto.TableInfoDTO, error) {
	tables, err := s.adminRepo.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	info := make([]dto.TableInfoDTO, 0, len(tables))
	for _, name := range tables {
		count, err := s.adminRepo.CountRows(ctx, name)
		if err != nil {
			return nil, err
		}
		info = append(info, dto.TableInfoDTO{Name: name, Count: count})
	}
	return info, nil
}

func (s *AdminService) DeleteTable(ctx context.Context, table string) error {
	if err := s.adminRepo.DropTable(ctx, table); err != nil {
		return err
	}
	s.logger.Warn("tabla eliminada", zap.String("table", table))
	return nil
}
