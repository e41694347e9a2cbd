package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminpanel/admin-system/internal/core/domain"
	"github.com/adminpanel/admin-system/internal/core/ports"
)

// DepartmentService implements department creation and listing. Deleting a
// department that other rows reference is left to the store's referential
// rules and is not exposed here.
type DepartmentService struct {
	departments ports.DepartmentRepository
	logger      zerolog.Logger
}

func NewDepartmentService(departments ports.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, logger: logger}
}

func (s *DepartmentService) Create(ctx context.Context, name string, parentID *string) (*domain.Department, error) {
	if name == "" {
		return nil, domain.ErrValidation
	}

	if parentID != nil && *parentID == "" {
		parentID = nil
	}
	if parentID != nil {
		if _, err := s.departments.FindByID(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	created, err := s.departments.Create(ctx, &domain.Department{
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("department_id", created.ID).Str("name", created.Name).Msg("department created")
	return created, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}
