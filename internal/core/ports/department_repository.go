package ports

import (
	"context"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

// DepartmentRepository defines the persistence interface for departments.
type DepartmentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, department *domain.Department) (*domain.Department, error)
}
