package ports

import (
	"context"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

type DepartmentService interface {
	Create(ctx context.Context, name string, parentID *string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
}
