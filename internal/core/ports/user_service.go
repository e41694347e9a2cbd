package ports

import (
	"context"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

// UpdateUserInput lists the mutable user fields; nil means "leave as is".
// Email is the login key and is not updatable through this path. An empty
// DepartmentID detaches the user from their department.
type UpdateUserInput struct {
	Name         *string
	Role         *domain.Role
	DepartmentID *string
	Password     *string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in SignUpInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
