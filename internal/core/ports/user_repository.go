package ports

import (
	"context"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

// UserRepository defines the persistence interface for users. The store
// owns uniqueness of email (violations surface as domain.ErrEmailTaken)
// and referential integrity of the department reference.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
