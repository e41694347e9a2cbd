package ports

import (
	"context"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

// SignUpInput carries a registration request into the auth service. Role
// defaults to domain.RoleUser when empty.
type SignUpInput struct {
	Email        string
	Password     string
	Name         string
	Role         domain.Role
	DepartmentID *string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
	// RequestPasswordReset reports success whether or not the email is
	// known; unknown addresses are not distinguishable by the caller.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
