package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminpanel/admin-system/internal/core/domain"
	"github.com/adminpanel/admin-system/internal/core/password"
	"github.com/adminpanel/admin-system/internal/core/ports"
)

// UserService implements the admin-facing user management operations.
type UserService struct {
	users       ports.UserRepository
	departments ports.DepartmentRepository
	logger      zerolog.Logger
}

func NewUserService(users ports.UserRepository, departments ports.DepartmentRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, departments: departments, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrValidation
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if in.DepartmentID != nil && *in.DepartmentID != "" {
		if _, err := s.departments.FindByID(ctx, *in.DepartmentID); err != nil {
			return nil, err
		}
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
		DepartmentID: in.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created by admin")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrValidation
		}
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *in.Role
	}
	if in.DepartmentID != nil {
		if *in.DepartmentID == "" {
			user.DepartmentID = nil
		} else {
			if _, err := s.departments.FindByID(ctx, *in.DepartmentID); err != nil {
				return nil, err
			}
			user.DepartmentID = in.DepartmentID
		}
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrValidation
		}
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now().UTC()
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
