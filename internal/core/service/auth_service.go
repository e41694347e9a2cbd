package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminpanel/admin-system/internal/core/domain"
	"github.com/adminpanel/admin-system/internal/core/password"
	"github.com/adminpanel/admin-system/internal/core/ports"
	"github.com/adminpanel/admin-system/internal/core/token"
)

const resetEmailSubject = "Password reset request"

// AuthService implements signup, signin and the password-reset flow. It
// orchestrates the user store, the two token codecs, the outbound mailer
// and the consumed-token marker.
type AuthService struct {
	users       ports.UserRepository
	departments ports.DepartmentRepository
	sessions    *token.SessionCodec
	resets      *token.ResetCodec
	consumed    ports.ResetTokenMarker
	mailer      ports.Mailer
	frontendURL string
	logger      zerolog.Logger
}

// NewAuthService wires an AuthService. consumed may be nil, in which case
// reset tokens stay redeemable until expiry (the baseline trade-off).
func NewAuthService(
	users ports.UserRepository,
	departments ports.DepartmentRepository,
	sessions *token.SessionCodec,
	resets *token.ResetCodec,
	consumed ports.ResetTokenMarker,
	mailer ports.Mailer,
	frontendURL string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		departments: departments,
		sessions:    sessions,
		resets:      resets,
		consumed:    consumed,
		mailer:      mailer,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.User, error) {
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
	user := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
		DepartmentID: in.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, pass string) (string, *domain.User, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure as a wrong password: the response must not
			// reveal whether the account exists.
			s.logger.Debug().Str("email", email).Msg("login attempt for unknown email")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		s.logger.Debug().Str("user_id", user.ID).Msg("login attempt with wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.sessions.Sign(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed in")
	return tok, user, nil
}

// RequestPasswordReset always reports success to the caller: the externally
// observable behaviour is identical whether or not the email is registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrValidation
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	tok, err := s.resets.Generate(user.ID, user.Email)
	if err != nil {
		return err
	}

	link := s.frontendURL + "/reset-password?token=" + tok
	if err := s.mailer.Send(ctx, user.Email, resetEmailSubject, resetEmailHTML(link), resetEmailText(link)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset email dispatched")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, tok, newPassword string) error {
	if tok == "" || newPassword == "" {
		return domain.ErrValidation
	}

	userID, _, ok := s.resets.Verify(tok)
	if !ok {
		return domain.ErrInvalidResetToken
	}

	if s.consumed != nil {
		used, err := s.consumed.Consumed(ctx, tok)
		if err != nil {
			// The marker is a hardening layer over token expiry; when it is
			// unreachable the flow continues on expiry alone.
			s.logger.Warn().Err(err).Msg("consumed-token check failed")
		} else if used {
			return domain.ErrInvalidResetToken
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if s.consumed != nil {
		if err := s.consumed.MarkConsumed(ctx, tok); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to mark reset token consumed")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset completed")
	return nil
}

func resetEmailHTML(link string) string {
	return fmt.Sprintf(`<p>Hello,</p>
<p>You have requested a password reset for your account.</p>
<p><a href="%s">Reset your password here</a></p>
<p>This link will expire in 1 hour.</p>
<p>If you did not request a password reset, please ignore this email.</p>`, link)
}

func resetEmailText(link string) string {
	return fmt.Sprintf("Hello,\nYou have requested a password reset for your account.\n"+
		"Please visit the following link to reset your password: %s\n"+
		"This link will expire in 1 hour.\n"+
		"If you did not request a password reset, please ignore this email.\n", link)
}
