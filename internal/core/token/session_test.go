package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "u1", Email: "ann@example.com", Role: domain.RoleAdmin}
}

func TestSessionCodec_SignAndVerify(t *testing.T) {
	codec := NewSessionCodec("session-secret", time.Hour)

	raw, err := codec.Sign(testUser())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := codec.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "u1" || claims.Email != "ann@example.com" || claims.Role != string(domain.RoleAdmin) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected iat and exp to be set")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected exp = iat + 1h, got %v", got)
	}
}

func TestSessionCodec_WrongSecret(t *testing.T) {
	raw, _ := NewSessionCodec("secret-a", time.Hour).Sign(testUser())

	if _, err := NewSessionCodec("secret-b", time.Hour).Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionCodec_Tampered(t *testing.T) {
	codec := NewSessionCodec("session-secret", time.Hour)
	raw, _ := codec.Sign(testUser())

	parts := strings.Split(raw, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	if _, err := codec.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered payload, got %v", err)
	}

	if _, err := codec.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestSessionCodec_Expired(t *testing.T) {
	codec := NewSessionCodec("session-secret", time.Hour)

	// Hand-craft a token whose exp is already in the past.
	now := time.Now()
	claims := SessionClaims{
		Email:    "ann@example.com",
		Role:     string(domain.RoleAdmin),
		TokenUse: useSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("session-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

// Purpose separation must hold even when both codecs are misconfigured
// with the same secret: the token_use claim is still checked.
func TestSessionCodec_RejectsResetTokens(t *testing.T) {
	sessions := NewSessionCodec("shared-secret", time.Hour)
	resets := NewResetCodec("shared-secret", time.Hour)

	raw, err := resets.Generate("u1", "ann@example.com")
	if err != nil {
		t.Fatalf("generate reset token: %v", err)
	}

	if _, err := sessions.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("session verifier accepted a reset token: %v", err)
	}
}
