// Package token implements the two JWT codecs used by the backend: the
// session codec for login tokens and the reset codec for single-purpose
// password-reset tokens. The codecs never accept each other's output: they
// use distinct secrets and each verifier additionally checks the token_use
// claim, so purpose separation holds even under secret reuse.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

// ErrInvalidToken covers every session token failure: bad signature,
// malformed structure, wrong purpose, or expiry in the past. Callers get
// no finer-grained cause.
var ErrInvalidToken = errors.New("invalid token")

const (
	useSession = "session"
	useReset   = "reset"
)

const defaultSessionTTL = 24 * time.Hour

// SessionClaims are the signed claims carried by a session token. The
// subject is the user id.
type SessionClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	TokenUse string `json:"token_use"`
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies the stateless HS256 tokens minted at
// login. There is no server-side revocation; compromise is bounded by the
// TTL and by the access guard re-fetching the subject on every request.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionCodec{secret: []byte(secret), ttl: ttl}
}

// Sign mints a token for user, binding id, email and role under the
// configured TTL.
func (c *SessionCodec) Sign(user *domain.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email:    user.Email,
		Role:     string(user.Role),
		TokenUse: useSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature integrity and expiry and returns the claims.
// Nothing from an unverified token is ever returned.
func (c *SessionCodec) Verify(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid || claims.TokenUse != useSession || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
