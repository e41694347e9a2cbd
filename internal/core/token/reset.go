package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultResetTTL bounds how long a password-reset link stays redeemable.
const DefaultResetTTL = time.Hour

// resetClaims carry only identity, never a role: a reset token must not
// grant any authenticated action beyond the reset redemption itself.
type resetClaims struct {
	Email    string `json:"email"`
	TokenUse string `json:"token_use"`
	jwt.RegisteredClaims
}

// ResetCodec signs and verifies the short-lived tokens embedded in
// password-reset links. It must be configured with a secret distinct from
// the session secret.
type ResetCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewResetCodec(secret string, ttl time.Duration) *ResetCodec {
	if ttl <= 0 {
		ttl = DefaultResetTTL
	}
	return &ResetCodec{secret: []byte(secret), ttl: ttl}
}

// Generate mints a reset token for the given user identity.
func (c *ResetCodec) Generate(userID, email string) (string, error) {
	now := time.Now()
	claims := resetClaims{
		Email:    email,
		TokenUse: useReset,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify returns the subject identity, or ok=false on any failure: bad
// signature, malformed payload, wrong purpose, or expiry. Invalid and
// expired tokens are indistinguishable to the caller so nothing about a
// token's lifetime leaks to the end user.
func (c *ResetCodec) Verify(raw string) (userID, email string, ok bool) {
	claims := &resetClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid || claims.TokenUse != useReset || claims.Subject == "" {
		return "", "", false
	}
	return claims.Subject, claims.Email, true
}

// TTL exposes the configured lifetime so the consumed-token marker can
// expire its entries alongside the tokens themselves.
func (c *ResetCodec) TTL() time.Duration {
	return c.ttl
}
