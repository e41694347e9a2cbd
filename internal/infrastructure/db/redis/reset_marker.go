package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adminpanel/admin-system/internal/core/ports"
)

// ResetTokenMarker records redeemed password-reset tokens so a token can
// only be used once. Tokens are stored hashed; a raw reset token never
// reaches Redis. Key format: reset_used:<sha256(token)>
type ResetTokenMarker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResetTokenMarker wraps the given Redis client. ttl should match the
// reset token lifetime: after a token expires on its own, its marker has
// nothing left to guard.
func NewResetTokenMarker(client *redis.Client, ttl time.Duration) *ResetTokenMarker {
	return &ResetTokenMarker{client: client, ttl: ttl}
}

// Consumed reports whether this token has already been redeemed.
func (m *ResetTokenMarker) Consumed(ctx context.Context, token string) (bool, error) {
	n, err := m.client.Exists(ctx, m.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("reset marker check: %w", err)
	}
	return n > 0, nil
}

// MarkConsumed records that this token has been redeemed (expires after ttl).
func (m *ResetTokenMarker) MarkConsumed(ctx context.Context, token string) error {
	return m.client.Set(ctx, m.key(token), "1", m.ttl).Err()
}

func (m *ResetTokenMarker) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "reset_used:" + hex.EncodeToString(sum[:])
}

var _ ports.ResetTokenMarker = (*ResetTokenMarker)(nil)
