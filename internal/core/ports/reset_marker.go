package ports

import "context"

// ResetTokenMarker records redeemed password-reset tokens so a token
// cannot be replayed before its natural expiry. Entries only need to live
// as long as the reset token TTL.
type ResetTokenMarker interface {
	Consumed(ctx context.Context, token string) (bool, error)
	MarkConsumed(ctx context.Context, token string) error
}
