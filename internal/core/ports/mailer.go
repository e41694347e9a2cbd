package ports

import "context"

// Mailer delivers a single message with an HTML body and a plain-text
// alternative. Implementations may deliver asynchronously; a nil return
// then only means the message was accepted for delivery.
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}
