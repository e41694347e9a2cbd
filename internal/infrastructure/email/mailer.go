// Package email delivers outbound mail over SMTP using gomail.
package email

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/adminpanel/admin-system/internal/core/ports"
)

// Config captures SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends messages synchronously over SMTP. Wrap it in the queue
// dispatcher when callers must not block on delivery.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers a single message with an HTML body and a plain-text
// alternative. The SMTP dial itself is not cancellable mid-flight;
// ctx is checked before dialing.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

var _ ports.Mailer = (*SMTPMailer)(nil)
