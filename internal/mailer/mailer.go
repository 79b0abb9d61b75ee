package mailer

import (
	"context"
	"log"
)

// Mailer delivers one-time codes out-of-band. Delivery is best-effort: the
// send-otp endpoint answers 200 even when delivery fails.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// LogMailer logs codes instead of sending them. Used in dev mode when no
// email provider is configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendOTP(ctx context.Context, email, code string) error {
	log.Printf("📧 [Dev Mode] OTP %s generated for %s", code, email)
	return nil
}
