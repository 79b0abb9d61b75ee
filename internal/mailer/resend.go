package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends one-time codes through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) SendOTP(ctx context.Context, email, code string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Your TraderEdge Login Code",
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">Your login code</h2>
				<p>Enter this code to sign in to your account:</p>
				<p style="font-size: 32px; font-weight: 700; letter-spacing: 8px; color: #6366f1;">%s</p>
				<p style="color: #888; font-size: 14px; margin-top: 16px;">
					This code expires in 10 minutes.
				</p>
				<p style="color: #aaa; font-size: 12px;">
					If you didn't request this, you can safely ignore this email.
				</p>
			</div>
		`, code),
	}

	sent, err := m.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Email sent successfully (ID: %s) to %s", sent.Id, email)
	return nil
}
