// Package notifier consumes bakehouse events and sends the owner an
// email for each new inquiry and order.
package notifier

import (
	"context"
	"fmt"

	"github.com/mayasbakes/bakehouse/pkg/config"
	"github.com/resend/resend-go/v2"
)

// Mailer sends one email.
type Mailer interface {
	Send(ctx context.Context, subject, html string) error
}

// ResendMailer implements Mailer on top of the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendMailer creates a Mailer backed by Resend.
func NewResendMailer(cfg config.MailerConfig) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
		to:     cfg.To,
	}
}

// Send delivers one email to the configured recipient.
func (m *ResendMailer) Send(ctx context.Context, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Html:    html,
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email %q: %w", subject, err)
	}
	return nil
}
