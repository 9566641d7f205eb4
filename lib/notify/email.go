package notify

import (
	"context"
	"fmt"

	"github.com/projectdesk-api/utils"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends plain-text email through SendGrid
type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendGridMailer creates a mailer sending from fromEmail
func NewSendGridMailer(apiKey, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("ProjectDesk", fromEmail),
	}
}

// SendEmail delivers a message to a single recipient
func (m *SendGridMailer) SendEmail(_ context.Context, toName, toEmail, subject, body string) error {
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(m.from, subject, to, body, "<p>"+body+"</p>")

	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", ErrExternalServiceFailure, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid responded %d", ErrExternalServiceFailure, resp.StatusCode)
	}
	return nil
}

// LogMailer writes messages to the log instead of sending them. Used when SendGrid is not configured.
type LogMailer struct{}

// SendEmail logs the message
func (LogMailer) SendEmail(_ context.Context, _, toEmail, subject, body string) error {
	utils.Logger.WithField("to", toEmail).Infof("Email (not sent, SendGrid disabled): %s: %s", subject, body)
	return nil
}
