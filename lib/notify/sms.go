// Package notify delivers SMS and email through Twilio and SendGrid.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/projectdesk-api/utils"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrExternalServiceFailure wraps failures reported by Twilio or SendGrid
var ErrExternalServiceFailure = errors.New("external_service_failure")

// TwilioSender sends text messages through the Twilio REST API
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender creates a sender authenticated with an account SID and auth token
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from}
}

// SendSMS delivers body to the phone number to
func (s *TwilioSender) SendSMS(_ context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send SMS to %s via Twilio", to)
		return fmt.Errorf("%w: failed to send sms via twilio: %v", ErrExternalServiceFailure, err)
	}
	return nil
}

// LogSender writes messages to the log instead of sending them. Used when Twilio is not configured.
type LogSender struct{}

// SendSMS logs the message
func (LogSender) SendSMS(_ context.Context, to, body string) error {
	utils.Logger.WithField("to", to).Infof("SMS (not sent, Twilio disabled): %s", body)
	return nil
}
