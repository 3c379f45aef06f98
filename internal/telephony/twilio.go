// Package telephony bridges the in-app "call us" button to Twilio. Every
// call is forwarded to the configured operator line.
package telephony

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"railassist/backend/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrCallFailed wraps any transport or API failure from Twilio.
var ErrCallFailed = errors.New("telephony: call could not be placed")

const defaultBaseURL = "https://api.twilio.com"

// Twilio plays back a demo announcement; a real deployment points this at
// TwiML that bridges the operator line.
const voiceURL = "http://demo.twilio.com/docs/voice.xml"

type Service struct {
	client *resty.Client
	cfg    config.TwilioConfig
	log    *zap.Logger
}

// NewService builds the bridge. timeout bounds every Twilio API call.
func NewService(cfg config.TwilioConfig, timeout time.Duration, log *zap.Logger) *Service {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(timeout).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken)
	return &Service{client: client, cfg: cfg, log: log}
}

// SetBaseURL redirects API calls, used by tests.
func (s *Service) SetBaseURL(base string) {
	s.client.SetBaseURL(base)
}

// Enabled reports whether credentials are configured.
func (s *Service) Enabled() bool {
	return s.cfg.AccountSID != "" && s.cfg.AuthToken != ""
}

// PlaceCall asks Twilio to dial the operator line on behalf of the user.
// The caller's number is kept as metadata only; all calls are bridged to
// the configured forward-to number.
func (s *Service) PlaceCall(ctx context.Context, toNumber string) error {
	form := url.Values{
		"To":   {s.cfg.ForwardToNumber},
		"From": {s.cfg.FromNumber},
		"Url":  {voiceURL},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(form.Encode()).
		Post(fmt.Sprintf("/2010-04-01/Accounts/%s/Calls.json", s.cfg.AccountSID))
	if err != nil {
		s.log.Error("twilio request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrCallFailed, err)
	}
	if resp.IsError() {
		s.log.Error("twilio rejected call",
			zap.Int("status", resp.StatusCode()),
			zap.String("requested_by", toNumber))
		return fmt.Errorf("%w: status %d", ErrCallFailed, resp.StatusCode())
	}

	s.log.Info("call placed", zap.String("requested_by", toNumber))
	return nil
}
