package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/config"
)

const maxRetries = 3

// SMSService sends worker-facing text messages.
type SMSService interface {
	SendInviteLink(to, workerName, companyName, inviteLink, expiresAt string) error
}

type smsServiceImpl struct {
	cfg    config.SMSConfig
	client *http.Client
}

// NewSMSService creates a new SMS service instance. When the gateway is not
// configured the service logs and drops messages instead of failing, so
// local development works without credentials.
func NewSMSService(cfg config.SMSConfig) SMSService {
	return &smsServiceImpl{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendInviteLink texts the magic link to the worker's phone.
func (s *smsServiceImpl) SendInviteLink(to, workerName, companyName, inviteLink, expiresAt string) error {
	body := fmt.Sprintf(
		"Hi %s! %s invited you to clock in with FieldCrew. Tap to join: %s (expires %s)",
		workerName, companyName, inviteLink, expiresAt,
	)
	return s.send(to, body)
}

func (s *smsServiceImpl) send(to, body string) error {
	// Skip sending if the gateway is not configured
	if s.cfg.GatewayURL == "" {
		slog.Warn("SMS gateway not configured, skipping send", "to", to)
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"from": s.cfg.FromNumber,
		"to":   to,
		"body": body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sms payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := s.post(payload)
		if err == nil {
			slog.Info("SMS sent successfully", "to", to, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send SMS",
			"to", to,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send sms after %d attempts: %w", maxRetries, lastErr)
}

func (s *smsServiceImpl) post(payload []byte) error {
	req, err := http.NewRequest(http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
