package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"

	"github.com/rs/zerolog"
)

// AlertConfig configures the operator alert webhook.
type AlertConfig struct {
	URL         string        // empty disables alerting
	MaxRetries  int           // retries after the first attempt
	BackoffBase time.Duration // delay before the first retry, doubled after each failure
	Timeout     time.Duration // per attempt
}

// AlertMessage is the JSON body posted to the alert webhook. Text makes it
// usable with chat incoming-webhooks as is.
type AlertMessage struct {
	Text      string                 `json:"text"`
	EventType string                 `json:"event_type"`
	Severity  string                 `json:"severity"`
	UserID    string                 `json:"user_id,omitempty"`
	Email     string                 `json:"email,omitempty"`
	IPAddress string                 `json:"ip_address,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// AlertService implements ports.Alerter.
type AlertService struct {
	httpClient HTTPClient
	cfg        AlertConfig
	metrics    *observability.Metrics
	sleep      func(ctx context.Context, d time.Duration) error
	log        zerolog.Logger

	inflight sync.WaitGroup
}

var _ ports.Alerter = (*AlertService)(nil)

// NewAlertService creates a new alert service.
func NewAlertService(httpClient HTTPClient, cfg AlertConfig, metrics *observability.Metrics, log zerolog.Logger) *AlertService {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &AlertService{
		httpClient: httpClient,
		cfg:        cfg,
		metrics:    metrics,
		sleep:      sleepContext,
		log:        log,
	}
}

// Notify formats entry and sends it on a background goroutine.
func (s *AlertService) Notify(entry *domain.SecurityLogEntry) {
	if s.cfg.URL == "" {
		s.log.Debug().Str("event_type", string(entry.EventType)).Msg("alert: no alert URL configured, skipping")
		return
	}

	message, err := json.Marshal(FormatAlert(entry))
	if err != nil {
		s.log.Error().Err(err).Msg("alert: failed to marshal message")
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if err := s.SendAlertWithRetry(context.Background(), s.cfg.URL, message, s.cfg.MaxRetries); err != nil {
			s.log.Error().Err(err).Str("event_type", string(entry.EventType)).Msg("alert: delivery exhausted")
		}
	}()
}

// SendAlertWithRetry makes one POST attempt plus up to maxRetries retries,
// waiting base, 2*base, 4*base ... before each retry.
func (s *AlertService) SendAlertWithRetry(ctx context.Context, url string, message []byte, maxRetries int) error {
	if maxRetries < 0 {
		maxRetries = 0
	}

	var lastErr error
	delay := s.cfg.BackoffBase
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := s.sleep(ctx, delay); err != nil {
				return fmt.Errorf("alert aborted after %d attempts: %w", attempt, err)
			}
			delay *= 2
		}

		lastErr = s.post(ctx, url, message)
		if lastErr == nil {
			s.metrics.Alert(true)
			s.log.Info().Int("attempt", attempt+1).Msg("alert: sent")
			return nil
		}
		s.log.Warn().Err(lastErr).Int("attempt", attempt+1).Msg("alert: attempt failed")
	}

	s.metrics.Alert(false)
	return fmt.Errorf("alert not delivered after %d attempts: %w", maxRetries+1, lastErr)
}

// Close waits for in-flight alerts.
func (s *AlertService) Close() {
	s.inflight.Wait()
}

func (s *AlertService) post(ctx context.Context, url string, message []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(message))
	if err != nil {
		return fmt.Errorf("building alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("alert endpoint responded with HTTP %d", resp.StatusCode)
	}
	return nil
}

// FormatAlert renders a security log entry as an alert message.
func FormatAlert(entry *domain.SecurityLogEntry) AlertMessage {
	msg := AlertMessage{
		Text:      fmt.Sprintf("[%s] security event: %s", entry.Severity, entry.EventType),
		EventType: string(entry.EventType),
		Severity:  string(entry.Severity),
		Details:   entry.Details,
		Timestamp: entry.CreatedAt,
	}
	if entry.UserID != nil {
		msg.UserID = entry.UserID.String()
	}
	if entry.Email != nil {
		msg.Email = *entry.Email
		msg.Text += " (" + *entry.Email + ")"
	}
	if entry.IPAddress != nil {
		msg.IPAddress = *entry.IPAddress
	}
	if reason, ok := entry.Details["reason"].(string); ok {
		msg.Text += ": " + reason
	}
	return msg
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
