package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outbound delivery headers.
const (
	HeaderWebhookID        = "X-Webhook-Id"
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderWebhookEvent     = "X-Webhook-Event"
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"
)

// MaxResponseBodyBytes caps the response body kept in logs and on the event.
const MaxResponseBodyBytes = 4 << 10

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DeliveryBody is the JSON document POSTed to destinations.
type DeliveryBody struct {
	ID        uuid.UUID       `json:"id"`
	EventType string          `json:"event_type"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

// ExecutorConfig tunes outbound requests.
type ExecutorConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// deliveryExecutor implements ports.DeliveryExecutor.
type deliveryExecutor struct {
	eventRepo  ports.WebhookEventRepository
	logRepo    ports.WebhookLogRepository
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	cfg        ExecutorConfig
	metrics    *observability.Metrics
	now        func() time.Time
	log        zerolog.Logger
}

// NewDeliveryExecutor creates the executor. Every Deliver call appends exactly
// one WebhookLog unless the attempt number cannot be allocated.
func NewDeliveryExecutor(
	eventRepo ports.WebhookEventRepository,
	logRepo ports.WebhookLogRepository,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	cfg ExecutorConfig,
	metrics *observability.Metrics,
	log zerolog.Logger,
) ports.DeliveryExecutor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "wellness-dispatch/1.0"
	}
	return &deliveryExecutor{
		eventRepo:  eventRepo,
		logRepo:    logRepo,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		cfg:        cfg,
		metrics:    metrics,
		now:        time.Now,
		log:        log,
	}
}

// Deliver performs one signed POST. A non-2xx response or transport error is a
// failed attempt, reported in the result rather than as an error.
func (e *deliveryExecutor) Deliver(ctx context.Context, event *domain.WebhookEvent, dest *domain.WebhookDestination) (*ports.AttemptResult, error) {
	body, err := CanonicalJSON(DeliveryBody{
		ID:        event.ID,
		EventType: event.EventType,
		CreatedAt: event.CreatedAt,
		Payload:   event.Payload,
	})
	if err != nil {
		return nil, fmt.Errorf("building delivery body: %w", err)
	}

	signature, err := e.sigSvc.SignPayload(dest.Secret, json.RawMessage(body))
	if err != nil {
		return nil, fmt.Errorf("signing delivery body: %w", err)
	}

	attempt, err := e.eventRepo.IncrementAttempt(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("allocating attempt number: %w", err)
	}

	headers := e.buildHeaders(event, dest, signature)
	result, respHeaders := e.post(ctx, dest.URL, headers, body)
	result.AttemptNumber = attempt

	e.metrics.DeliveryAttempt(result.Success, result.Duration)

	entry := &domain.WebhookLog{
		ID:              uuid.New(),
		WebhookEventID:  event.ID,
		DestinationID:   dest.ID,
		AttemptNumber:   attempt,
		RequestURL:      dest.URL,
		RequestHeaders:  flattenHeaders(headers),
		RequestBody:     string(body),
		ResponseCode:    result.ResponseCode,
		ResponseHeaders: respHeaders,
		ResponseBody:    result.ResponseBody,
		ErrorMessage:    result.ErrorMessage,
		Duration:        result.Duration.Milliseconds(),
		CreatedAt:       e.now(),
	}
	if err := e.logRepo.Append(ctx, entry); err != nil {
		e.log.Error().Err(err).
			Str("event_id", event.ID.String()).
			Int("attempt", attempt).
			Msg("delivery: failed to append attempt log")
	}

	ev := e.log.Info()
	if !result.Success {
		ev = e.log.Warn()
	}
	ev.Str("event_id", event.ID.String()).
		Str("destination_id", dest.ID.String()).
		Int("attempt", attempt).
		Bool("success", result.Success).
		Dur("duration", result.Duration).
		Msg("delivery: attempt finished")

	return result, nil
}

// buildHeaders applies destination headers first so the required headers
// always win.
func (e *deliveryExecutor) buildHeaders(event *domain.WebhookEvent, dest *domain.WebhookDestination, signature string) http.Header {
	h := make(http.Header, len(dest.Headers)+6)
	for k, v := range dest.Headers {
		h.Set(k, v)
	}
	h.Set("Content-Type", "application/json")
	h.Set(HeaderWebhookID, event.ID.String())
	h.Set(HeaderWebhookSignature, signature)
	h.Set(HeaderWebhookEvent, event.EventType)
	h.Set(HeaderWebhookTimestamp, e.now().UTC().Format(time.RFC3339))
	h.Set("User-Agent", e.cfg.UserAgent)
	return h
}

func (e *deliveryExecutor) post(ctx context.Context, url string, headers http.Header, body []byte) (*ports.AttemptResult, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	result := &ports.AttemptResult{}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		result.ErrorMessage = strPtr(fmt.Sprintf("building request: %v", err))
		return result, nil
	}
	req.Header = headers.Clone()

	resp, err := e.httpClient.Do(req)
	if err != nil {
		result.Duration = time.Since(start)
		msg := err.Error()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			msg = fmt.Sprintf("request timed out after %s", e.cfg.Timeout)
		}
		result.ErrorMessage = &msg
		return result, nil
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBodyBytes))
	result.Duration = time.Since(start)

	code := resp.StatusCode
	respBody := string(raw)
	result.ResponseCode = &code
	result.ResponseBody = &respBody
	result.Success = code >= 200 && code < 300

	if !result.Success {
		result.ErrorMessage = strPtr(fmt.Sprintf("destination responded with HTTP %d", code))
	} else if readErr != nil {
		e.log.Debug().Err(readErr).Str("url", url).Msg("delivery: response body read incomplete")
	}

	return result, flattenHeaders(resp.Header)
}

func flattenHeaders(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}

func strPtr(s string) *string { return &s }
