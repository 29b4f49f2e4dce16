package service

import (
	"context"
	"fmt"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"

	"github.com/rs/zerolog"
)

// maxBackoffShift bounds 2^n so exponential backoff cannot overflow.
const maxBackoffShift = 30

// BackoffConfig holds the backoff tunables.
type BackoffConfig struct {
	Base  time.Duration // unit for exponential and linear
	Fixed time.Duration // delay for fixed
}

// DefaultBackoff is 1s base and 5s fixed.
var DefaultBackoff = BackoffConfig{Base: time.Second, Fixed: 5 * time.Second}

// retryScheduler implements ports.RetryScheduler on durable delivery state.
// The retry worker picks scheduled deliveries up again through their event.
type retryScheduler struct {
	deliveryRepo ports.WebhookDeliveryRepository
	security     ports.SecurityLogger
	backoff      BackoffConfig
	metrics      *observability.Metrics
	now          func() time.Time
	log          zerolog.Logger
}

// NewRetryScheduler creates a new retry scheduler.
func NewRetryScheduler(
	deliveryRepo ports.WebhookDeliveryRepository,
	security ports.SecurityLogger,
	backoff BackoffConfig,
	metrics *observability.Metrics,
	log zerolog.Logger,
) ports.RetryScheduler {
	if backoff.Base <= 0 {
		backoff.Base = DefaultBackoff.Base
	}
	if backoff.Fixed <= 0 {
		backoff.Fixed = DefaultBackoff.Fixed
	}
	return &retryScheduler{
		deliveryRepo: deliveryRepo,
		security:     security,
		backoff:      backoff,
		metrics:      metrics,
		now:          time.Now,
		log:          log,
	}
}

// Backoff returns the delay before retry number retryCount.
//
//	exponential: 2^n * base
//	linear:      n * base
//	fixed:       fixed
func (s *retryScheduler) Backoff(retryCount int, strategy domain.RetryStrategy) time.Duration {
	if retryCount < 0 {
		retryCount = 0
	}
	switch strategy {
	case domain.RetryStrategyLinear:
		return time.Duration(retryCount) * s.backoff.Base
	case domain.RetryStrategyFixed:
		return s.backoff.Fixed
	default:
		shift := retryCount
		if shift > maxBackoffShift {
			shift = maxBackoffShift
		}
		return s.backoff.Base * time.Duration(int64(1)<<uint(shift))
	}
}

// ScheduleRetry records a failed attempt on the delivery. Once the delivery has
// used its retry budget it is failed and a webhook_retries_exhausted security
// event is logged; otherwise the next attempt is scheduled.
func (s *retryScheduler) ScheduleRetry(
	ctx context.Context,
	event *domain.WebhookEvent,
	delivery *domain.WebhookDelivery,
	dest *domain.WebhookDestination,
	result *ports.AttemptResult,
) error {
	now := s.now()
	lastErr := attemptError(result)
	delivery.LastError = &lastErr
	delivery.UpdatedAt = now

	if delivery.RetryCount >= delivery.MaxRetries {
		delivery.Status = domain.DeliveryStatusFailed
		delivery.NextRetryAt = nil
		if err := s.deliveryRepo.Update(ctx, delivery); err != nil {
			return fmt.Errorf("marking delivery failed: %w", err)
		}

		s.metrics.RetriesExhausted()
		s.log.Warn().
			Str("event_id", event.ID.String()).
			Str("destination_id", delivery.DestinationID.String()).
			Int("retry_count", delivery.RetryCount).
			Msg("retry: retries exhausted")

		s.security.LogEvent(ctx, domain.SecurityWebhookRetriesExhausted, domain.Actor{}, domain.ClientInfo{},
			map[string]interface{}{
				"event_id":       event.ID.String(),
				"event_type":     event.EventType,
				"destination_id": delivery.DestinationID.String(),
				"attempts":       delivery.RetryCount + 1,
				"last_error":     lastErr,
			})
		return nil
	}

	strategy := domain.RetryStrategyExponential
	if dest != nil && dest.RetryStrategy.Valid() {
		strategy = dest.RetryStrategy
	}

	delivery.RetryCount++
	next := now.Add(s.Backoff(delivery.RetryCount, strategy))
	delivery.NextRetryAt = &next
	delivery.Status = domain.DeliveryStatusRetrying

	if err := s.deliveryRepo.Update(ctx, delivery); err != nil {
		return fmt.Errorf("scheduling retry: %w", err)
	}

	s.metrics.RetryScheduled(string(strategy))
	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("destination_id", delivery.DestinationID.String()).
		Int("retry_count", delivery.RetryCount).
		Time("next_retry_at", next).
		Msg("retry: scheduled")
	return nil
}

func attemptError(result *ports.AttemptResult) string {
	switch {
	case result == nil:
		return "no attempt result"
	case result.ErrorMessage != nil:
		return *result.ErrorMessage
	case result.ResponseCode != nil:
		return fmt.Sprintf("destination responded with HTTP %d", *result.ResponseCode)
	}
	return "delivery failed"
}
