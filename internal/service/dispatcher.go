package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"
	"wellness-dispatch/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// errDestinationGone is recorded on deliveries whose destination was deleted
// or deactivated after the event fanned out.
const errDestinationGone = "destination deleted or inactive"

// Dispatcher implements ports.Dispatcher.
type Dispatcher struct {
	eventRepo    ports.WebhookEventRepository
	deliveryRepo ports.WebhookDeliveryRepository
	destinations ports.DestinationService
	executor     ports.DeliveryExecutor
	scheduler    ports.RetryScheduler
	metrics      *observability.Metrics
	now          func() time.Time
	log          zerolog.Logger

	// background tracks detached processing started by CreateEvent and RetryEvent.
	background sync.WaitGroup
}

var _ ports.Dispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a new dispatcher.
func NewDispatcher(
	eventRepo ports.WebhookEventRepository,
	deliveryRepo ports.WebhookDeliveryRepository,
	destinations ports.DestinationService,
	executor ports.DeliveryExecutor,
	scheduler ports.RetryScheduler,
	metrics *observability.Metrics,
	log zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		eventRepo:    eventRepo,
		deliveryRepo: deliveryRepo,
		destinations: destinations,
		executor:     executor,
		scheduler:    scheduler,
		metrics:      metrics,
		now:          time.Now,
		log:          log,
	}
}

// CreateEvent persists a pending event and starts processing it in the
// background. Delivery outcomes are only visible through the event status.
func (d *Dispatcher) CreateEvent(ctx context.Context, eventType string, source domain.EventSource, payload json.RawMessage) (*domain.WebhookEvent, error) {
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		return nil, apperror.ErrInvalidEvent("event_type is required")
	}
	if !source.Valid() {
		return nil, apperror.ErrInvalidEvent(fmt.Sprintf("unknown source %q", source))
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return nil, apperror.ErrInvalidEvent("payload must be valid JSON")
	}

	now := d.now()
	event := &domain.WebhookEvent{
		ID:        uuid.New(),
		EventType: eventType,
		Source:    source,
		Status:    domain.EventStatusPending,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.eventRepo.Create(ctx, event); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	d.metrics.EventCreated(string(source))
	d.log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", eventType).
		Str("source", string(source)).
		Msg("dispatch: event created")

	d.processDetached(event.ID, d.ProcessEvent)
	return event, nil
}

// ProcessEvent claims a pending or retrying event and attempts every due
// delivery, then derives the event status from the delivery outcomes.
// Settled events and events another caller is already processing are left
// untouched.
func (d *Dispatcher) ProcessEvent(ctx context.Context, eventID uuid.UUID) error {
	event, err := d.loadEvent(ctx, eventID)
	if err != nil || event == nil {
		return err
	}
	if event.Status == domain.EventStatusProcessing {
		d.log.Debug().Str("event_id", eventID.String()).Msg("dispatch: event already in flight")
		return nil
	}

	now := d.now()
	claimed, err := d.eventRepo.ClaimForProcessing(ctx, eventID, now, domain.EventStatusPending, domain.EventStatusRetrying)
	if err != nil {
		return fmt.Errorf("claiming event: %w", err)
	}
	if !claimed {
		d.log.Debug().Str("event_id", eventID.String()).Msg("dispatch: event claimed elsewhere")
		return nil
	}
	event.Status = domain.EventStatusProcessing
	event.UpdatedAt = now
	return d.process(ctx, event)
}

// ProcessClaimed processes an event the caller has already moved to
// processing, such as the ids returned by ClaimDue. Events in any other
// non-terminal state go through the ProcessEvent claim.
func (d *Dispatcher) ProcessClaimed(ctx context.Context, eventID uuid.UUID) error {
	event, err := d.loadEvent(ctx, eventID)
	if err != nil || event == nil {
		return err
	}
	if event.Status != domain.EventStatusProcessing {
		return d.ProcessEvent(ctx, eventID)
	}
	return d.process(ctx, event)
}

// loadEvent returns nil, nil for settled events.
func (d *Dispatcher) loadEvent(ctx context.Context, eventID uuid.UUID) (*domain.WebhookEvent, error) {
	event, err := d.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("loading event: %w", err)
	}
	if event == nil {
		return nil, apperror.ErrNotFound("Event")
	}
	if event.Status.IsTerminal() {
		d.log.Debug().Str("event_id", eventID.String()).Str("status", string(event.Status)).Msg("dispatch: event already settled")
		return nil, nil
	}
	return event, nil
}

func (d *Dispatcher) process(ctx context.Context, event *domain.WebhookEvent) error {
	deliveries, targets, err := d.resolveDeliveries(ctx, event)
	if err != nil {
		return err
	}

	now := d.now()
	results := make([]*ports.AttemptResult, len(deliveries))
	var g errgroup.Group
	for i, delivery := range deliveries {
		if !delivery.IsDue(now) {
			continue
		}
		dest := targets[delivery.DestinationID]
		if dest == nil || !dest.Active {
			d.failDelivery(ctx, delivery, errDestinationGone)
			continue
		}

		g.Go(func() error {
			result, err := d.executor.Deliver(ctx, event, dest)
			if err != nil {
				d.log.Error().Err(err).
					Str("event_id", event.ID.String()).
					Str("destination_id", dest.ID.String()).
					Msg("dispatch: delivery could not be attempted")
				return err
			}
			results[i] = result
			return d.settleDelivery(ctx, event, delivery, dest, result)
		})
	}
	groupErr := g.Wait()

	d.applyLatestAttempt(event, results)

	rollup := domain.RollupDeliveries(deliveries)
	event.Status = rollup.Status
	event.RetryCount = rollup.RetryCount
	event.MaxRetries = rollup.MaxRetries
	event.NextRetryAt = rollup.NextRetryAt
	event.UpdatedAt = d.now()

	if err := d.eventRepo.Update(ctx, event); err != nil {
		return errors.Join(groupErr, fmt.Errorf("saving event status: %w", err))
	}

	d.metrics.EventOutcome(string(event.Status))
	d.log.Info().
		Str("event_id", event.ID.String()).
		Str("status", string(event.Status)).
		Int("deliveries", len(deliveries)).
		Msg("dispatch: event processed")

	return groupErr
}

// RetryEvent resets the event and its unfinished deliveries and processes it again.
func (d *Dispatcher) RetryEvent(ctx context.Context, eventID uuid.UUID) error {
	event, err := d.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if event == nil {
		return apperror.ErrNotFound("Event")
	}

	now := d.now()
	claimed, err := d.eventRepo.ClaimForProcessing(ctx, eventID, now,
		domain.EventStatusPending, domain.EventStatusRetrying, domain.EventStatusDelivered, domain.EventStatusFailed)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !claimed {
		return apperror.ErrEventNotRetryable()
	}
	// reload: the row may have changed between the read and the claim
	if event, err = d.eventRepo.GetByID(ctx, eventID); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if event == nil {
		return apperror.ErrNotFound("Event")
	}

	deliveries, err := d.deliveryRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}

	for _, delivery := range deliveries {
		if delivery.Status == domain.DeliveryStatusDelivered {
			continue
		}
		delivery.Status = domain.DeliveryStatusPending
		delivery.RetryCount = 0
		delivery.NextRetryAt = nil
		delivery.LastError = nil
		delivery.UpdatedAt = now
		if err := d.deliveryRepo.Update(ctx, delivery); err != nil {
			return apperror.ErrDatabaseError(err)
		}
	}

	event.Status = domain.EventStatusProcessing
	event.RetryCount = 0
	event.NextRetryAt = nil
	event.UpdatedAt = now
	if err := d.eventRepo.Update(ctx, event); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	d.log.Info().Str("event_id", eventID.String()).Msg("dispatch: manual retry requested")
	d.processDetached(eventID, d.ProcessClaimed)
	return nil
}

// Wait blocks until all background processing has finished.
func (d *Dispatcher) Wait() {
	d.background.Wait()
}

func (d *Dispatcher) processDetached(eventID uuid.UUID, run func(context.Context, uuid.UUID) error) {
	d.background.Add(1)
	go func() {
		defer d.background.Done()
		if err := run(context.Background(), eventID); err != nil {
			d.log.Error().Err(err).Str("event_id", eventID.String()).Msg("dispatch: background processing failed")
		}
	}()
}

// resolveDeliveries returns the event's deliveries, fanning out on first
// processing, together with the destinations they target.
func (d *Dispatcher) resolveDeliveries(ctx context.Context, event *domain.WebhookEvent) ([]*domain.WebhookDelivery, map[uuid.UUID]*domain.WebhookDestination, error) {
	deliveries, err := d.deliveryRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing deliveries: %w", err)
	}
	targets := make(map[uuid.UUID]*domain.WebhookDestination)

	if len(deliveries) == 0 {
		dests, err := d.destinations.ActiveFor(ctx, event.EventType)
		if err != nil {
			return nil, nil, fmt.Errorf("loading destinations: %w", err)
		}
		now := d.now()
		for i := range dests {
			dest := &dests[i]
			delivery := &domain.WebhookDelivery{
				ID:            uuid.New(),
				EventID:       event.ID,
				DestinationID: dest.ID,
				Status:        domain.DeliveryStatusPending,
				MaxRetries:    dest.MaxRetries,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := d.deliveryRepo.Create(ctx, delivery); err != nil {
				return nil, nil, fmt.Errorf("creating delivery: %w", err)
			}
			deliveries = append(deliveries, delivery)
			targets[dest.ID] = dest
		}
		return deliveries, targets, nil
	}

	for _, delivery := range deliveries {
		if _, seen := targets[delivery.DestinationID]; seen || !delivery.IsDue(d.now()) {
			continue
		}
		dest, err := d.destinations.Get(ctx, delivery.DestinationID)
		if err != nil {
			return nil, nil, fmt.Errorf("loading destination %s: %w", delivery.DestinationID, err)
		}
		targets[delivery.DestinationID] = dest
	}
	return deliveries, targets, nil
}

func (d *Dispatcher) settleDelivery(ctx context.Context, event *domain.WebhookEvent, delivery *domain.WebhookDelivery, dest *domain.WebhookDestination, result *ports.AttemptResult) error {
	if !result.Success {
		return d.scheduler.ScheduleRetry(ctx, event, delivery, dest, result)
	}

	delivery.Status = domain.DeliveryStatusDelivered
	delivery.NextRetryAt = nil
	delivery.LastError = nil
	delivery.UpdatedAt = d.now()
	if err := d.deliveryRepo.Update(ctx, delivery); err != nil {
		return fmt.Errorf("marking delivery delivered: %w", err)
	}
	return nil
}

func (d *Dispatcher) failDelivery(ctx context.Context, delivery *domain.WebhookDelivery, reason string) {
	delivery.Status = domain.DeliveryStatusFailed
	delivery.NextRetryAt = nil
	delivery.LastError = &reason
	delivery.UpdatedAt = d.now()
	if err := d.deliveryRepo.Update(ctx, delivery); err != nil {
		d.log.Error().Err(err).Str("delivery_id", delivery.ID.String()).Msg("dispatch: failed to mark delivery failed")
	}
}

// applyLatestAttempt copies the outcome of the highest-numbered attempt onto the event.
func (d *Dispatcher) applyLatestAttempt(event *domain.WebhookEvent, results []*ports.AttemptResult) {
	var latest *ports.AttemptResult
	for _, r := range results {
		if r != nil && (latest == nil || r.AttemptNumber > latest.AttemptNumber) {
			latest = r
		}
	}
	if latest == nil {
		return
	}
	ms := latest.Duration.Milliseconds()
	event.ResponseCode = latest.ResponseCode
	event.ResponseBody = latest.ResponseBody
	event.ErrorMessage = latest.ErrorMessage
	event.ProcessingTime = &ms
}
