package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"

	"github.com/google/uuid"
)

// EventRepo implements ports.WebhookEventRepository.
type EventRepo struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*domain.WebhookEvent
}

func NewEventRepo() *EventRepo {
	return &EventRepo{events: make(map[uuid.UUID]*domain.WebhookEvent)}
}

func (r *EventRepo) Create(ctx context.Context, e *domain.WebhookEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[e.ID]; ok {
		return fmt.Errorf("webhook event %s already exists", e.ID)
	}
	c := *e
	r.events[e.ID] = &c
	return nil
}

func (r *EventRepo) Update(ctx context.Context, e *domain.WebhookEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.events[e.ID]
	if !ok {
		return fmt.Errorf("webhook event %s not found", e.ID)
	}
	c := *e
	c.AttemptCount = existing.AttemptCount
	r.events[e.ID] = &c
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (r *EventRepo) List(ctx context.Context, f domain.EventFilter, page ports.Pagination) ([]domain.WebhookEvent, int64, error) {
	r.mu.RLock()
	var matched []domain.WebhookEvent
	for _, e := range r.events {
		if matchesEvent(e, f) {
			matched = append(matched, *e)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	page = page.Normalize()
	return paginate(matched, page.Offset(), page.PageSize), int64(len(matched)), nil
}

func (r *EventRepo) Stats(ctx context.Context, from, to *time.Time) (*domain.EventStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &domain.EventStats{}
	for _, e := range r.events {
		if !matchesEvent(e, domain.EventFilter{From: from, To: to}) {
			continue
		}
		stats.Total++
		switch e.Status {
		case domain.EventStatusDelivered:
			stats.Delivered++
		case domain.EventStatusFailed:
			stats.Failed++
		case domain.EventStatusPending:
			stats.Pending++
		case domain.EventStatusProcessing:
			stats.Processing++
		case domain.EventStatusRetrying:
			stats.Retrying++
		}
	}
	stats.ComputeSuccessRate()
	return stats, nil
}

func (r *EventRepo) IncrementAttempt(ctx context.Context, id uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return 0, fmt.Errorf("webhook event %s not found", id)
	}
	e.AttemptCount++
	return e.AttemptCount, nil
}

func (r *EventRepo) ClaimForProcessing(ctx context.Context, id uuid.UUID, now time.Time, from ...domain.EventStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return false, nil
	}
	for _, s := range from {
		if e.Status == s {
			e.Status = domain.EventStatusProcessing
			e.UpdatedAt = now
			return true, nil
		}
	}
	return false, nil
}

func (r *EventRepo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []*domain.WebhookEvent
	for _, e := range r.events {
		if e.Status == domain.EventStatusRetrying && e.NextRetryAt != nil && !e.NextRetryAt.After(now) {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].NextRetryAt.Before(*due[j].NextRetryAt) })
	if len(due) > limit {
		due = due[:limit]
	}

	ids := make([]uuid.UUID, 0, len(due))
	for _, e := range due {
		e.Status = domain.EventStatusProcessing
		e.UpdatedAt = now
		ids = append(ids, e.ID)
	}
	return ids, nil
}

func (r *EventRepo) RequeueStale(ctx context.Context, olderThan, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, e := range r.events {
		if (e.Status == domain.EventStatusProcessing || e.Status == domain.EventStatusPending) && e.UpdatedAt.Before(olderThan) {
			next := now
			e.Status = domain.EventStatusRetrying
			e.NextRetryAt = &next
			e.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func matchesEvent(e *domain.WebhookEvent, f domain.EventFilter) bool {
	if f.EventType != "" && e.EventType != f.EventType {
		return false
	}
	if f.Source != "" && e.Source != f.Source {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.From != nil && e.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && e.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

// DeliveryRepo implements ports.WebhookDeliveryRepository.
type DeliveryRepo struct {
	mu         sync.RWMutex
	deliveries map[uuid.UUID]*domain.WebhookDelivery
	order      []uuid.UUID
}

func NewDeliveryRepo() *DeliveryRepo {
	return &DeliveryRepo{deliveries: make(map[uuid.UUID]*domain.WebhookDelivery)}
}

func (r *DeliveryRepo) Create(ctx context.Context, d *domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.deliveries {
		if existing.EventID == d.EventID && existing.DestinationID == d.DestinationID {
			*d = *existing
			return nil
		}
	}
	c := *d
	r.deliveries[d.ID] = &c
	r.order = append(r.order, d.ID)
	return nil
}

func (r *DeliveryRepo) Update(ctx context.Context, d *domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.deliveries[d.ID]; !ok {
		return fmt.Errorf("webhook delivery %s not found", d.ID)
	}
	c := *d
	r.deliveries[d.ID] = &c
	return nil
}

func (r *DeliveryRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.WebhookDelivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.WebhookDelivery
	for _, id := range r.order {
		if d := r.deliveries[id]; d.EventID == eventID {
			c := *d
			out = append(out, &c)
		}
	}
	return out, nil
}

// WebhookLogRepo implements ports.WebhookLogRepository.
type WebhookLogRepo struct {
	mu   sync.RWMutex
	logs []domain.WebhookLog
}

func NewWebhookLogRepo() *WebhookLogRepo {
	return &WebhookLogRepo{}
}

func (r *WebhookLogRepo) Append(ctx context.Context, l *domain.WebhookLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *l)
	return nil
}

func (r *WebhookLogRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.WebhookLog, error) {
	r.mu.RLock()
	var out []domain.WebhookLog
	for _, l := range r.logs {
		if l.WebhookEventID == eventID {
			out = append(out, l)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].AttemptNumber < out[j].AttemptNumber })
	return out, nil
}
