package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"wellness-dispatch/internal/core/domain"

	"github.com/google/uuid"
)

// DestinationRepo implements ports.DestinationRepository.
type DestinationRepo struct {
	mu           sync.RWMutex
	destinations map[uuid.UUID]*domain.WebhookDestination
}

func NewDestinationRepo() *DestinationRepo {
	return &DestinationRepo{destinations: make(map[uuid.UUID]*domain.WebhookDestination)}
}

func (r *DestinationRepo) List(ctx context.Context) ([]domain.WebhookDestination, error) {
	return r.filter(func(*domain.WebhookDestination) bool { return true }), nil
}

func (r *DestinationRepo) ListActiveFor(ctx context.Context, eventType string) ([]domain.WebhookDestination, error) {
	return r.filter(func(d *domain.WebhookDestination) bool { return d.Subscribes(eventType) }), nil
}

func (r *DestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.destinations[id]
	if !ok {
		return nil, nil
	}
	c := copyDestination(d)
	return &c, nil
}

func (r *DestinationRepo) Upsert(ctx context.Context, d *domain.WebhookDestination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := copyDestination(d)
	if existing, ok := r.destinations[d.ID]; ok {
		c.CreatedAt = existing.CreatedAt
	}
	r.destinations[d.ID] = &c
	return nil
}

func (r *DestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.destinations, id)
	return nil
}

func (r *DestinationRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.destinations[id]; ok {
		d.Active = active
		d.UpdatedAt = time.Now()
	}
	return nil
}

func (r *DestinationRepo) filter(keep func(*domain.WebhookDestination) bool) []domain.WebhookDestination {
	r.mu.RLock()
	var out []domain.WebhookDestination
	for _, d := range r.destinations {
		if keep(d) {
			out = append(out, copyDestination(d))
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func copyDestination(d *domain.WebhookDestination) domain.WebhookDestination {
	c := *d
	c.EventTypes = append([]string(nil), d.EventTypes...)
	if d.Headers != nil {
		c.Headers = make(map[string]string, len(d.Headers))
		for k, v := range d.Headers {
			c.Headers[k] = v
		}
	}
	return c
}
