package ports

import (
	"context"
	"time"

	"wellness-dispatch/internal/core/domain"

	"github.com/google/uuid"
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize clamps page to >= 1 and page size to 1..100 (default 20).
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return p
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// WebhookEventRepository persists webhook events.
// Getters return nil, nil when the row does not exist.
type WebhookEventRepository interface {
	Create(ctx context.Context, event *domain.WebhookEvent) error
	// Update writes every mutable column except attempt_count.
	Update(ctx context.Context, event *domain.WebhookEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookEvent, error)
	List(ctx context.Context, filter domain.EventFilter, page Pagination) ([]domain.WebhookEvent, int64, error)
	Stats(ctx context.Context, from, to *time.Time) (*domain.EventStats, error)
	// IncrementAttempt atomically bumps the event's attempt counter and returns the new value.
	IncrementAttempt(ctx context.Context, id uuid.UUID) (int, error)
	// ClaimForProcessing moves the event to processing only if its current
	// status is one of from. It reports whether this caller won the claim.
	ClaimForProcessing(ctx context.Context, id uuid.UUID, now time.Time, from ...domain.EventStatus) (bool, error)
	// ClaimDue flips up to limit retrying events whose next_retry_at <= now to processing.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	// RequeueStale moves events stuck in processing or pending since before olderThan
	// back to retrying with next_retry_at = now.
	RequeueStale(ctx context.Context, olderThan, now time.Time) (int64, error)
}

// WebhookDeliveryRepository persists per-(event, destination) delivery state.
type WebhookDeliveryRepository interface {
	Create(ctx context.Context, delivery *domain.WebhookDelivery) error
	Update(ctx context.Context, delivery *domain.WebhookDelivery) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.WebhookDelivery, error)
}

// WebhookLogRepository is the append-only attempt log.
type WebhookLogRepository interface {
	Append(ctx context.Context, log *domain.WebhookLog) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.WebhookLog, error)
}

// DestinationRepository persists webhook destinations.
// Secrets are stored exactly as given; callers encrypt before writing.
type DestinationRepository interface {
	List(ctx context.Context) ([]domain.WebhookDestination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error)
	ListActiveFor(ctx context.Context, eventType string) ([]domain.WebhookDestination, error)
	Upsert(ctx context.Context, destination *domain.WebhookDestination) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// SecurityLogRepository is the append-only security log.
type SecurityLogRepository interface {
	Append(ctx context.Context, entry *domain.SecurityLogEntry) error
	CountByUserSince(ctx context.Context, userID uuid.UUID, eventType domain.SecurityEventType, since time.Time) (int64, error)
	// RecentByUser returns the newest entries first.
	RecentByUser(ctx context.Context, userID uuid.UUID, eventType domain.SecurityEventType, limit int) ([]domain.SecurityLogEntry, error)
	List(ctx context.Context, filter domain.SecurityLogFilter, page Pagination) ([]domain.SecurityLogEntry, int64, error)
}

// AdminUserRepository persists back-office accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, user *domain.AdminUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	Update(ctx context.Context, user *domain.AdminUser) error
	Count(ctx context.Context) (int64, error)
}

// MigrationRunner applies the service's own DDL.
type MigrationRunner interface {
	Migrate(ctx context.Context) error
}
