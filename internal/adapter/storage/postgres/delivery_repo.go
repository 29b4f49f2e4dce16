package postgres

import (
	"context"
	"fmt"

	"wellness-dispatch/internal/core/domain"

	"github.com/google/uuid"
)

// DeliveryRepo implements ports.WebhookDeliveryRepository.
type DeliveryRepo struct {
	pool Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(pool Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

// Create inserts a delivery row. When the (event, destination) pair already
// exists, d is overwritten with the stored row so later updates hit it.
func (r *DeliveryRepo) Create(ctx context.Context, d *domain.WebhookDelivery) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO webhook_deliveries
		(id, event_id, destination_id, status, retry_count, max_retries, next_retry_at, last_error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (event_id, destination_id) DO UPDATE SET updated_at = webhook_deliveries.updated_at
		RETURNING id, status, retry_count, max_retries, next_retry_at, last_error, created_at, updated_at`,
		d.ID, d.EventID, d.DestinationID, d.Status, d.RetryCount, d.MaxRetries,
		d.NextRetryAt, d.LastError, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID, &d.Status, &d.RetryCount, &d.MaxRetries, &d.NextRetryAt, &d.LastError, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert webhook delivery: %w", err)
	}
	return nil
}

// Update writes the delivery's retry state.
func (r *DeliveryRepo) Update(ctx context.Context, d *domain.WebhookDelivery) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE webhook_deliveries
		SET status = $1, retry_count = $2, max_retries = $3, next_retry_at = $4, last_error = $5, updated_at = $6
		WHERE id = $7`,
		d.Status, d.RetryCount, d.MaxRetries, d.NextRetryAt, d.LastError, d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update webhook delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update webhook delivery %s: no such row", d.ID)
	}
	return nil
}

// ListByEvent returns an event's deliveries in creation order.
func (r *DeliveryRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.WebhookDelivery, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, event_id, destination_id, status, retry_count, max_retries, next_retry_at, last_error, created_at, updated_at
		FROM webhook_deliveries WHERE event_id = $1 ORDER BY created_at, id`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list webhook deliveries: %w", err)
	}
	defer rows.Close()

	var out []*domain.WebhookDelivery
	for rows.Next() {
		d := &domain.WebhookDelivery{}
		if err := rows.Scan(
			&d.ID, &d.EventID, &d.DestinationID, &d.Status, &d.RetryCount, &d.MaxRetries,
			&d.NextRetryAt, &d.LastError, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook delivery: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook deliveries: %w", err)
	}
	return out, nil
}
