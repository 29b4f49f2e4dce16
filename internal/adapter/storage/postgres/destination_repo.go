package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wellness-dispatch/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const destinationColumns = `id, name, url, secret_enc, event_types, headers, active, retry_strategy, max_retries, created_at, updated_at`

// DestinationRepo implements ports.DestinationRepository.
// The secret column holds whatever the caller passes, which is ciphertext in practice.
type DestinationRepo struct {
	pool Pool
}

// NewDestinationRepo creates a new DestinationRepo.
func NewDestinationRepo(pool Pool) *DestinationRepo {
	return &DestinationRepo{pool: pool}
}

// List returns all destinations ordered by name.
func (r *DestinationRepo) List(ctx context.Context) ([]domain.WebhookDestination, error) {
	return r.query(ctx, `SELECT `+destinationColumns+` FROM webhook_destinations ORDER BY name, id`)
}

// ListActiveFor returns active destinations subscribed to eventType.
func (r *DestinationRepo) ListActiveFor(ctx context.Context, eventType string) ([]domain.WebhookDestination, error) {
	return r.query(ctx,
		`SELECT `+destinationColumns+` FROM webhook_destinations
		WHERE active AND $1 = ANY(event_types) ORDER BY name, id`, eventType)
}

// GetByID fetches a destination by its UUID.
func (r *DestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx,
		`SELECT `+destinationColumns+` FROM webhook_destinations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get destination by id: %w", err)
	}
	return d, nil
}

// Upsert inserts the destination or replaces every mutable field of an existing one.
func (r *DestinationRepo) Upsert(ctx context.Context, d *domain.WebhookDestination) error {
	headers, err := json.Marshal(d.Headers)
	if err != nil {
		return fmt.Errorf("marshal destination headers: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO webhook_destinations (`+destinationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, url = EXCLUDED.url, secret_enc = EXCLUDED.secret_enc,
			event_types = EXCLUDED.event_types, headers = EXCLUDED.headers, active = EXCLUDED.active,
			retry_strategy = EXCLUDED.retry_strategy, max_retries = EXCLUDED.max_retries,
			updated_at = EXCLUDED.updated_at`,
		d.ID, d.Name, d.URL, d.Secret, d.EventTypes, headers, d.Active,
		d.RetryStrategy, d.MaxRetries, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert destination: %w", err)
	}
	return nil
}

// Delete removes a destination.
func (r *DestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM webhook_destinations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	return nil
}

// SetActive flips the active flag.
func (r *DestinationRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE webhook_destinations SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("set destination active: %w", err)
	}
	return nil
}

func (r *DestinationRepo) query(ctx context.Context, sql string, args ...any) ([]domain.WebhookDestination, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	var out []domain.WebhookDestination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate destinations: %w", err)
	}
	return out, nil
}

func scanDestination(row pgx.Row) (*domain.WebhookDestination, error) {
	d := &domain.WebhookDestination{}
	var headers []byte
	err := row.Scan(
		&d.ID, &d.Name, &d.URL, &d.Secret, &d.EventTypes, &headers, &d.Active,
		&d.RetryStrategy, &d.MaxRetries, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(headers) > 0 {
		if err := json.Unmarshal(headers, &d.Headers); err != nil {
			return nil, fmt.Errorf("unmarshal destination headers: %w", err)
		}
	}
	return d, nil
}
