package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, event_type, source, status, payload, response_code, response_body, error_message,
		processing_time_ms, retry_count, max_retries, next_retry_at, attempt_count, created_at, updated_at`

// EventRepo implements ports.WebhookEventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create inserts a new webhook event.
func (r *EventRepo) Create(ctx context.Context, e *domain.WebhookEvent) error {
	query := `INSERT INTO webhook_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.EventType, e.Source, e.Status, []byte(e.Payload),
		e.ResponseCode, e.ResponseBody, e.ErrorMessage, e.ProcessingTime,
		e.RetryCount, e.MaxRetries, e.NextRetryAt, e.AttemptCount,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook event: %w", err)
	}
	return nil
}

// Update writes the mutable columns. attempt_count is owned by IncrementAttempt.
func (r *EventRepo) Update(ctx context.Context, e *domain.WebhookEvent) error {
	query := `UPDATE webhook_events
		SET status = $1, response_code = $2, response_body = $3, error_message = $4,
			processing_time_ms = $5, retry_count = $6, max_retries = $7, next_retry_at = $8, updated_at = $9
		WHERE id = $10`

	_, err := r.pool.Exec(ctx, query,
		e.Status, e.ResponseCode, e.ResponseBody, e.ErrorMessage,
		e.ProcessingTime, e.RetryCount, e.MaxRetries, e.NextRetryAt, e.UpdatedAt,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("update webhook event: %w", err)
	}
	return nil
}

// GetByID fetches an event by id.
func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM webhook_events WHERE id = $1`

	e, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook event by id: %w", err)
	}
	return e, nil
}

// List fetches events with filtering and pagination, newest first.
func (r *EventRepo) List(ctx context.Context, f domain.EventFilter, page ports.Pagination) ([]domain.WebhookEvent, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if f.EventType != "" {
		conditions = append(conditions, fmt.Sprintf("event_type = $%d", argIdx))
		args = append(args, f.EventType)
		argIdx++
	}
	if f.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", argIdx))
		args = append(args, f.Source)
		argIdx++
	}
	if f.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, f.Status)
		argIdx++
	}
	if f.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *f.From)
		argIdx++
	}
	if f.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *f.To)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM webhook_events %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count webhook events: %w", err)
	}

	page = page.Normalize()
	dataQuery := fmt.Sprintf(`SELECT %s FROM webhook_events %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		eventColumns, where, argIdx, argIdx+1)
	args = append(args, page.PageSize, page.Offset())

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list webhook events: %w", err)
	}
	defer rows.Close()

	var events []domain.WebhookEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan webhook event row: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate webhook event rows: %w", err)
	}
	return events, total, nil
}

// Stats aggregates event counts by status within [from, to].
func (r *EventRepo) Stats(ctx context.Context, from, to *time.Time) (*domain.EventStats, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if from != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *to)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'delivered') AS delivered,
		COUNT(*) FILTER (WHERE status = 'failed') AS failed,
		COUNT(*) FILTER (WHERE status = 'pending') AS pending,
		COUNT(*) FILTER (WHERE status = 'processing') AS processing,
		COUNT(*) FILTER (WHERE status = 'retrying') AS retrying
		FROM webhook_events %s`, where)

	stats := &domain.EventStats{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&stats.Total, &stats.Delivered, &stats.Failed,
		&stats.Pending, &stats.Processing, &stats.Retrying,
	)
	if err != nil {
		return nil, fmt.Errorf("get webhook event stats: %w", err)
	}
	stats.ComputeSuccessRate()
	return stats, nil
}

// IncrementAttempt bumps attempt_count in a single statement so concurrent
// deliveries for one event never share an attempt number.
func (r *EventRepo) IncrementAttempt(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`UPDATE webhook_events SET attempt_count = attempt_count + 1 WHERE id = $1 RETURNING attempt_count`, id,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("increment attempt count: %w", err)
	}
	return n, nil
}

// ClaimForProcessing is a compare-and-set on status; only one concurrent
// caller sees a row affected.
func (r *EventRepo) ClaimForProcessing(ctx context.Context, id uuid.UUID, now time.Time, from ...domain.EventStatus) (bool, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE webhook_events SET status = 'processing', updated_at = $2
		WHERE id = $1 AND status = ANY($3)`,
		id, now, statuses,
	)
	if err != nil {
		return false, fmt.Errorf("claim webhook event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimDue flips due retrying events to processing. SKIP LOCKED lets several
// workers poll the same table without double-claiming.
func (r *EventRepo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `UPDATE webhook_events SET status = 'processing', updated_at = $1
		WHERE id IN (
			SELECT id FROM webhook_events
			WHERE status = 'retrying' AND next_retry_at <= $1
			ORDER BY next_retry_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("claim due webhook events: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan claimed id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claimed ids: %w", err)
	}
	return ids, nil
}

// RequeueStale makes stuck processing and orphaned pending events due again.
func (r *EventRepo) RequeueStale(ctx context.Context, olderThan, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE webhook_events SET status = 'retrying', next_retry_at = $2, updated_at = $2
		WHERE status IN ('processing', 'pending') AND updated_at < $1`,
		olderThan, now,
	)
	if err != nil {
		return 0, fmt.Errorf("requeue stale webhook events: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanEvent(row pgx.Row) (*domain.WebhookEvent, error) {
	e := &domain.WebhookEvent{}
	var payload []byte
	err := row.Scan(
		&e.ID, &e.EventType, &e.Source, &e.Status, &payload,
		&e.ResponseCode, &e.ResponseBody, &e.ErrorMessage, &e.ProcessingTime,
		&e.RetryCount, &e.MaxRetries, &e.NextRetryAt, &e.AttemptCount,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Payload = payload
	return e, nil
}
