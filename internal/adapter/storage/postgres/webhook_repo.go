package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"wellness-dispatch/internal/core/domain"

	"github.com/google/uuid"
)

// WebhookLogRepo implements ports.WebhookLogRepository. Rows are never updated.
type WebhookLogRepo struct {
	pool Pool
}

// NewWebhookLogRepo creates a new WebhookLogRepo.
func NewWebhookLogRepo(pool Pool) *WebhookLogRepo {
	return &WebhookLogRepo{pool: pool}
}

// Append inserts one attempt record.
func (r *WebhookLogRepo) Append(ctx context.Context, l *domain.WebhookLog) error {
	reqHeaders, err := json.Marshal(l.RequestHeaders)
	if err != nil {
		return fmt.Errorf("marshal request headers: %w", err)
	}
	var respHeaders []byte
	if l.ResponseHeaders != nil {
		if respHeaders, err = json.Marshal(l.ResponseHeaders); err != nil {
			return fmt.Errorf("marshal response headers: %w", err)
		}
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO webhook_logs
		(id, webhook_event_id, destination_id, attempt_number, request_url, request_headers, request_body,
		 response_code, response_headers, response_body, error_message, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		l.ID, l.WebhookEventID, l.DestinationID, l.AttemptNumber, l.RequestURL, reqHeaders, l.RequestBody,
		l.ResponseCode, respHeaders, l.ResponseBody, l.ErrorMessage, l.Duration, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook log: %w", err)
	}
	return nil
}

// ListByEvent returns an event's attempts ordered by attempt number.
func (r *WebhookLogRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.WebhookLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, webhook_event_id, destination_id, attempt_number, request_url, request_headers, request_body,
			response_code, response_headers, response_body, error_message, duration_ms, created_at
		FROM webhook_logs
		WHERE webhook_event_id = $1
		ORDER BY attempt_number`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list webhook logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.WebhookLog
	for rows.Next() {
		var l domain.WebhookLog
		var reqHeaders, respHeaders []byte
		if err := rows.Scan(
			&l.ID, &l.WebhookEventID, &l.DestinationID, &l.AttemptNumber, &l.RequestURL, &reqHeaders, &l.RequestBody,
			&l.ResponseCode, &respHeaders, &l.ResponseBody, &l.ErrorMessage, &l.Duration, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook log: %w", err)
		}
		if err := unmarshalHeaders(reqHeaders, &l.RequestHeaders); err != nil {
			return nil, err
		}
		if err := unmarshalHeaders(respHeaders, &l.ResponseHeaders); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func unmarshalHeaders(raw []byte, dst *map[string]string) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal headers: %w", err)
	}
	return nil
}
