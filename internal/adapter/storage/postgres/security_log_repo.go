package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const securityLogColumns = `id, event_type, severity, user_id, email, ip_address, user_agent, details, created_at`

// SecurityLogRepo implements ports.SecurityLogRepository.
type SecurityLogRepo struct {
	pool Pool
}

// NewSecurityLogRepo creates a PostgreSQL-backed security log.
func NewSecurityLogRepo(pool Pool) *SecurityLogRepo {
	return &SecurityLogRepo{pool: pool}
}

// Append inserts an entry.
func (r *SecurityLogRepo) Append(ctx context.Context, e *domain.SecurityLogEntry) error {
	var details []byte
	if e.Details != nil {
		var err error
		if details, err = json.Marshal(e.Details); err != nil {
			return fmt.Errorf("marshal security log details: %w", err)
		}
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO security_logs (`+securityLogColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.EventType, e.Severity, e.UserID, e.Email, e.IPAddress, e.UserAgent, details, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert security log: %w", err)
	}
	return nil
}

// CountByUserSince counts a user's entries of one type created at or after since.
func (r *SecurityLogRepo) CountByUserSince(ctx context.Context, userID uuid.UUID, eventType domain.SecurityEventType, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM security_logs WHERE user_id = $1 AND event_type = $2 AND created_at >= $3`,
		userID, eventType, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count security logs: %w", err)
	}
	return n, nil
}

// RecentByUser returns a user's latest entries of one type, newest first.
func (r *SecurityLogRepo) RecentByUser(ctx context.Context, userID uuid.UUID, eventType domain.SecurityEventType, limit int) ([]domain.SecurityLogEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+securityLogColumns+` FROM security_logs
		WHERE user_id = $1 AND event_type = $2
		ORDER BY created_at DESC LIMIT $3`,
		userID, eventType, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent security logs: %w", err)
	}
	return collectSecurityLogs(rows)
}

// List returns entries matching filter, newest first.
func (r *SecurityLogRepo) List(ctx context.Context, f domain.SecurityLogFilter, page ports.Pagination) ([]domain.SecurityLogEntry, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if f.EventType != "" {
		conditions = append(conditions, fmt.Sprintf("event_type = $%d", argIdx))
		args = append(args, f.EventType)
		argIdx++
	}
	if f.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *f.UserID)
		argIdx++
	}
	if f.Since != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *f.Since)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM security_logs "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count security logs: %w", err)
	}

	page = page.Normalize()
	query := fmt.Sprintf(`SELECT %s FROM security_logs %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		securityLogColumns, where, argIdx, argIdx+1)
	args = append(args, page.PageSize, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list security logs: %w", err)
	}
	entries, err := collectSecurityLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func collectSecurityLogs(rows pgx.Rows) ([]domain.SecurityLogEntry, error) {
	defer rows.Close()

	var out []domain.SecurityLogEntry
	for rows.Next() {
		var e domain.SecurityLogEntry
		var details []byte
		if err := rows.Scan(
			&e.ID, &e.EventType, &e.Severity, &e.UserID, &e.Email, &e.IPAddress, &e.UserAgent, &details, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan security log: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, fmt.Errorf("unmarshal security log details: %w", err)
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate security logs: %w", err)
	}
	return out, nil
}
