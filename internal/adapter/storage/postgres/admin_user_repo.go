package postgres

import (
	"context"
	"errors"
	"fmt"

	"wellness-dispatch/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AdminUserRepo implements ports.AdminUserRepository.
type AdminUserRepo struct {
	pool Pool
}

// NewAdminUserRepo creates a new AdminUserRepo.
func NewAdminUserRepo(pool Pool) *AdminUserRepo {
	return &AdminUserRepo{pool: pool}
}

// Create inserts a new admin user.
func (r *AdminUserRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admin_users (id, email, password_hash, failed_attempts, locked_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.PasswordHash, u.FailedAttempts, u.LockedUntil, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}

// GetByID fetches an admin user by UUID.
func (r *AdminUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	return r.get(ctx, "id", id)
}

// GetByEmail fetches an admin user by email.
func (r *AdminUserRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	return r.get(ctx, "email", email)
}

// Update writes the lockout counters and password hash.
func (r *AdminUserRepo) Update(ctx context.Context, u *domain.AdminUser) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admin_users SET password_hash = $1, failed_attempts = $2, locked_until = $3, updated_at = $4
		WHERE id = $5`,
		u.PasswordHash, u.FailedAttempts, u.LockedUntil, u.UpdatedAt, u.ID,
	)
	if err != nil {
		return fmt.Errorf("update admin user: %w", err)
	}
	return nil
}

// Count returns the number of admin users.
func (r *AdminUserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admin users: %w", err)
	}
	return n, nil
}

func (r *AdminUserRepo) get(ctx context.Context, column string, value any) (*domain.AdminUser, error) {
	query := fmt.Sprintf(`SELECT id, email, password_hash, failed_attempts, locked_until, created_at, updated_at
		FROM admin_users WHERE %s = $1`, column)

	u := &domain.AdminUser{}
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FailedAttempts, &u.LockedUntil, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user by %s: %w", column, err)
	}
	return u, nil
}
