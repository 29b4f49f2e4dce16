package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a back-office account that manages destinations and events.
type AdminUser struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"` // Never expose
	FailedAttempts int        `json:"failed_attempts"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsLocked returns true while the account is inside a lockout window.
func (a *AdminUser) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && now.Before(*a.LockedUntil)
}
