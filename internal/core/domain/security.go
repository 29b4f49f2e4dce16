package domain

import (
	"time"

	"github.com/google/uuid"
)

// SecurityEventType enumerates the security-relevant occurrences that are logged.
type SecurityEventType string

const (
	SecurityLoginSuccess            SecurityEventType = "login_success"
	SecurityLoginFailed             SecurityEventType = "login_failed"
	SecurityLoginBlocked            SecurityEventType = "login_blocked"
	SecurityLogout                  SecurityEventType = "logout"
	SecurityAccountLocked           SecurityEventType = "account_locked"
	SecurityAccountUnlocked         SecurityEventType = "account_unlocked"
	SecurityPasswordChanged         SecurityEventType = "password_changed"
	SecurityPasswordResetRequested  SecurityEventType = "password_reset_requested"
	SecurityPasswordResetCompleted  SecurityEventType = "password_reset_completed"
	SecurityMFAEnabled              SecurityEventType = "mfa_enabled"
	SecurityMFADisabled             SecurityEventType = "mfa_disabled"
	SecurityMFAChallengeFailed      SecurityEventType = "mfa_challenge_failed"
	SecurityAdminAction             SecurityEventType = "admin_action"
	SecurityGDPRExportRequested     SecurityEventType = "gdpr_export_requested"
	SecurityGDPRDeletionRequested   SecurityEventType = "gdpr_deletion_requested"
	SecurityRateLimitExceeded       SecurityEventType = "rate_limit_exceeded"
	SecuritySuspiciousActivity      SecurityEventType = "suspicious_activity"
	SecurityPermissionDenied        SecurityEventType = "permission_denied"
	SecuritySessionExpired          SecurityEventType = "session_expired"
	SecurityWebhookRetriesExhausted SecurityEventType = "webhook_retries_exhausted"
)

// Severity is the static classification of a security event type.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var severities = map[SecurityEventType]Severity{
	SecurityLoginSuccess:            SeverityLow,
	SecurityLoginFailed:             SeverityMedium,
	SecurityLoginBlocked:            SeverityHigh,
	SecurityLogout:                  SeverityLow,
	SecurityAccountLocked:           SeverityHigh,
	SecurityAccountUnlocked:         SeverityMedium,
	SecurityPasswordChanged:         SeverityMedium,
	SecurityPasswordResetRequested:  SeverityMedium,
	SecurityPasswordResetCompleted:  SeverityMedium,
	SecurityMFAEnabled:              SeverityLow,
	SecurityMFADisabled:             SeverityHigh,
	SecurityMFAChallengeFailed:      SeverityMedium,
	SecurityAdminAction:             SeverityMedium,
	SecurityGDPRExportRequested:     SeverityMedium,
	SecurityGDPRDeletionRequested:   SeverityHigh,
	SecurityRateLimitExceeded:       SeverityMedium,
	SecuritySuspiciousActivity:      SeverityHigh,
	SecurityPermissionDenied:        SeverityMedium,
	SecuritySessionExpired:          SeverityLow,
	SecurityWebhookRetriesExhausted: SeverityMedium,
}

// Severity returns the static severity of t. Unknown types are medium.
func (t SecurityEventType) Severity() Severity {
	if s, ok := severities[t]; ok {
		return s
	}
	return SeverityMedium
}

// Valid reports whether t is a known security event type.
func (t SecurityEventType) Valid() bool {
	_, ok := severities[t]
	return ok
}

// TriggersAlert reports whether logging t sends an outbound alert.
// This is a curated set, not derived from severity.
func (t SecurityEventType) TriggersAlert() bool {
	switch t {
	case SecuritySuspiciousActivity, SecurityAccountLocked, SecurityAdminAction:
		return true
	}
	return false
}

// Actor identifies who a security event is about.
type Actor struct {
	UserID *uuid.UUID
	Email  *string
}

// ClientInfo describes the client that triggered a security event.
type ClientInfo struct {
	IPAddress *string
	UserAgent *string
}

// SecurityLogEntry is an append-only security log row.
type SecurityLogEntry struct {
	ID        uuid.UUID              `json:"id"`
	EventType SecurityEventType      `json:"event_type"`
	Severity  Severity               `json:"severity"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	Email     *string                `json:"email,omitempty"`
	IPAddress *string                `json:"ip_address,omitempty"`
	UserAgent *string                `json:"user_agent,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// LoginMeta is the fingerprint of a past successful login.
type LoginMeta struct {
	IPAddress string
	UserAgent string
}

// SecurityLogFilter narrows admin security log listings.
type SecurityLogFilter struct {
	EventType SecurityEventType
	UserID    *uuid.UUID
	Since     *time.Time
}
