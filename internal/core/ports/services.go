package ports

import (
	"context"
	"encoding/json"
	"time"

	"wellness-dispatch/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	// SignPayload signs the canonical JSON form of payload. Empty secret yields "".
	SignPayload(secret string, payload interface{}) (string, error)
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(adminID uuid.UUID, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AdminID uuid.UUID
	Email   string
}

// IdempotencyCache caches ingest responses by Idempotency-Key.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// RateLimitStore is a fixed-window counter keyed by route and client.
type RateLimitStore interface {
	CheckAndIncrement(ctx context.Context, key string, limit int, window time.Duration) (*domain.RateLimitResult, error)
}

// --- Service Ports (Business Logic) ---

// AttemptResult is the outcome of one delivery attempt.
type AttemptResult struct {
	Success       bool
	AttemptNumber int
	ResponseCode  *int
	ResponseBody  *string
	ErrorMessage  *string
	Duration      time.Duration
}

// DeliveryExecutor performs a single signed POST to a destination.
type DeliveryExecutor interface {
	Deliver(ctx context.Context, event *domain.WebhookEvent, destination *domain.WebhookDestination) (*AttemptResult, error)
}

// RetryScheduler decides whether and when a failed delivery is attempted again.
type RetryScheduler interface {
	Backoff(retryCount int, strategy domain.RetryStrategy) time.Duration
	ScheduleRetry(ctx context.Context, event *domain.WebhookEvent, delivery *domain.WebhookDelivery,
		destination *domain.WebhookDestination, result *AttemptResult) error
}

// Dispatcher orchestrates intake, fan-out, delivery and retry scheduling.
type Dispatcher interface {
	CreateEvent(ctx context.Context, eventType string, source domain.EventSource, payload json.RawMessage) (*domain.WebhookEvent, error)
	ProcessEvent(ctx context.Context, eventID uuid.UUID) error
	RetryEvent(ctx context.Context, eventID uuid.UUID) error
}

// EventDetail is an event with its deliveries and attempt log.
type EventDetail struct {
	Event      *domain.WebhookEvent      `json:"event"`
	Deliveries []*domain.WebhookDelivery `json:"deliveries"`
	Logs       []domain.WebhookLog       `json:"logs"`
}

// EventReportingService backs the admin event views.
type EventReportingService interface {
	ListEvents(ctx context.Context, filter domain.EventFilter, page Pagination) ([]domain.WebhookEvent, int64, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventDetail, error)
	GetStats(ctx context.Context, from, to *time.Time) (*domain.EventStats, error)
}

// DestinationInput is the validated admin input for a destination upsert.
// A nil ID creates a new destination.
type DestinationInput struct {
	ID            *uuid.UUID
	Name          string
	URL           string
	Secret        *string // nil keeps the existing secret on update
	EventTypes    []string
	Headers       map[string]string
	Active        bool
	RetryStrategy domain.RetryStrategy
	MaxRetries    int
}

// DestinationService is the destination registry.
type DestinationService interface {
	List(ctx context.Context) ([]domain.WebhookDestination, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error)
	Upsert(ctx context.Context, in DestinationInput) (*domain.WebhookDestination, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error)
	// ActiveFor returns active destinations subscribed to eventType with decrypted secrets.
	ActiveFor(ctx context.Context, eventType string) ([]domain.WebhookDestination, error)
}

// SecurityLogger records security events and raises alerts for the trigger set.
type SecurityLogger interface {
	// LogEvent never fails the caller; persistence errors are logged and dropped.
	LogEvent(ctx context.Context, eventType domain.SecurityEventType, actor domain.Actor,
		client domain.ClientInfo, details map[string]interface{})
	// DetectSuspiciousActivity logs a suspicious_activity entry per matching heuristic.
	DetectSuspiciousActivity(ctx context.Context, userID uuid.UUID, ip, userAgent string) bool
	ListEvents(ctx context.Context, filter domain.SecurityLogFilter, page Pagination) ([]domain.SecurityLogEntry, int64, error)
}

// Alerter posts alert messages to an operator webhook.
type Alerter interface {
	// Notify sends asynchronously and never blocks the caller.
	Notify(entry *domain.SecurityLogEntry)
	SendAlertWithRetry(ctx context.Context, url string, message []byte, maxRetries int) error
}

// AuthService handles admin login and lockout.
type AuthService interface {
	Login(ctx context.Context, email, password string, client domain.ClientInfo) (string, time.Time, error) // token, expiry, error
	Unlock(ctx context.Context, userID uuid.UUID, actor domain.Actor) error
	EnsureBootstrapAdmin(ctx context.Context, email, password string) error
}
