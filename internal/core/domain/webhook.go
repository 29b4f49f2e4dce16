package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventStatus is the lifecycle state of a webhook event.
type EventStatus string

const (
	EventStatusPending    EventStatus = "pending"
	EventStatusProcessing EventStatus = "processing"
	EventStatusDelivered  EventStatus = "delivered"
	EventStatusFailed     EventStatus = "failed"
	EventStatusRetrying   EventStatus = "retrying"
)

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusProcessing, EventStatusDelivered, EventStatusFailed, EventStatusRetrying:
		return true
	}
	return false
}

// IsTerminal returns true once no further delivery will happen without an admin retry.
func (s EventStatus) IsTerminal() bool {
	return s == EventStatusDelivered || s == EventStatusFailed
}

// EventSource tags where an event originated.
type EventSource string

const (
	EventSourceAPI       EventSource = "api"
	EventSourceDashboard EventSource = "dashboard"
	EventSourceSystem    EventSource = "system"
)

func (s EventSource) Valid() bool {
	return s == EventSourceAPI || s == EventSourceDashboard || s == EventSourceSystem
}

// WebhookEvent is a single occurrence fanned out to zero or more destinations.
type WebhookEvent struct {
	ID             uuid.UUID       `json:"id"`
	EventType      string          `json:"event_type"`
	Source         EventSource     `json:"source"`
	Status         EventStatus     `json:"status"`
	Payload        json.RawMessage `json:"payload"`
	ResponseCode   *int            `json:"response_code,omitempty"`
	ResponseBody   *string         `json:"response_body,omitempty"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	ProcessingTime *int64          `json:"processing_time_ms,omitempty"`
	RetryCount     int             `json:"retry_count"`
	MaxRetries     int             `json:"max_retries"`
	NextRetryAt    *time.Time      `json:"next_retry_at,omitempty"`
	AttemptCount   int             `json:"attempt_count"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RetryStrategy selects the backoff function for a destination.
type RetryStrategy string

const (
	RetryStrategyExponential RetryStrategy = "exponential"
	RetryStrategyLinear      RetryStrategy = "linear"
	RetryStrategyFixed       RetryStrategy = "fixed"
)

func (r RetryStrategy) Valid() bool {
	return r == RetryStrategyExponential || r == RetryStrategyLinear || r == RetryStrategyFixed
}

// MaxDestinationRetries caps the per-destination retry budget.
const MaxDestinationRetries = 20

// WebhookDestination is a configured HTTP endpoint subscribed to event types.
type WebhookDestination struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	URL           string            `json:"url"`
	Secret        string            `json:"-"` // plaintext in memory, encrypted at rest
	EventTypes    []string          `json:"event_types"`
	Headers       map[string]string `json:"headers"`
	Active        bool              `json:"active"`
	RetryStrategy RetryStrategy     `json:"retry_strategy"`
	MaxRetries    int               `json:"max_retries"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Subscribes reports whether the destination should receive eventType.
func (d *WebhookDestination) Subscribes(eventType string) bool {
	if !d.Active {
		return false
	}
	for _, t := range d.EventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// HasSecret is used by handlers to report whether signing is configured.
func (d *WebhookDestination) HasSecret() bool {
	return d.Secret != ""
}

// DeliveryStatus is the state of one (event, destination) pair.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusRetrying  DeliveryStatus = "retrying"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// WebhookDelivery tracks delivery of one event to one destination.
type WebhookDelivery struct {
	ID            uuid.UUID      `json:"id"`
	EventID       uuid.UUID      `json:"event_id"`
	DestinationID uuid.UUID      `json:"destination_id"`
	Status        DeliveryStatus `json:"status"`
	RetryCount    int            `json:"retry_count"`
	MaxRetries    int            `json:"max_retries"`
	NextRetryAt   *time.Time     `json:"next_retry_at,omitempty"`
	LastError     *string        `json:"last_error,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// IsDue reports whether the delivery should be attempted at now.
func (d *WebhookDelivery) IsDue(now time.Time) bool {
	switch d.Status {
	case DeliveryStatusPending:
		return true
	case DeliveryStatusRetrying:
		return d.NextRetryAt == nil || !d.NextRetryAt.After(now)
	}
	return false
}

// WebhookLog is an immutable record of one delivery attempt.
type WebhookLog struct {
	ID              uuid.UUID         `json:"id"`
	WebhookEventID  uuid.UUID         `json:"webhook_event_id"`
	DestinationID   uuid.UUID         `json:"destination_id"`
	AttemptNumber   int               `json:"attempt_number"`
	RequestURL      string            `json:"request_url"`
	RequestHeaders  map[string]string `json:"request_headers"`
	RequestBody     string            `json:"request_body"`
	ResponseCode    *int              `json:"response_code,omitempty"`
	ResponseHeaders map[string]string `json:"response_headers,omitempty"`
	ResponseBody    *string           `json:"response_body,omitempty"`
	ErrorMessage    *string           `json:"error_message,omitempty"`
	Duration        int64             `json:"duration_ms"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Succeeded reports whether the attempt got a 2xx response.
func (l *WebhookLog) Succeeded() bool {
	return l.ResponseCode != nil && *l.ResponseCode >= 200 && *l.ResponseCode < 300
}

// EventRollup is the event-level state derived from its deliveries.
type EventRollup struct {
	Status      EventStatus
	RetryCount  int
	MaxRetries  int
	NextRetryAt *time.Time
}

// RollupDeliveries derives the event status: delivered iff every delivery is
// delivered, retrying iff any delivery still has a retry scheduled, else failed.
// An empty set is delivered.
func RollupDeliveries(deliveries []*WebhookDelivery) EventRollup {
	r := EventRollup{Status: EventStatusDelivered}
	anyRetrying, anyOpen := false, false

	for _, d := range deliveries {
		if d.RetryCount > r.RetryCount {
			r.RetryCount = d.RetryCount
		}
		if d.MaxRetries > r.MaxRetries {
			r.MaxRetries = d.MaxRetries
		}
		switch d.Status {
		case DeliveryStatusDelivered:
		case DeliveryStatusRetrying:
			anyRetrying = true
			if d.NextRetryAt != nil && (r.NextRetryAt == nil || d.NextRetryAt.Before(*r.NextRetryAt)) {
				t := *d.NextRetryAt
				r.NextRetryAt = &t
			}
		case DeliveryStatusPending:
			anyOpen = true
		default:
			r.Status = EventStatusFailed
		}
	}

	switch {
	case anyRetrying:
		r.Status = EventStatusRetrying
	case anyOpen:
		r.Status = EventStatusPending
	}
	if r.Status != EventStatusRetrying {
		r.NextRetryAt = nil
	}
	return r
}

// EventFilter narrows admin event listings. Zero values match everything.
type EventFilter struct {
	EventType string
	Source    EventSource
	Status    EventStatus
	From      *time.Time
	To        *time.Time
}

// EventStats aggregates event counts over a date range.
type EventStats struct {
	Total       int64   `json:"total"`
	Delivered   int64   `json:"delivered"`
	Failed      int64   `json:"failed"`
	Pending     int64   `json:"pending"`
	Processing  int64   `json:"processing"`
	Retrying    int64   `json:"retrying"`
	SuccessRate float64 `json:"success_rate"`
}

// ComputeSuccessRate sets SuccessRate as a percentage of delivered over total.
func (s *EventStats) ComputeSuccessRate() {
	if s.Total == 0 {
		s.SuccessRate = 0
		return
	}
	s.SuccessRate = float64(s.Delivered) / float64(s.Total) * 100
}
