package dto

import (
	"encoding/json"
	"time"

	"wellness-dispatch/internal/core/domain"
)

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128" sanitize:"-"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	Expiry    int64  `json:"expiry"` // Unix timestamp
}

// CreateEventRequest is the body of POST /events.
type CreateEventRequest struct {
	EventType string             `json:"event_type" binding:"required,max=100,event_type"`
	Source    domain.EventSource `json:"source" binding:"omitempty,oneof=api dashboard system"`
	Payload   json.RawMessage    `json:"payload"`
}

// EventAccepted is returned once an event is stored and handed to the dispatcher.
type EventAccepted struct {
	ID        string    `json:"id"`
	EventType string    `json:"event_type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RetryAccepted is returned by POST /events/:id/retry.
type RetryAccepted struct {
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}

// DestinationRequest is the body of POST /destinations and PUT /destinations/:id.
// A nil Secret generates one on create and keeps the current one on update;
// an empty string disables signing.
type DestinationRequest struct {
	Name          string            `json:"name" binding:"required,max=100"`
	URL           string            `json:"url" binding:"required,max=2048,safe_url" sanitize:"trim"`
	Secret        *string           `json:"secret,omitempty" binding:"omitempty,max=256" sanitize:"-"`
	EventTypes    []string          `json:"event_types" binding:"required,min=1,dive,required,max=100,event_type"`
	Headers       map[string]string `json:"headers,omitempty" binding:"omitempty,max=20,dive,keys,required,max=100,header_name,endkeys,max=1024"`
	Active        *bool             `json:"active,omitempty"`
	RetryStrategy string            `json:"retry_strategy" binding:"omitempty,oneof=exponential linear fixed"`
	MaxRetries    *int              `json:"max_retries,omitempty" binding:"omitempty,min=0,max=20"`
}

// DestinationResponse never carries the secret except right after it was
// generated or replaced.
type DestinationResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	URL           string            `json:"url"`
	EventTypes    []string          `json:"event_types"`
	Headers       map[string]string `json:"headers"`
	Active        bool              `json:"active"`
	RetryStrategy string            `json:"retry_strategy"`
	MaxRetries    int               `json:"max_retries"`
	HasSecret     bool              `json:"has_secret"`
	Secret        string            `json:"secret,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// NewDestinationResponse converts a destination; the secret is included only
// when revealSecret is set.
func NewDestinationResponse(d *domain.WebhookDestination, revealSecret bool) DestinationResponse {
	resp := DestinationResponse{
		ID:            d.ID.String(),
		Name:          d.Name,
		URL:           d.URL,
		EventTypes:    d.EventTypes,
		Headers:       d.Headers,
		Active:        d.Active,
		RetryStrategy: string(d.RetryStrategy),
		MaxRetries:    d.MaxRetries,
		HasSecret:     d.HasSecret(),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if resp.EventTypes == nil {
		resp.EventTypes = []string{}
	}
	if resp.Headers == nil {
		resp.Headers = map[string]string{}
	}
	if revealSecret {
		resp.Secret = d.Secret
	}
	return resp
}

// EventStatsResponse is the response of GET /events/stats.
type EventStatsResponse struct {
	*domain.EventStats
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}
