package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"wellness-dispatch/internal/adapter/http/dto"
	"wellness-dispatch/internal/adapter/http/middleware"
	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/pkg/apperror"
	"wellness-dispatch/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 128
)

// EventHandler serves event ingest and the admin event views.
type EventHandler struct {
	dispatcher     ports.Dispatcher
	reportingSvc   ports.EventReportingService
	idempotency    ports.IdempotencyCache // nil disables Idempotency-Key support
	idempotencyTTL time.Duration
	log            zerolog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(
	dispatcher ports.Dispatcher,
	reportingSvc ports.EventReportingService,
	idempotency ports.IdempotencyCache,
	idempotencyTTL time.Duration,
	log zerolog.Logger,
) *EventHandler {
	if idempotencyTTL <= 0 {
		idempotencyTTL = 24 * time.Hour
	}
	return &EventHandler{
		dispatcher:     dispatcher,
		reportingSvc:   reportingSvc,
		idempotency:    idempotency,
		idempotencyTTL: idempotencyTTL,
		log:            log,
	}
}

// Create handles POST /api/v1/events. The event is stored and delivery starts
// in the background; a repeated Idempotency-Key replays the first response.
func (h *EventHandler) Create(c *gin.Context) {
	idemKey := c.GetHeader(HeaderIdempotencyKey)
	if len(idemKey) > maxIdempotencyKeyLen {
		response.Error(c, apperror.Validation("Idempotency-Key is too long"))
		return
	}
	cacheKey := ""
	if idemKey != "" && h.idempotency != nil {
		cacheKey = "events:" + c.GetString(middleware.CtxAccessKey) + ":" + idemKey
		cached, err := h.idempotency.Get(c.Request.Context(), cacheKey)
		if err != nil {
			h.log.Warn().Err(err).Msg("idempotency cache read failed")
		} else if cached != nil {
			c.Header(HeaderReplayed, "true")
			c.Data(http.StatusCreated, "application/json; charset=utf-8", cached)
			return
		}
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Source == "" {
		req.Source = domain.EventSourceAPI
	}

	event, err := h.dispatcher.CreateEvent(c.Request.Context(), req.EventType, req.Source, req.Payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := json.Marshal(response.Envelope(c, dto.EventAccepted{
		ID:        event.ID.String(),
		EventType: event.EventType,
		Status:    string(event.Status),
		CreatedAt: event.CreatedAt,
	}))
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	if cacheKey != "" {
		if err := h.idempotency.Set(c.Request.Context(), cacheKey, body, h.idempotencyTTL); err != nil {
			h.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("idempotency cache write failed")
		}
	}
	c.Data(http.StatusCreated, "application/json; charset=utf-8", body)
}

// List handles GET /api/v1/events.
func (h *EventHandler) List(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := domain.EventFilter{
		EventType: c.Query("event_type"),
		Source:    domain.EventSource(c.Query("source")),
		Status:    domain.EventStatus(c.Query("status")),
		From:      from,
		To:        to,
	}
	page := parsePage(c)

	events, total, err := h.reportingSvc.ListEvents(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	if events == nil {
		events = []domain.WebhookEvent{}
	}
	response.Page(c, events, total, page.Page, page.PageSize)
}

// Stats handles GET /api/v1/events/stats.
func (h *EventHandler) Stats(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.reportingSvc.GetStats(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.EventStatsResponse{EventStats: stats, From: from, To: to})
}

// Get handles GET /api/v1/events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.reportingSvc.GetEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, detail)
}

// Retry handles POST /api/v1/events/:id/retry.
func (h *EventHandler) Retry(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.dispatcher.RetryEvent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.RetryAccepted{EventID: id.String(), Status: string(domain.EventStatusPending)})
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid id")
	}
	return id, nil
}

func parsePage(c *gin.Context) ports.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return ports.Pagination{Page: page, PageSize: pageSize}.Normalize()
}

// parseRange reads optional RFC 3339 from/to query parameters.
func parseRange(c *gin.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &from}, {"to", &to}} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, apperror.Validation(p.name + " must be an RFC 3339 timestamp")
		}
		t = t.UTC()
		*p.dst = &t
	}
	return from, to, nil
}
