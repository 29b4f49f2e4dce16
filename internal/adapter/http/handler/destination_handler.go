package handler

import (
	"net/http"

	"wellness-dispatch/internal/adapter/http/dto"
	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/pkg/apperror"
	"wellness-dispatch/pkg/response"

	"github.com/gin-gonic/gin"
)

// DestinationHandler manages webhook destinations.
type DestinationHandler struct {
	destSvc           ports.DestinationService
	defaultMaxRetries int
}

func NewDestinationHandler(destSvc ports.DestinationService, defaultMaxRetries int) *DestinationHandler {
	return &DestinationHandler{destSvc: destSvc, defaultMaxRetries: defaultMaxRetries}
}

// List handles GET /api/v1/destinations.
func (h *DestinationHandler) List(c *gin.Context) {
	dests, err := h.destSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]dto.DestinationResponse, 0, len(dests))
	for i := range dests {
		items = append(items, dto.NewDestinationResponse(&dests[i], false))
	}
	response.OK(c, items)
}

// Get handles GET /api/v1/destinations/:id.
func (h *DestinationHandler) Get(c *gin.Context) {
	dest, ok := h.load(c)
	if !ok {
		return
	}
	response.OK(c, dto.NewDestinationResponse(dest, false))
}

// Create handles POST /api/v1/destinations. The response reveals the secret once.
func (h *DestinationHandler) Create(c *gin.Context) {
	var req dto.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	in := ports.DestinationInput{
		Name:          req.Name,
		URL:           req.URL,
		Secret:        req.Secret,
		EventTypes:    req.EventTypes,
		Headers:       req.Headers,
		Active:        true,
		RetryStrategy: domain.RetryStrategy(req.RetryStrategy),
		MaxRetries:    h.defaultMaxRetries,
	}
	if req.Active != nil {
		in.Active = *req.Active
	}
	if req.MaxRetries != nil {
		in.MaxRetries = *req.MaxRetries
	}

	dest, err := h.destSvc.Upsert(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewDestinationResponse(dest, true))
}

// Update handles PUT /api/v1/destinations/:id. Omitted optional fields keep
// their stored values.
func (h *DestinationHandler) Update(c *gin.Context) {
	existing, ok := h.load(c)
	if !ok {
		return
	}

	var req dto.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	in := ports.DestinationInput{
		ID:            &existing.ID,
		Name:          req.Name,
		URL:           req.URL,
		Secret:        req.Secret,
		EventTypes:    req.EventTypes,
		Headers:       req.Headers,
		Active:        existing.Active,
		RetryStrategy: existing.RetryStrategy,
		MaxRetries:    existing.MaxRetries,
	}
	if req.Active != nil {
		in.Active = *req.Active
	}
	if req.RetryStrategy != "" {
		in.RetryStrategy = domain.RetryStrategy(req.RetryStrategy)
	}
	if req.MaxRetries != nil {
		in.MaxRetries = *req.MaxRetries
	}

	dest, err := h.destSvc.Upsert(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDestinationResponse(dest, req.Secret != nil))
}

// Delete handles DELETE /api/v1/destinations/:id.
func (h *DestinationHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.destSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle handles POST /api/v1/destinations/:id/toggle.
func (h *DestinationHandler) Toggle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dest, err := h.destSvc.ToggleActive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDestinationResponse(dest, false))
}

func (h *DestinationHandler) load(c *gin.Context) (*domain.WebhookDestination, bool) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	dest, err := h.destSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if dest == nil {
		response.Error(c, apperror.ErrNotFound("Destination"))
		return nil, false
	}
	return dest, true
}
