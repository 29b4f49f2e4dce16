package handler

import (
	"wellness-dispatch/internal/adapter/http/middleware"
	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/pkg/apperror"
	"wellness-dispatch/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SecurityHandler exposes the security log and account unlock.
type SecurityHandler struct {
	security ports.SecurityLogger
	authSvc  ports.AuthService
}

func NewSecurityHandler(security ports.SecurityLogger, authSvc ports.AuthService) *SecurityHandler {
	return &SecurityHandler{security: security, authSvc: authSvc}
}

// ListEvents handles GET /api/v1/security/events.
func (h *SecurityHandler) ListEvents(c *gin.Context) {
	from, _, err := parseRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := domain.SecurityLogFilter{
		EventType: domain.SecurityEventType(c.Query("event_type")),
		Since:     from,
	}
	if filter.EventType != "" && !filter.EventType.Valid() {
		response.Error(c, apperror.Validation("unknown event_type"))
		return
	}
	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid user_id"))
			return
		}
		filter.UserID = &userID
	}
	page := parsePage(c)

	entries, total, err := h.security.ListEvents(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []domain.SecurityLogEntry{}
	}
	response.Page(c, entries, total, page.Page, page.PageSize)
}

// Unlock handles POST /api/v1/admin/users/:id/unlock.
func (h *SecurityHandler) Unlock(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.authSvc.Unlock(c.Request.Context(), id, middleware.AdminActor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"user_id": id.String(), "unlocked": true})
}
