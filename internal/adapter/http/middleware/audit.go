package middleware

import (
	"net/http"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// AdminAudit logs an admin_action security event for every successful write
// made by an authenticated admin.
func AdminAudit(security ports.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		actor := AdminActor(c)
		if actor.UserID == nil {
			return
		}

		details := map[string]interface{}{
			"action": auditAction(c.Request.Method, c.FullPath()),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		}
		if id := c.Param("id"); id != "" {
			details["target_id"] = id
		}

		security.LogEvent(c.Request.Context(), domain.SecurityAdminAction, actor, ClientInfo(c), details)
	}
}

func auditAction(method, route string) string {
	switch {
	case method == http.MethodPost && route == "/api/v1/destinations":
		return "destination.create"
	case method == http.MethodPut && route == "/api/v1/destinations/:id":
		return "destination.update"
	case method == http.MethodDelete && route == "/api/v1/destinations/:id":
		return "destination.delete"
	case method == http.MethodPost && route == "/api/v1/destinations/:id/toggle":
		return "destination.toggle"
	case method == http.MethodPost && route == "/api/v1/events/:id/retry":
		return "event.retry"
	case method == http.MethodPost && route == "/api/v1/admin/users/:id/unlock":
		return "admin.unlock"
	}
	return method + " " + route
}
