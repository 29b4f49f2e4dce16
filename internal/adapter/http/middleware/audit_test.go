package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// auditRouter mounts AdminAudit behind a stub that authenticates adminID
// when it is non-nil.
func auditRouter(security *mocks.MockSecurityLogger, adminID *uuid.UUID, status int) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if adminID != nil {
			c.Set(CtxAdminID, *adminID)
			c.Set(CtxAdminEmail, "admin@example.com")
		}
	}, AdminAudit(security))

	h := func(c *gin.Context) { c.Status(status) }
	r.POST("/api/v1/destinations", h)
	r.PUT("/api/v1/destinations/:id", h)
	r.POST("/api/v1/events/:id/retry", h)
	r.GET("/api/v1/destinations", h)
	return r
}

func TestAdminAudit_LogsSuccessfulWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	security := mocks.NewMockSecurityLogger(ctrl)
	adminID := uuid.New()
	targetID := uuid.NewString()

	security.EXPECT().LogEvent(gomock.Any(), domain.SecurityAdminAction, gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ domain.SecurityEventType, actor domain.Actor, _ domain.ClientInfo, details map[string]interface{}) {
			assert.Equal(t, adminID, *actor.UserID)
			assert.Equal(t, "admin@example.com", *actor.Email)
			assert.Equal(t, "destination.update", details["action"])
			assert.Equal(t, http.MethodPut, details["method"])
			assert.Equal(t, "/api/v1/destinations/"+targetID, details["path"])
			assert.Equal(t, http.StatusOK, details["status"])
			assert.Equal(t, targetID, details["target_id"])
		})

	w := httptest.NewRecorder()
	auditRouter(security, &adminID, http.StatusOK).
		ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/destinations/"+targetID, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAudit_Skips(t *testing.T) {
	adminID := uuid.New()

	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		adminID *uuid.UUID
	}{
		{"reads", http.MethodGet, "/api/v1/destinations", http.StatusOK, &adminID},
		{"failed writes", http.MethodPost, "/api/v1/destinations", http.StatusBadRequest, &adminID},
		{"anonymous writes", http.MethodPost, "/api/v1/destinations", http.StatusCreated, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: LogEvent must not be called
			security := mocks.NewMockSecurityLogger(gomock.NewController(t))

			w := httptest.NewRecorder()
			auditRouter(security, tt.adminID, tt.status).ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAuditAction(t *testing.T) {
	tests := []struct {
		method string
		route  string
		want   string
	}{
		{"POST", "/api/v1/destinations", "destination.create"},
		{"PUT", "/api/v1/destinations/:id", "destination.update"},
		{"DELETE", "/api/v1/destinations/:id", "destination.delete"},
		{"POST", "/api/v1/destinations/:id/toggle", "destination.toggle"},
		{"POST", "/api/v1/events/:id/retry", "event.retry"},
		{"POST", "/api/v1/admin/users/:id/unlock", "admin.unlock"},
		{"PATCH", "/api/v1/other", "PATCH /api/v1/other"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, auditAction(tc.method, tc.route), "%s %s", tc.method, tc.route)
	}
}
