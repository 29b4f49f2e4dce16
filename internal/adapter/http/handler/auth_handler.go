package handler

import (
	"wellness-dispatch/internal/adapter/http/dto"
	"wellness-dispatch/internal/adapter/http/middleware"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/pkg/apperror"
	"wellness-dispatch/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, middleware.ClientInfo(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		Expiry:    expiry.Unix(),
	})
}
