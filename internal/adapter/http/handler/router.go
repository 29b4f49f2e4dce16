package handler

import (
	"time"

	"wellness-dispatch/internal/adapter/http/middleware"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// maxRequestBody caps every request body, including event payloads.
const maxRequestBody = 1 << 20

// Route groups used as rate limit keys.
const (
	RouteLogin  = "auth_login"
	RouteIngest = "events_ingest"
	RouteAdmin  = "admin"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc           ports.AuthService
	Dispatcher        ports.Dispatcher
	ReportingSvc      ports.EventReportingService
	DestinationSvc    ports.DestinationService
	Security          ports.SecurityLogger
	SigSvc            ports.SignatureService
	TokenSvc          ports.TokenService
	NonceStore        ports.NonceStore
	IdempotencyCache  ports.IdempotencyCache // nil = Idempotency-Key ignored
	IdempotencyTTL    time.Duration
	RateLimitStore    ports.RateLimitStore // nil = rate limiting disabled
	RateLimits        map[string]middleware.RateLimitRule
	Ingest            middleware.IngestAuthConfig
	DefaultMaxRetries int
	HealthCheckers    []ports.HealthChecker
	Metrics           *observability.Metrics
	Registry          *prometheus.Registry // nil = /metrics not served
	Logger            zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.MaxBodySize(maxRequestBody))

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(observability.Handler(deps.Registry)))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Returns the rate limiter for a route group if a store is configured, else a no-op.
	rl := func(route string) gin.HandlerFunc {
		rule, ok := deps.RateLimits[route]
		if deps.RateLimitStore == nil || !ok || rule.Limit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, route, rule, deps.Security, deps.Metrics, deps.Logger)
	}

	v1 := r.Group("/api/v1", middleware.RequireJSON())

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/login", rl(RouteLogin), authHandler.Login)

	// --- Signed ingest ---
	eventHandler := NewEventHandler(deps.Dispatcher, deps.ReportingSvc, deps.IdempotencyCache, deps.IdempotencyTTL, deps.Logger)
	hmacAuth := middleware.HMACAuth(deps.Ingest, deps.SigSvc, deps.NonceStore, deps.Logger)
	v1.POST("/events", rl(RouteIngest), hmacAuth, eventHandler.Create)

	// --- JWT-authenticated admin routes ---
	admin := v1.Group("", middleware.JWTAuth(deps.TokenSvc), rl(RouteAdmin), middleware.AdminAudit(deps.Security))

	events := admin.Group("/events")
	{
		events.GET("", eventHandler.List)
		events.GET("/stats", eventHandler.Stats)
		events.GET("/:id", eventHandler.Get)
		events.POST("/:id/retry", eventHandler.Retry)
	}

	destHandler := NewDestinationHandler(deps.DestinationSvc, deps.DefaultMaxRetries)
	destinations := admin.Group("/destinations")
	{
		destinations.GET("", destHandler.List)
		destinations.POST("", destHandler.Create)
		destinations.GET("/:id", destHandler.Get)
		destinations.PUT("/:id", destHandler.Update)
		destinations.DELETE("/:id", destHandler.Delete)
		destinations.POST("/:id/toggle", destHandler.Toggle)
	}

	securityHandler := NewSecurityHandler(deps.Security, deps.AuthSvc)
	admin.GET("/security/events", securityHandler.ListEvents)
	admin.POST("/admin/users/:id/unlock", securityHandler.Unlock)

	return r
}
