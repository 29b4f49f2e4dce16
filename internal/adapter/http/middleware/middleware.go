package middleware

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"
	"wellness-dispatch/pkg/apperror"
	"wellness-dispatch/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Header names for signed ingest requests
	HeaderAccessKey = "X-Access-Key"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"

	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxAdminID    = "admin_id"
	CtxAdminEmail = "admin_email"
	CtxAccessKey  = "access_key"
	CtxRequestID  = response.RequestIDKey
)

// IngestAuthConfig carries the shared credentials for POST /events.
type IngestAuthConfig struct {
	AccessKey          string
	SecretKey          string
	TimestampTolerance time.Duration
	NonceTTL           time.Duration
}

// HMACAuth verifies signed ingest requests.
// Pipeline: check access key -> check timestamp -> check nonce -> verify signature.
func HMACAuth(
	cfg IngestAuthConfig,
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	log zerolog.Logger,
) gin.HandlerFunc {
	if cfg.TimestampTolerance <= 0 {
		cfg.TimestampTolerance = 5 * time.Minute
	}
	if cfg.NonceTTL <= 0 {
		cfg.NonceTTL = 2 * cfg.TimestampTolerance
	}

	return func(c *gin.Context) {
		accessKey := c.GetHeader(HeaderAccessKey)
		signature := c.GetHeader(HeaderSignature)
		timestampStr := c.GetHeader(HeaderTimestamp)
		nonce := c.GetHeader(HeaderNonce)

		if accessKey == "" || signature == "" || timestampStr == "" || nonce == "" {
			abort(c, apperror.ErrInvalidAccessKey())
			return
		}
		if cfg.AccessKey == "" || subtle.ConstantTimeCompare([]byte(accessKey), []byte(cfg.AccessKey)) != 1 {
			abort(c, apperror.ErrInvalidAccessKey())
			return
		}

		timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
		if err != nil {
			abort(c, apperror.ErrTimestampExpired())
			return
		}
		if math.Abs(float64(time.Now().Unix()-timestamp)) > cfg.TimestampTolerance.Seconds() {
			abort(c, apperror.ErrTimestampExpired())
			return
		}

		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), accessKey, nonce, cfg.NonceTTL)
		if err != nil {
			log.Warn().Err(err).Msg("nonce store error, allowing request")
		} else if !isNew {
			abort(c, apperror.ErrNonceUsed())
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abort(c, apperror.Validation("cannot read request body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		canonical := sigSvc.BuildCanonicalString(
			c.Request.Method,
			c.Request.URL.Path,
			timestamp,
			nonce,
			string(bodyBytes),
		)
		if !sigSvc.Verify(cfg.SecretKey, canonical, signature) {
			abort(c, apperror.ErrInvalidSignature())
			return
		}

		c.Set(CtxAccessKey, accessKey)
		c.Next()
	}
}

// JWTAuth validates admin bearer tokens.
func JWTAuth(tokenSvc ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenStr == "" {
			abort(c, apperror.ErrInvalidToken())
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			abort(c, apperror.ErrInvalidToken())
			return
		}

		c.Set(CtxAdminID, claims.AdminID)
		c.Set(CtxAdminEmail, claims.Email)
		c.Next()
	}
}

// RequestID propagates X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP())
		if len(c.Errors) > 0 {
			last := c.Errors.Last().Err
			event = event.Err(last)
			if code := apperror.CodeOf(last); code != "" {
				event = event.Str("error_code", code)
			}
		}
		event.Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("request_id", c.GetString(CtxRequestID)).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				response.Error(c, apperror.InternalError(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// Metrics records request counts and latency by route template.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// ClientInfo extracts the caller's IP address and user agent.
func ClientInfo(c *gin.Context) domain.ClientInfo {
	var info domain.ClientInfo
	if ip := c.ClientIP(); ip != "" {
		info.IPAddress = &ip
	}
	if ua := c.Request.UserAgent(); ua != "" {
		info.UserAgent = &ua
	}
	return info
}

// AdminActor returns the authenticated admin, or a zero Actor on public routes.
func AdminActor(c *gin.Context) domain.Actor {
	var actor domain.Actor
	if v, ok := c.Get(CtxAdminID); ok {
		if id, ok := v.(uuid.UUID); ok {
			actor.UserID = &id
		}
	}
	if email := c.GetString(CtxAdminEmail); email != "" {
		actor.Email = &email
	}
	return actor
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}
