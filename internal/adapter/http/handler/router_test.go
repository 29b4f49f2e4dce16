package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"wellness-dispatch/internal/adapter/http/middleware"
	"wellness-dispatch/internal/adapter/storage/memory"
	redisStore "wellness-dispatch/internal/adapter/storage/redis"
	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"
	"wellness-dispatch/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessKey = "ak_test"
	testSecretKey = "sk_test"
	testAdmin     = "admin@example.com"
	testPassword  = "correct horse battery"
)

// stack is the full HTTP surface over the in-memory store and miniredis.
type stack struct {
	router     *gin.Engine
	store      *memory.Store
	dispatcher *service.Dispatcher
	sig        *service.HMACSignatureService
	token      string
}

func newStack(t *testing.T) *stack {
	t.Helper()
	ctx := context.Background()
	log := zerolog.Nop()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	store := memory.New()

	enc, err := service.NewAESEncryptionService("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	sig := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService("router-test-secret", time.Hour, "wellness-dispatch")

	security := service.NewSecurityService(store.SecurityLogs, nil, service.DefaultSecurityConfig, metrics, log)
	auth := service.NewAuthService(store.AdminUsers, service.NewArgon2HashService(), tokenSvc, security, service.AuthConfig{}, log)
	require.NoError(t, auth.EnsureBootstrapAdmin(ctx, testAdmin, testPassword))

	destSvc := service.NewDestinationService(store.Destinations, enc)
	exec := service.NewDeliveryExecutor(store.Events, store.Logs, sig, &http.Client{},
		service.ExecutorConfig{Timeout: 2 * time.Second}, metrics, log)
	sched := service.NewRetryScheduler(store.Deliveries, security, service.DefaultBackoff, metrics, log)
	dispatcher := service.NewDispatcher(store.Events, store.Deliveries, destSvc, exec, sched, metrics, log)

	router := SetupRouter(RouterDeps{
		AuthSvc:          auth,
		Dispatcher:       dispatcher,
		ReportingSvc:     service.NewReportingService(store.Events, store.Deliveries, store.Logs),
		DestinationSvc:   destSvc,
		Security:         security,
		SigSvc:           sig,
		TokenSvc:         tokenSvc,
		NonceStore:       redisStore.NewNonceStore(rdb),
		IdempotencyCache: redisStore.NewIdempotencyCache(rdb),
		IdempotencyTTL:   time.Hour,
		RateLimitStore:   redisStore.NewRateLimitStore(rdb),
		RateLimits: map[string]middleware.RateLimitRule{
			RouteLogin:  {Limit: 3, Window: time.Minute},
			RouteIngest: {Limit: 100, Window: time.Minute},
			RouteAdmin:  {Limit: 100, Window: time.Minute},
		},
		Ingest: middleware.IngestAuthConfig{
			AccessKey: testAccessKey,
			SecretKey: testSecretKey,
		},
		DefaultMaxRetries: 3,
		HealthCheckers: []ports.HealthChecker{ports.PingCheck{
			Dependency: "redis",
			PingFunc:   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}},
		Metrics:           metrics,
		Registry:          registry,
		Logger:            log,
	})

	s := &stack{router: router, store: store, dispatcher: dispatcher, sig: sig}
	t.Cleanup(dispatcher.Wait)

	w := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": testAdmin, "password": testPassword}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s.token, _ = decodeData(t, w)["token"].(string)
	require.NotEmpty(t, s.token)
	return s
}

func (s *stack) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *stack) admin(method, path string, body interface{}) *httptest.ResponseRecorder {
	return s.do(method, path, body, map[string]string{"Authorization": "Bearer " + s.token})
}

// ingest sends a signed POST /api/v1/events.
func (s *stack) ingest(body, nonce string, extra map[string]string) *httptest.ResponseRecorder {
	ts := time.Now().Unix()
	canonical := s.sig.BuildCanonicalString(http.MethodPost, "/api/v1/events", ts, nonce, body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderAccessKey, testAccessKey)
	req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(middleware.HeaderNonce, nonce)
	req.Header.Set(middleware.HeaderSignature, s.sig.Sign(testSecretKey, canonical))
	for k, v := range extra {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func portsPage() ports.Pagination {
	return ports.Pagination{Page: 1, PageSize: 100}
}

type received struct {
	mu       sync.Mutex
	bodies   [][]byte
	requests []*http.Request
}

func (r *received) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bodies)
}

func receiver(t *testing.T) (*httptest.Server, *received) {
	rec := &received{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.bodies = append(rec.bodies, body)
		rec.requests = append(rec.requests, r)
		rec.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestRouter_SignedIngestIsDeliveredAndSigned(t *testing.T) {
	s := newStack(t)
	srv, rec := receiver(t)

	w := s.admin(http.MethodPost, "/api/v1/destinations", map[string]interface{}{
		"name":        "CRM",
		"url":         srv.URL + "/hooks",
		"secret":      "whsec_router",
		"event_types": []string{"session.completed"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.ingest(`{"event_type":"session.completed","payload":{"client_id":"c-42","minutes":50}}`, "nonce-1", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	eventID := decodeData(t, w)["id"].(string)

	s.dispatcher.Wait()
	require.Equal(t, 1, rec.count())

	req := rec.requests[0]
	body := rec.bodies[0]
	assert.Equal(t, eventID, req.Header.Get(service.HeaderWebhookID))
	assert.Equal(t, "session.completed", req.Header.Get(service.HeaderWebhookEvent))
	assert.Equal(t, s.sig.Sign("whsec_router", string(body)), req.Header.Get(service.HeaderWebhookSignature))

	w = s.admin(http.MethodGet, "/api/v1/events/"+eventID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeData(t, w)
	event := detail["event"].(map[string]interface{})
	assert.Equal(t, "delivered", event["status"])
	assert.Len(t, detail["logs"], 1)
}

func TestRouter_IngestIdempotencyKey(t *testing.T) {
	s := newStack(t)
	body := `{"event_type":"booking.created"}`
	key := map[string]string{HeaderIdempotencyKey: "booking-77"}

	first := s.ingest(body, "nonce-a", key)
	second := s.ingest(body, "nonce-b", key)
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, decodeData(t, first)["id"], decodeData(t, second)["id"])

	s.dispatcher.Wait()
	events, total, err := s.store.Events.List(context.Background(), domain.EventFilter{}, portsPage())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, events, 1)
}

func TestRouter_IngestRejectsReplayAndForgery(t *testing.T) {
	s := newStack(t)
	body := `{"event_type":"booking.created"}`

	require.Equal(t, http.StatusCreated, s.ingest(body, "nonce-x", nil).Code)
	w := s.ingest(body, "nonce-x", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_004", errorCode(t, w))

	w = s.ingest(body, "nonce-y", map[string]string{middleware.HeaderSignature: "deadbeef"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_002", errorCode(t, w))

	w = s.ingest(body, "nonce-z", map[string]string{middleware.HeaderAccessKey: "ak_other"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_001", errorCode(t, w))

	w = s.ingest(body, "nonce-t", map[string]string{
		middleware.HeaderTimestamp: strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10),
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	s := newStack(t)

	w := s.do(http.MethodGet, "/api/v1/events", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/v1/destinations", nil, map[string]string{"Authorization": "Bearer not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_003", errorCode(t, w))

	w = s.admin(http.MethodGet, "/api/v1/events", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AdminWritesAreAudited(t *testing.T) {
	s := newStack(t)

	w := s.admin(http.MethodPost, "/api/v1/destinations", map[string]interface{}{
		"name":        "Billing",
		"url":         "https://billing.example.com/hooks",
		"event_types": []string{"invoice.paid"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	destID := decodeData(t, w)["id"].(string)

	w = s.admin(http.MethodPost, "/api/v1/destinations/"+destID+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// reads and failed writes are not audited
	s.admin(http.MethodGet, "/api/v1/destinations", nil)
	s.admin(http.MethodDelete, "/api/v1/destinations/"+uuid.NewString(), nil)

	entries, total, err := s.store.SecurityLogs.List(context.Background(),
		domain.SecurityLogFilter{EventType: domain.SecurityAdminAction}, portsPage())
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	actions := []interface{}{entries[0].Details["action"], entries[1].Details["action"]}
	assert.ElementsMatch(t, []interface{}{"destination.create", "destination.toggle"}, actions)
	for _, e := range entries {
		require.NotNil(t, e.Email)
		assert.Equal(t, testAdmin, *e.Email)
	}
}

func TestRouter_LoginIsRateLimited(t *testing.T) {
	s := newStack(t) // uses one of the three login slots

	bad := map[string]string{"email": testAdmin, "password": "wrong"}
	for i := 0; i < 2; i++ {
		w := s.do(http.MethodPost, "/api/v1/auth/login", bad, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
	}

	w := s.do(http.MethodPost, "/api/v1/auth/login", bad, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_001", errorCode(t, w))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	retryAfter, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retryAfter, 1)

	_, total, err := s.store.SecurityLogs.List(context.Background(),
		domain.SecurityLogFilter{EventType: domain.SecurityRateLimitExceeded}, portsPage())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRouter_RejectsNonJSONBodies(t *testing.T) {
	s := newStack(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("email=a")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	s := newStack(t)

	w := s.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":{"status":"up"`)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	w = s.do(http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `wd_http_requests_total{method="POST",path="/api/v1/auth/login",status="200"} 1`)

	w = s.do(http.MethodGet, "/swagger/spec", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}
