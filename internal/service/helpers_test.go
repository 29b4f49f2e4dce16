package service

import (
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"wellness-dispatch/internal/adapter/storage/memory"
	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// harness wires the delivery pipeline on the in-memory store with a fake clock.
type harness struct {
	store        *memory.Store
	clock        *fakeClock
	destinations ports.DestinationService
	security     ports.SecurityLogger
	dispatcher   *Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.New()
	clock := newFakeClock()

	destSvc := NewDestinationService(store.Destinations, newTestEncryption(t)).(*destinationService)
	destSvc.now = clock.Now

	security := NewSecurityService(store.SecurityLogs, nil, DefaultSecurityConfig, nil, newTestLogger()).(*securityService)
	security.now = clock.Now

	exec := NewDeliveryExecutor(store.Events, store.Logs, NewHMACSignatureService(), &http.Client{},
		ExecutorConfig{Timeout: 2 * time.Second}, nil, newTestLogger()).(*deliveryExecutor)
	exec.now = clock.Now

	sched := NewRetryScheduler(store.Deliveries, security, DefaultBackoff, nil, newTestLogger()).(*retryScheduler)
	sched.now = clock.Now

	d := NewDispatcher(store.Events, store.Deliveries, destSvc, exec, sched, nil, newTestLogger())
	d.now = clock.Now

	return &harness{
		store:        store,
		clock:        clock,
		destinations: destSvc,
		security:     security,
		dispatcher:   d,
	}
}

func (h *harness) addDestination(t *testing.T, name, url string, strategy domain.RetryStrategy, maxRetries int, eventTypes ...string) *domain.WebhookDestination {
	t.Helper()
	secret := "whsec_" + name
	dest, err := h.destinations.Upsert(context.Background(), ports.DestinationInput{
		Name:          name,
		URL:           url,
		Secret:        &secret,
		EventTypes:    eventTypes,
		Active:        true,
		RetryStrategy: strategy,
		MaxRetries:    maxRetries,
	})
	require.NoError(t, err)
	return dest
}

// runWorker claims due events at the current fake time and processes them,
// the way the retry worker does.
func (h *harness) runWorker(t *testing.T) int {
	t.Helper()
	ctx := context.Background()
	ids, err := h.store.Events.ClaimDue(ctx, h.clock.Now(), 100)
	require.NoError(t, err)
	for _, id := range ids {
		require.NoError(t, h.dispatcher.ProcessClaimed(ctx, id))
	}
	return len(ids)
}

func (h *harness) event(t *testing.T, id uuid.UUID) *domain.WebhookEvent {
	t.Helper()
	event, err := h.store.Events.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, event)
	return event
}

func (h *harness) logs(t *testing.T, id uuid.UUID) []domain.WebhookLog {
	t.Helper()
	logs, err := h.store.Logs.ListByEvent(context.Background(), id)
	require.NoError(t, err)
	return logs
}
