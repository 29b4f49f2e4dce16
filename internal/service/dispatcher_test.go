package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusServer(t *testing.T, status *atomic.Int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(int(status.Load()))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func fixedStatus(code int) *atomic.Int32 {
	var s atomic.Int32
	s.Store(int32(code))
	return &s
}

func TestDispatcher_NoDestinationsIsDelivered(t *testing.T) {
	h := newHarness(t)

	event, err := h.dispatcher.CreateEvent(context.Background(), "user.created", domain.EventSourceAPI, json.RawMessage(`{"id":1}`))
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPending, event.Status)
	h.dispatcher.Wait()

	stored := h.event(t, event.ID)
	assert.Equal(t, domain.EventStatusDelivered, stored.Status)
	assert.Empty(t, h.logs(t, event.ID))
}

func TestDispatcher_EndToEndDelivered(t *testing.T) {
	h := newHarness(t)
	srv, hits := statusServer(t, fixedStatus(http.StatusOK))
	h.addDestination(t, "crm", srv.URL, domain.RetryStrategyExponential, 3, "user.created")
	h.addDestination(t, "billing", srv.URL, domain.RetryStrategyExponential, 3, "invoice.paid")

	event, err := h.dispatcher.CreateEvent(context.Background(), "user.created", domain.EventSourceAPI, json.RawMessage(`{"user_id":"u-1"}`))
	require.NoError(t, err)
	h.dispatcher.Wait()

	stored := h.event(t, event.ID)
	assert.Equal(t, domain.EventStatusDelivered, stored.Status)
	require.NotNil(t, stored.ResponseCode)
	assert.Equal(t, 200, *stored.ResponseCode)
	assert.NotNil(t, stored.ProcessingTime)
	assert.Nil(t, stored.NextRetryAt)

	logs := h.logs(t, event.ID)
	require.Len(t, logs, 1)
	assert.Equal(t, 1, logs[0].AttemptNumber)
	assert.Equal(t, 200, *logs[0].ResponseCode)
	assert.Equal(t, int32(1), hits.Load())
}

func TestDispatcher_EndToEndFailsAfterRetries(t *testing.T) {
	h := newHarness(t)
	srv, hits := statusServer(t, fixedStatus(http.StatusInternalServerError))
	h.addDestination(t, "crm", srv.URL, domain.RetryStrategyFixed, 2, "user.created")

	event, err := h.dispatcher.CreateEvent(context.Background(), "user.created", domain.EventSourceAPI, json.RawMessage(`{}`))
	require.NoError(t, err)
	h.dispatcher.Wait()

	stored := h.event(t, event.ID)
	assert.Equal(t, domain.EventStatusRetrying, stored.Status)
	require.NotNil(t, stored.NextRetryAt)
	assert.Equal(t, h.clock.Now().Add(5*time.Second), *stored.NextRetryAt)

	// Nothing is due before the backoff elapses.
	h.clock.Advance(4 * time.Second)
	assert.Equal(t, 0, h.runWorker(t))

	for i := 0; i < 5; i++ {
		h.clock.Advance(time.Second)
		h.runWorker(t)
		h.clock.Advance(4 * time.Second)
	}

	stored = h.event(t, event.ID)
	assert.Equal(t, domain.EventStatusFailed, stored.Status)
	assert.Nil(t, stored.NextRetryAt)
	assert.Equal(t, 2, stored.RetryCount)
	assert.Equal(t, 500, *stored.ResponseCode)

	logs := h.logs(t, event.ID)
	require.Len(t, logs, 3)
	assert.Equal(t, int32(3), hits.Load())
	for i := 1; i < len(logs); i++ {
		assert.Equal(t, i+1, logs[i].AttemptNumber)
		assert.GreaterOrEqual(t, logs[i].CreatedAt.Sub(logs[i-1].CreatedAt), 5*time.Second)
	}

	exhausted := 0
	for _, e := range h.store.SecurityLogs.All() {
		if e.EventType == domain.SecurityWebhookRetriesExhausted {
			exhausted++
		}
	}
	assert.Equal(t, 1, exhausted)
}

func TestDispatcher_ProcessDeliveredEventIsNoop(t *testing.T) {
	h := newHarness(t)
	srv, hits := statusServer(t, fixedStatus(http.StatusOK))
	h.addDestination(t, "crm", srv.URL, domain.RetryStrategyExponential, 3, "user.created")

	event, err := h.dispatcher.CreateEvent(context.Background(), "user.created", domain.EventSourceSystem, nil)
	require.NoError(t, err)
	h.dispatcher.Wait()

	before := h.event(t, event.ID)
	require.Equal(t, domain.EventStatusDelivered, before.Status)

	h.clock.Advance(time.Minute)
	require.NoError(t, h.dispatcher.ProcessEvent(context.Background(), event.ID))
	require.NoError(t, h.dispatcher.ProcessEvent(context.Background(), event.ID))

	after := h.event(t, event.ID)
	assert.Equal(t, before, after)
	assert.Len(t, h.logs(t, event.ID), 1)
	assert.Equal(t, int32(1), hits.Load())
}

func TestDispatcher_MixedOutcomesTrackedPerDestination(t *testing.T) {
	h := newHarness(t)
	okSrv, okHits := statusServer(t, fixedStatus(http.StatusOK))
	flaky := fixedStatus(http.StatusBadGateway)
	flakySrv, flakyHits := statusServer(t, flaky)

	h.addDestination(t, "crm", okSrv.URL, domain.RetryStrategyLinear, 3, "user.created")
	h.addDestination(t, "warehouse", flakySrv.URL, domain.RetryStrategyLinear, 3, "user.created")

	event, err := h.dispatcher.CreateEvent(context.Background(), "user.created", domain.EventSourceAPI, json.RawMessage(`{}`))
	require.NoError(t, err)
	h.dispatcher.Wait()

	stored := h.event(t, event.ID)
	assert.Equal(t, domain.EventStatusRetrying, stored.Status)
	assert.Equal(t, 1, stored.RetryCount)

	flaky.Store(http.StatusOK)
	h.clock.Advance(time.Second)
	assert.Equal(t, 1, h.runWorker(t))

	stored = h.event(t, event.ID)
	assert.Equal(t, domain.EventStatusDelivered, stored.Status)
	assert.Equal(t, int32(1), okHits.Load(), "delivered destination must not be retried")
	assert.Equal(t, int32(2), flakyHits.Load())

	logs := h.logs(t, event.ID)
	require.Len(t, logs, 3)
	for i, l := range logs {
		assert.Equal(t, i+1, l.AttemptNumber)
	}
}

func TestDispatcher_ConcurrentFanOutNumbersAttempts(t *testing.T) {
	h := newHarness(t)
	srv, _ := statusServer(t, fixedStatus(http.StatusAccepted))
	for _, name := range []string{"a", "b", "c", "d"} {
		h.addDestination(t, name, srv.URL, domain.RetryStrategyExponential, 1, "mood.logged")
	}

	event, err := h.dispatcher.CreateEvent(context.Background(), "mood.logged", domain.EventSourceDashboard, json.RawMessage(`{}`))
	require.NoError(t, err)
	h.dispatcher.Wait()

	assert.Equal(t, domain.EventStatusDelivered, h.event(t, event.ID).Status)
	logs := h.logs(t, event.ID)
	require.Len(t, logs, 4)
	seen := map[uuid.UUID]bool{}
	for i, l := range logs {
		assert.Equal(t, i+1, l.AttemptNumber)
		seen[l.DestinationID] = true
	}
	assert.Len(t, seen, 4)
}

func TestDispatcher_DeactivatedDestinationFailsDelivery(t *testing.T) {
	h := newHarness(t)
	srv, hits := statusServer(t, fixedStatus(http.StatusServiceUnavailable))
	dest := h.addDestination(t, "crm", srv.URL, domain.RetryStrategyFixed, 5, "user.created")

	event, err := h.dispatcher.CreateEvent(context.Background(), "user.created", domain.EventSourceAPI, json.RawMessage(`{}`))
	require.NoError(t, err)
	h.dispatcher.Wait()
	require.Equal(t, domain.EventStatusRetrying, h.event(t, event.ID).Status)

	_, err = h.destinations.ToggleActive(context.Background(), dest.ID)
	require.NoError(t, err)

	h.clock.Advance(5 * time.Second)
	h.runWorker(t)

	assert.Equal(t, domain.EventStatusFailed, h.event(t, event.ID).Status)
	assert.Equal(t, int32(1), hits.Load())

	deliveries, _ := h.store.Deliveries.ListByEvent(context.Background(), event.ID)
	require.Len(t, deliveries, 1)
	assert.Equal(t, errDestinationGone, *deliveries[0].LastError)
}

func TestDispatcher_RetryEventRedelivers(t *testing.T) {
	h := newHarness(t)
	status := fixedStatus(http.StatusInternalServerError)
	srv, hits := statusServer(t, status)
	h.addDestination(t, "crm", srv.URL, domain.RetryStrategyFixed, 0, "user.created")

	event, err := h.dispatcher.CreateEvent(context.Background(), "user.created", domain.EventSourceAPI, json.RawMessage(`{}`))
	require.NoError(t, err)
	h.dispatcher.Wait()
	require.Equal(t, domain.EventStatusFailed, h.event(t, event.ID).Status)

	status.Store(http.StatusOK)
	require.NoError(t, h.dispatcher.RetryEvent(context.Background(), event.ID))
	h.dispatcher.Wait()

	stored := h.event(t, event.ID)
	assert.Equal(t, domain.EventStatusDelivered, stored.Status)
	assert.Equal(t, 0, stored.RetryCount)
	assert.Equal(t, int32(2), hits.Load())

	logs := h.logs(t, event.ID)
	require.Len(t, logs, 2)
	assert.Equal(t, 2, logs[1].AttemptNumber)
}

func TestDispatcher_RetryEventErrors(t *testing.T) {
	h := newHarness(t)

	err := h.dispatcher.RetryEvent(context.Background(), uuid.New())
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "WH_001", appErr.Code)

	busy := &domain.WebhookEvent{ID: uuid.New(), EventType: "x", Source: domain.EventSourceAPI, Status: domain.EventStatusProcessing}
	require.NoError(t, h.store.Events.Create(context.Background(), busy))
	err = h.dispatcher.RetryEvent(context.Background(), busy.ID)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "WH_004", appErr.Code)
}

func TestDispatcher_CreateEventValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		eventType string
		source    domain.EventSource
		payload   json.RawMessage
	}{
		{"empty type", "  ", domain.EventSourceAPI, nil},
		{"unknown source", "user.created", domain.EventSource("cron"), nil},
		{"invalid payload", "user.created", domain.EventSourceAPI, json.RawMessage(`{"a":`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.dispatcher.CreateEvent(ctx, tt.eventType, tt.source, tt.payload)
			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "WH_003", appErr.Code)
		})
	}

	total, err := h.store.Events.Stats(ctx, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, total.Total)
}

func TestDispatcher_ProcessUnknownEvent(t *testing.T) {
	h := newHarness(t)
	err := h.dispatcher.ProcessEvent(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestDispatcher_CreateEventDoesNotWaitForDelivery(t *testing.T) {
	h := newHarness(t)
	release := make(chan struct{})
	var once sync.Once
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer once.Do(func() { close(release) })
	h.addDestination(t, "slow", srv.URL, domain.RetryStrategyExponential, 0, "user.created")

	done := make(chan *domain.WebhookEvent, 1)
	go func() {
		event, _ := h.dispatcher.CreateEvent(context.Background(), "user.created", domain.EventSourceAPI, json.RawMessage(`{}`))
		done <- event
	}()

	select {
	case event := <-done:
		require.NotNil(t, event)
	case <-time.After(time.Second):
		t.Fatal("CreateEvent blocked on delivery")
	}

	once.Do(func() { close(release) })
	h.dispatcher.Wait()
}

func (h *harness) pendingEvent(t *testing.T, eventType string) *domain.WebhookEvent {
	t.Helper()
	now := h.clock.Now()
	event := &domain.WebhookEvent{
		ID:         uuid.New(),
		EventType:  eventType,
		Source:     domain.EventSourceAPI,
		Status:     domain.EventStatusPending,
		Payload:    json.RawMessage(`{}`),
		MaxRetries: 3,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, h.store.Events.Create(context.Background(), event))
	return event
}

func TestDispatcher_ConcurrentProcessEventDeliversOnce(t *testing.T) {
	h := newHarness(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	h.addDestination(t, "crm", srv.URL, domain.RetryStrategyExponential, 3, "session.booked")
	event := h.pendingEvent(t, "session.booked")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, h.dispatcher.ProcessEvent(context.Background(), event.ID))
		}()
	}
	wg.Wait()

	assert.Equal(t, domain.EventStatusDelivered, h.event(t, event.ID).Status)
	assert.Equal(t, int32(1), hits.Load())
	assert.Len(t, h.logs(t, event.ID), 1)
	deliveries, err := h.store.Deliveries.ListByEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Len(t, deliveries, 1)
}

func TestDispatcher_RetryEventWhileInFlightIsRejected(t *testing.T) {
	h := newHarness(t)
	started := make(chan struct{})
	release := make(chan struct{})
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	h.addDestination(t, "crm", srv.URL, domain.RetryStrategyExponential, 3, "session.booked")
	event := h.pendingEvent(t, "session.booked")

	done := make(chan error, 1)
	go func() { done <- h.dispatcher.ProcessEvent(context.Background(), event.ID) }()
	<-started

	err := h.dispatcher.RetryEvent(context.Background(), event.ID)
	assert.Equal(t, "WH_004", apperror.CodeOf(err))
	// a second processing pass while the first is in flight does nothing
	require.NoError(t, h.dispatcher.ProcessEvent(context.Background(), event.ID))

	close(release)
	require.NoError(t, <-done)
	h.dispatcher.Wait()

	assert.Equal(t, domain.EventStatusDelivered, h.event(t, event.ID).Status)
	assert.Equal(t, int32(1), hits.Load())
	assert.Len(t, h.logs(t, event.ID), 1)
}

func TestDispatcher_ProcessClaimedRunsClaimedEvent(t *testing.T) {
	h := newHarness(t)
	srv, hits := statusServer(t, fixedStatus(http.StatusOK))
	h.addDestination(t, "crm", srv.URL, domain.RetryStrategyExponential, 3, "session.booked")
	event := h.pendingEvent(t, "session.booked")

	claimed, err := h.store.Events.ClaimForProcessing(context.Background(), event.ID, h.clock.Now(), domain.EventStatusPending)
	require.NoError(t, err)
	require.True(t, claimed)

	// ProcessEvent leaves an event someone else claimed alone
	require.NoError(t, h.dispatcher.ProcessEvent(context.Background(), event.ID))
	assert.Equal(t, int32(0), hits.Load())

	require.NoError(t, h.dispatcher.ProcessClaimed(context.Background(), event.ID))
	assert.Equal(t, domain.EventStatusDelivered, h.event(t, event.ID).Status)
	assert.Equal(t, int32(1), hits.Load())
}
