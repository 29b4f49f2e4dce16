package worker

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wellness-dispatch/internal/adapter/storage/memory"
	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports/mocks"
	"wellness-dispatch/internal/observability"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// recordingProcessor records processed IDs and the peak number of
// concurrent ProcessClaimed calls.
type recordingProcessor struct {
	mu      sync.Mutex
	seen    []uuid.UUID
	active  atomic.Int32
	peak    atomic.Int32
	delay   time.Duration
	failFor uuid.UUID
}

func (p *recordingProcessor) ProcessClaimed(ctx context.Context, id uuid.UUID) error {
	n := p.active.Add(1)
	defer p.active.Add(-1)
	for {
		peak := p.peak.Load()
		if n <= peak || p.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(p.delay)

	p.mu.Lock()
	p.seen = append(p.seen, id)
	p.mu.Unlock()
	if id == p.failFor {
		return errors.New("destination lookup failed")
	}
	return nil
}

func (p *recordingProcessor) processed() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uuid.UUID(nil), p.seen...)
}

func seedEvent(t *testing.T, store *memory.Store, status domain.EventStatus, nextRetry *time.Time, updatedAt time.Time) uuid.UUID {
	t.Helper()
	event := &domain.WebhookEvent{
		ID:          uuid.New(),
		EventType:   "session.completed",
		Source:      domain.EventSourceAPI,
		Status:      status,
		Payload:     []byte(`{}`),
		NextRetryAt: nextRetry,
		CreatedAt:   updatedAt,
		UpdatedAt:   updatedAt,
	}
	require.NoError(t, store.Events.Create(context.Background(), event))
	return event.ID
}

func newTestWorker(store *memory.Store, p EventProcessor, cfg RetryWorkerConfig, m *observability.Metrics) *RetryWorker {
	w := NewRetryWorker(store.Events, p, cfg, m, testLogger())
	w.now = func() time.Time { return testNow }
	return w
}

func TestRetryWorker_PollProcessesOnlyDueEvents(t *testing.T) {
	store := memory.New()
	past := testNow.Add(-time.Second)
	future := testNow.Add(time.Minute)
	due := seedEvent(t, store, domain.EventStatusRetrying, &past, past)
	seedEvent(t, store, domain.EventStatusRetrying, &future, past)
	seedEvent(t, store, domain.EventStatusDelivered, nil, past)

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	p := &recordingProcessor{}
	w := newTestWorker(store, p, RetryWorkerConfig{BatchSize: 10, Concurrency: 2}, metrics)

	n, err := w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []uuid.UUID{due}, p.processed())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerClaimedTotal))

	claimed, err := store.Events.GetByID(context.Background(), due)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusProcessing, claimed.Status)

	n, err = w.Poll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "a claimed event is not claimed twice")
}

func TestRetryWorker_PollRespectsBatchSizeAndConcurrency(t *testing.T) {
	store := memory.New()
	past := testNow.Add(-time.Minute)
	for range 6 {
		seedEvent(t, store, domain.EventStatusRetrying, &past, past)
	}

	p := &recordingProcessor{delay: 20 * time.Millisecond}
	w := newTestWorker(store, p, RetryWorkerConfig{BatchSize: 4, Concurrency: 2}, nil)

	n, err := w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Len(t, p.processed(), 4)
	assert.LessOrEqual(t, p.peak.Load(), int32(2))
}

func TestRetryWorker_ProcessingErrorDoesNotStopBatch(t *testing.T) {
	store := memory.New()
	past := testNow.Add(-time.Minute)
	bad := seedEvent(t, store, domain.EventStatusRetrying, &past, past)
	seedEvent(t, store, domain.EventStatusRetrying, &past, past)

	p := &recordingProcessor{failFor: bad}
	w := newTestWorker(store, p, RetryWorkerConfig{BatchSize: 10, Concurrency: 1}, nil)

	n, err := w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, p.processed(), 2)
}

func TestRetryWorker_ClaimError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookEventRepository(ctrl)
	repo.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), 50).Return(nil, errors.New("connection refused"))

	p := &recordingProcessor{}
	w := NewRetryWorker(repo, p, RetryWorkerConfig{}, nil, testLogger())

	_, err := w.Poll(context.Background())
	require.Error(t, err)
	assert.Empty(t, p.processed())
}

func TestRetryWorker_RunPollsImmediatelyAndStops(t *testing.T) {
	store := memory.New()
	past := testNow.Add(-time.Hour)
	id := seedEvent(t, store, domain.EventStatusRetrying, &past, past)

	p := &recordingProcessor{}
	w := newTestWorker(store, p, RetryWorkerConfig{PollInterval: time.Hour, BatchSize: 10, Concurrency: 1}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return len(p.processed()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, id, p.processed()[0])

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestSweeper_RequeuesStaleEvents(t *testing.T) {
	store := memory.New()
	stale := seedEvent(t, store, domain.EventStatusProcessing, nil, testNow.Add(-10*time.Minute))
	lost := seedEvent(t, store, domain.EventStatusPending, nil, testNow.Add(-6*time.Minute))
	fresh := seedEvent(t, store, domain.EventStatusProcessing, nil, testNow.Add(-time.Minute))
	done := seedEvent(t, store, domain.EventStatusDelivered, nil, testNow.Add(-time.Hour))

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	s := NewSweeper(store.Events, 5*time.Minute, "", metrics, testLogger())
	s.now = func() time.Time { return testNow }

	n, err := s.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.SweeperRequeuedTotal))

	for _, id := range []uuid.UUID{stale, lost} {
		e, err := store.Events.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusRetrying, e.Status)
		require.NotNil(t, e.NextRetryAt)
		assert.Equal(t, testNow, *e.NextRetryAt)
	}
	for id, want := range map[uuid.UUID]domain.EventStatus{fresh: domain.EventStatusProcessing, done: domain.EventStatusDelivered} {
		e, err := store.Events.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, want, e.Status)
	}
}

func TestSweeper_RequeuedEventsAreClaimable(t *testing.T) {
	store := memory.New()
	seedEvent(t, store, domain.EventStatusProcessing, nil, testNow.Add(-time.Hour))

	s := NewSweeper(store.Events, time.Minute, "", nil, testLogger())
	s.now = func() time.Time { return testNow }
	_, err := s.Sweep(context.Background())
	require.NoError(t, err)

	p := &recordingProcessor{}
	n, err := newTestWorker(store, p, RetryWorkerConfig{}, nil).Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSweeper_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookEventRepository(ctrl)
	repo.EXPECT().RequeueStale(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("deadlock detected"))

	s := NewSweeper(repo, time.Minute, "", nil, testLogger())
	_, err := s.Sweep(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestSweeper_StartRejectsBadSchedule(t *testing.T) {
	s := NewSweeper(memory.New().Events, time.Minute, "every now and then", nil, testLogger())
	require.Error(t, s.Start())
}

func TestSweeper_StartStop(t *testing.T) {
	s := NewSweeper(memory.New().Events, time.Minute, "@every 1h", nil, testLogger())
	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
	assert.NoError(t, ctx.Err())
}
