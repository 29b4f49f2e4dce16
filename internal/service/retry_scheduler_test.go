package service

import (
	"context"
	"testing"
	"time"

	"wellness-dispatch/internal/adapter/storage/memory"
	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRetryScheduler_Backoff(t *testing.T) {
	s := NewRetryScheduler(nil, nil, DefaultBackoff, nil, newTestLogger())

	tests := []struct {
		strategy domain.RetryStrategy
		retry    int
		want     time.Duration
	}{
		{domain.RetryStrategyExponential, 1, 2 * time.Second},
		{domain.RetryStrategyExponential, 2, 4 * time.Second},
		{domain.RetryStrategyExponential, 3, 8 * time.Second},
		{domain.RetryStrategyLinear, 1, 1 * time.Second},
		{domain.RetryStrategyLinear, 4, 4 * time.Second},
		{domain.RetryStrategyLinear, 7, 7 * time.Second},
		{domain.RetryStrategyFixed, 1, 5 * time.Second},
		{domain.RetryStrategyFixed, 9, 5 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Backoff(tt.retry, tt.strategy), "%s(%d)", tt.strategy, tt.retry)
	}
}

func TestRetryScheduler_BackoffConfigurable(t *testing.T) {
	s := NewRetryScheduler(nil, nil, BackoffConfig{Base: 100 * time.Millisecond, Fixed: time.Minute}, nil, newTestLogger())

	assert.Equal(t, 800*time.Millisecond, s.Backoff(3, domain.RetryStrategyExponential))
	assert.Equal(t, 300*time.Millisecond, s.Backoff(3, domain.RetryStrategyLinear))
	assert.Equal(t, time.Minute, s.Backoff(3, domain.RetryStrategyFixed))
}

func TestRetryScheduler_BackoffDoesNotOverflow(t *testing.T) {
	s := NewRetryScheduler(nil, nil, DefaultBackoff, nil, newTestLogger())
	assert.Greater(t, int64(s.Backoff(500, domain.RetryStrategyExponential)), int64(0))
}

func seedDelivery(t *testing.T, store *memory.Store, maxRetries, retryCount int) *domain.WebhookDelivery {
	t.Helper()
	d := &domain.WebhookDelivery{
		ID:            uuid.New(),
		EventID:       uuid.New(),
		DestinationID: uuid.New(),
		Status:        domain.DeliveryStatusPending,
		RetryCount:    retryCount,
		MaxRetries:    maxRetries,
	}
	require.NoError(t, store.Deliveries.Create(context.Background(), d))
	return d
}

func TestRetryScheduler_SchedulesWithinBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := memory.New()
	security := mocks.NewMockSecurityLogger(ctrl)
	clock := newFakeClock()
	s := NewRetryScheduler(store.Deliveries, security, DefaultBackoff, nil, newTestLogger()).(*retryScheduler)
	s.now = clock.Now

	delivery := seedDelivery(t, store, 3, 1)
	dest := &domain.WebhookDestination{ID: delivery.DestinationID, RetryStrategy: domain.RetryStrategyExponential}
	code := 503

	err := s.ScheduleRetry(context.Background(), &domain.WebhookEvent{ID: delivery.EventID}, delivery, dest,
		&ports.AttemptResult{ResponseCode: &code})
	require.NoError(t, err)

	stored, _ := store.Deliveries.ListByEvent(context.Background(), delivery.EventID)
	require.Len(t, stored, 1)
	assert.Equal(t, domain.DeliveryStatusRetrying, stored[0].Status)
	assert.Equal(t, 2, stored[0].RetryCount)
	require.NotNil(t, stored[0].NextRetryAt)
	assert.Equal(t, clock.Now().Add(4*time.Second), *stored[0].NextRetryAt)
	assert.Equal(t, "destination responded with HTTP 503", *stored[0].LastError)
}

func TestRetryScheduler_ExhaustedFailsAndLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := memory.New()
	security := mocks.NewMockSecurityLogger(ctrl)
	s := NewRetryScheduler(store.Deliveries, security, DefaultBackoff, nil, newTestLogger())

	delivery := seedDelivery(t, store, 2, 2)
	event := &domain.WebhookEvent{ID: delivery.EventID, EventType: "user.created"}

	security.EXPECT().
		LogEvent(gomock.Any(), domain.SecurityWebhookRetriesExhausted, domain.Actor{}, domain.ClientInfo{}, gomock.Any()).
		Do(func(_ context.Context, _ domain.SecurityEventType, _ domain.Actor, _ domain.ClientInfo, details map[string]interface{}) {
			assert.Equal(t, delivery.EventID.String(), details["event_id"])
			assert.Equal(t, 3, details["attempts"])
			assert.Equal(t, "read: connection reset", details["last_error"])
		})

	msg := "read: connection reset"
	err := s.ScheduleRetry(context.Background(), event, delivery, nil, &ports.AttemptResult{ErrorMessage: &msg})
	require.NoError(t, err)

	stored, _ := store.Deliveries.ListByEvent(context.Background(), delivery.EventID)
	assert.Equal(t, domain.DeliveryStatusFailed, stored[0].Status)
	assert.Nil(t, stored[0].NextRetryAt)
	assert.Equal(t, 2, stored[0].RetryCount)
}

func TestRetryScheduler_ZeroRetriesFailsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := memory.New()
	security := mocks.NewMockSecurityLogger(ctrl)
	security.EXPECT().LogEvent(gomock.Any(), domain.SecurityWebhookRetriesExhausted, gomock.Any(), gomock.Any(), gomock.Any())
	s := NewRetryScheduler(store.Deliveries, security, DefaultBackoff, nil, newTestLogger())

	delivery := seedDelivery(t, store, 0, 0)
	require.NoError(t, s.ScheduleRetry(context.Background(), &domain.WebhookEvent{ID: delivery.EventID}, delivery, nil, nil))
	assert.Equal(t, domain.DeliveryStatusFailed, delivery.Status)
}
