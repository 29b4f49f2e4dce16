package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status EventStatus
		want   bool
	}{
		{EventStatusPending, false},
		{EventStatusProcessing, false},
		{EventStatusRetrying, false},
		{EventStatusDelivered, true},
		{EventStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.True(t, tt.status.Valid())
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
	assert.False(t, EventStatus("DELIVERED").Valid())
}

func TestWebhookDestination_Subscribes(t *testing.T) {
	d := &WebhookDestination{Active: true, EventTypes: []string{"user.created", "course.completed"}}

	assert.True(t, d.Subscribes("user.created"))
	assert.False(t, d.Subscribes("user.deleted"))

	d.Active = false
	assert.False(t, d.Subscribes("user.created"))
}

func TestWebhookDelivery_IsDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Second), now.Add(time.Second)

	assert.True(t, (&WebhookDelivery{Status: DeliveryStatusPending}).IsDue(now))
	assert.True(t, (&WebhookDelivery{Status: DeliveryStatusRetrying, NextRetryAt: &past}).IsDue(now))
	assert.True(t, (&WebhookDelivery{Status: DeliveryStatusRetrying, NextRetryAt: &now}).IsDue(now))
	assert.False(t, (&WebhookDelivery{Status: DeliveryStatusRetrying, NextRetryAt: &future}).IsDue(now))
	assert.False(t, (&WebhookDelivery{Status: DeliveryStatusDelivered}).IsDue(now))
	assert.False(t, (&WebhookDelivery{Status: DeliveryStatusFailed}).IsDue(now))
}

func TestRollupDeliveries(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	soon, later := now.Add(2*time.Second), now.Add(8*time.Second)

	t.Run("no deliveries is delivered", func(t *testing.T) {
		r := RollupDeliveries(nil)
		assert.Equal(t, EventStatusDelivered, r.Status)
		assert.Nil(t, r.NextRetryAt)
	})

	t.Run("all delivered", func(t *testing.T) {
		r := RollupDeliveries([]*WebhookDelivery{
			{Status: DeliveryStatusDelivered},
			{Status: DeliveryStatusDelivered, RetryCount: 1},
		})
		assert.Equal(t, EventStatusDelivered, r.Status)
		assert.Equal(t, 1, r.RetryCount)
	})

	t.Run("any retrying wins and takes earliest next retry", func(t *testing.T) {
		r := RollupDeliveries([]*WebhookDelivery{
			{Status: DeliveryStatusDelivered},
			{Status: DeliveryStatusRetrying, RetryCount: 2, NextRetryAt: &later},
			{Status: DeliveryStatusRetrying, RetryCount: 1, NextRetryAt: &soon},
			{Status: DeliveryStatusFailed, RetryCount: 3},
		})
		assert.Equal(t, EventStatusRetrying, r.Status)
		assert.Equal(t, soon, *r.NextRetryAt)
		assert.Equal(t, 3, r.RetryCount)
	})

	t.Run("delivered and exhausted is failed", func(t *testing.T) {
		r := RollupDeliveries([]*WebhookDelivery{
			{Status: DeliveryStatusDelivered},
			{Status: DeliveryStatusFailed, RetryCount: 2, MaxRetries: 2},
		})
		assert.Equal(t, EventStatusFailed, r.Status)
		assert.Equal(t, 2, r.MaxRetries)
		assert.Nil(t, r.NextRetryAt)
	})
}

func TestEventStats_ComputeSuccessRate(t *testing.T) {
	s := EventStats{Total: 8, Delivered: 6}
	s.ComputeSuccessRate()
	assert.InDelta(t, 75.0, s.SuccessRate, 0.001)

	empty := EventStats{}
	empty.ComputeSuccessRate()
	assert.Equal(t, 0.0, empty.SuccessRate)
}

func TestSecurityEventType_Severity(t *testing.T) {
	assert.Equal(t, SeverityHigh, SecuritySuspiciousActivity.Severity())
	assert.Equal(t, SeverityHigh, SecurityAccountLocked.Severity())
	assert.Equal(t, SeverityLow, SecurityLoginSuccess.Severity())
	assert.Equal(t, SeverityMedium, SecurityEventType("made_up").Severity())
	assert.False(t, SecurityEventType("made_up").Valid())
}

func TestSecurityEventType_TriggersAlert(t *testing.T) {
	triggers := map[SecurityEventType]bool{
		SecuritySuspiciousActivity: true,
		SecurityAccountLocked:      true,
		SecurityAdminAction:        true,
	}
	for typ := range severities {
		assert.Equal(t, triggers[typ], typ.TriggersAlert(), typ)
	}
	// High severity alone does not trigger an alert.
	assert.Equal(t, SeverityHigh, SecurityMFADisabled.Severity())
	assert.False(t, SecurityMFADisabled.TriggersAlert())
}

func TestAdminUser_IsLocked(t *testing.T) {
	now := time.Now()
	until := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	assert.False(t, (&AdminUser{}).IsLocked(now))
	assert.True(t, (&AdminUser{LockedUntil: &until}).IsLocked(now))
	assert.False(t, (&AdminUser{LockedUntil: &past}).IsLocked(now))
}

func TestRateLimitResult_RetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r := RateLimitResult{ResetAt: now.Add(1500 * time.Millisecond)}
	assert.Equal(t, 2*time.Second, r.RetryAfter(now))

	r = RateLimitResult{ResetAt: now.Add(3 * time.Second)}
	assert.Equal(t, 3*time.Second, r.RetryAfter(now))

	r = RateLimitResult{ResetAt: now.Add(-time.Second)}
	assert.Equal(t, time.Duration(0), r.RetryAfter(now))
}

func TestBuildRateLimitKey(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	assert.Equal(t, "login:550e8400-e29b-41d4-a716-446655440000", BuildRateLimitKey("login", id.String()))
}
