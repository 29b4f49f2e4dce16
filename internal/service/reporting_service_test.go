package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupReportingService(t *testing.T) (ports.EventReportingService, *mocks.MockWebhookEventRepository, *mocks.MockWebhookDeliveryRepository, *mocks.MockWebhookLogRepository) {
	ctrl := gomock.NewController(t)
	eventRepo := mocks.NewMockWebhookEventRepository(ctrl)
	deliveryRepo := mocks.NewMockWebhookDeliveryRepository(ctrl)
	logRepo := mocks.NewMockWebhookLogRepository(ctrl)
	return NewReportingService(eventRepo, deliveryRepo, logRepo), eventRepo, deliveryRepo, logRepo
}

func TestReportingService_ListEvents(t *testing.T) {
	svc, eventRepo, _, _ := setupReportingService(t)
	filter := domain.EventFilter{Status: domain.EventStatusFailed, Source: domain.EventSourceAPI}

	eventRepo.EXPECT().
		List(gomock.Any(), filter, ports.Pagination{Page: 2, PageSize: 100}).
		Return([]domain.WebhookEvent{{ID: uuid.New()}}, int64(101), nil)

	events, total, err := svc.ListEvents(context.Background(), filter, ports.Pagination{Page: 2, PageSize: 500})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, int64(101), total)
}

func TestReportingService_ListEventsRejectsBadFilters(t *testing.T) {
	svc, _, _, _ := setupReportingService(t)
	from := time.Now()
	to := from.Add(-time.Hour)

	for _, f := range []domain.EventFilter{
		{Status: "sent"},
		{Source: "cron"},
		{From: &from, To: &to},
	} {
		_, _, err := svc.ListEvents(context.Background(), f, ports.Pagination{})
		assertAppCode(t, err, "REQ_001")
	}
}

func TestReportingService_GetEvent(t *testing.T) {
	svc, eventRepo, deliveryRepo, logRepo := setupReportingService(t)
	id := uuid.New()

	eventRepo.EXPECT().GetByID(gomock.Any(), id).Return(&domain.WebhookEvent{ID: id, Status: domain.EventStatusDelivered}, nil)
	deliveryRepo.EXPECT().ListByEvent(gomock.Any(), id).Return(nil, nil)
	logRepo.EXPECT().ListByEvent(gomock.Any(), id).Return([]domain.WebhookLog{{AttemptNumber: 1}}, nil)

	detail, err := svc.GetEvent(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, detail.Event.ID)
	assert.NotNil(t, detail.Deliveries)
	assert.Len(t, detail.Logs, 1)
}

func TestReportingService_GetEventNotFound(t *testing.T) {
	svc, eventRepo, _, _ := setupReportingService(t)
	eventRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.GetEvent(context.Background(), uuid.New())
	assertAppCode(t, err, "WH_001")
}

func TestReportingService_GetStats(t *testing.T) {
	svc, eventRepo, _, _ := setupReportingService(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	eventRepo.EXPECT().Stats(gomock.Any(), &from, &to).Return(&domain.EventStats{Total: 4, Delivered: 3, SuccessRate: 75}, nil)

	stats, err := svc.GetStats(context.Background(), &from, &to)
	require.NoError(t, err)
	assert.Equal(t, 75.0, stats.SuccessRate)

	eventRepo.EXPECT().Stats(gomock.Any(), nil, nil).Return(nil, errors.New("timeout"))
	_, err = svc.GetStats(context.Background(), nil, nil)
	assertAppCode(t, err, "SYS_001")
}
