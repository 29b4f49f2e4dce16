package service

import (
	"context"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/pkg/apperror"

	"github.com/google/uuid"
)

// reportingService implements ports.EventReportingService.
type reportingService struct {
	eventRepo    ports.WebhookEventRepository
	deliveryRepo ports.WebhookDeliveryRepository
	logRepo      ports.WebhookLogRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	eventRepo ports.WebhookEventRepository,
	deliveryRepo ports.WebhookDeliveryRepository,
	logRepo ports.WebhookLogRepository,
) ports.EventReportingService {
	return &reportingService{
		eventRepo:    eventRepo,
		deliveryRepo: deliveryRepo,
		logRepo:      logRepo,
	}
}

// ListEvents returns one page of events, newest first.
func (s *reportingService) ListEvents(ctx context.Context, filter domain.EventFilter, page ports.Pagination) ([]domain.WebhookEvent, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, apperror.Validation("invalid status filter")
	}
	if filter.Source != "" && !filter.Source.Valid() {
		return nil, 0, apperror.Validation("invalid source filter")
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, 0, apperror.Validation("from must not be after to")
	}

	events, total, err := s.eventRepo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return events, total, nil
}

// GetEvent returns the event with its deliveries and attempt log.
func (s *reportingService) GetEvent(ctx context.Context, id uuid.UUID) (*ports.EventDetail, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if event == nil {
		return nil, apperror.ErrNotFound("Event")
	}

	deliveries, err := s.deliveryRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	logs, err := s.logRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	if deliveries == nil {
		deliveries = []*domain.WebhookDelivery{}
	}
	if logs == nil {
		logs = []domain.WebhookLog{}
	}
	return &ports.EventDetail{Event: event, Deliveries: deliveries, Logs: logs}, nil
}

// GetStats aggregates event counts between from and to (both optional).
func (s *reportingService) GetStats(ctx context.Context, from, to *time.Time) (*domain.EventStats, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, apperror.Validation("from must not be after to")
	}
	stats, err := s.eventRepo.Stats(ctx, from, to)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return stats, nil
}
