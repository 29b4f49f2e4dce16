// Package worker runs the background loops that keep webhook delivery
// moving: the retry poller and the stale-event sweeper.
package worker

import (
	"context"
	"time"

	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// EventProcessor runs one processing pass over an event that ClaimDue has
// already moved to processing.
type EventProcessor interface {
	ProcessClaimed(ctx context.Context, eventID uuid.UUID) error
}

// RetryWorkerConfig controls the poll loop.
type RetryWorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Concurrency  int
}

// RetryWorker claims events whose next retry is due and hands them to the
// processor on a bounded pool.
type RetryWorker struct {
	events    ports.WebhookEventRepository
	processor EventProcessor
	cfg       RetryWorkerConfig
	metrics   *observability.Metrics
	now       func() time.Time
	log       zerolog.Logger
}

func NewRetryWorker(
	events ports.WebhookEventRepository,
	processor EventProcessor,
	cfg RetryWorkerConfig,
	metrics *observability.Metrics,
	log zerolog.Logger,
) *RetryWorker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 50
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &RetryWorker{
		events:    events,
		processor: processor,
		cfg:       cfg,
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log.With().Str("component", "retry_worker").Logger(),
	}
}

// Run polls until ctx is cancelled. The first poll happens immediately so
// retries that came due while the process was down are picked up at start.
func (w *RetryWorker) Run(ctx context.Context) error {
	w.log.Info().
		Dur("poll_interval", w.cfg.PollInterval).
		Int("batch_size", w.cfg.BatchSize).
		Int("concurrency", w.cfg.Concurrency).
		Msg("Retry worker started")

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := w.Poll(ctx); err != nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("Failed to claim due events")
		}
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Retry worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Poll claims one batch of due events and processes it, returning once every
// claimed event has been handled. Processing errors are logged; the sweeper
// requeues anything left in processing.
func (w *RetryWorker) Poll(ctx context.Context) (int, error) {
	ids, err := w.events.ClaimDue(ctx, w.now(), w.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	w.metrics.WorkerClaimed(len(ids))
	w.log.Debug().Int("claimed", len(ids)).Msg("Claimed due events")

	g := new(errgroup.Group)
	g.SetLimit(w.cfg.Concurrency)
	for _, id := range ids {
		g.Go(func() error {
			if err := w.processor.ProcessClaimed(ctx, id); err != nil {
				w.log.Error().Err(err).Str("event_id", id.String()).Msg("Failed to process claimed event")
			}
			return nil
		})
	}
	_ = g.Wait()
	return len(ids), nil
}
