package worker

import (
	"context"
	"fmt"
	"time"

	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Sweeper periodically requeues events that were left in pending or
// processing, e.g. after a crash between claim and completion.
type Sweeper struct {
	events     ports.WebhookEventRepository
	staleAfter time.Duration
	schedule   string
	cron       *cron.Cron
	metrics    *observability.Metrics
	now        func() time.Time
	log        zerolog.Logger
}

func NewSweeper(
	events ports.WebhookEventRepository,
	staleAfter time.Duration,
	schedule string,
	metrics *observability.Metrics,
	log zerolog.Logger,
) *Sweeper {
	if staleAfter <= 0 {
		staleAfter = 5 * time.Minute
	}
	if schedule == "" {
		schedule = "@every 1m"
	}
	return &Sweeper{
		events:     events,
		staleAfter: staleAfter,
		schedule:   schedule,
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		metrics:    metrics,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log.With().Str("component", "sweeper").Logger(),
	}
}

// Start registers the sweep job and starts the scheduler.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.Sweep(context.Background()); err != nil {
			s.log.Error().Err(err).Msg("Sweep failed")
		}
	}); err != nil {
		return fmt.Errorf("scheduling sweeper %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.log.Info().Str("schedule", s.schedule).Dur("stale_after", s.staleAfter).Msg("Sweeper started")
	return nil
}

// Stop halts the scheduler and waits for a running sweep, bounded by ctx.
func (s *Sweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Sweep requeues every pending or processing event untouched for staleAfter.
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	now := s.now()
	n, err := s.events.RequeueStale(ctx, now.Add(-s.staleAfter), now)
	if err != nil {
		return 0, fmt.Errorf("requeueing stale events: %w", err)
	}
	if n > 0 {
		s.metrics.SweeperRequeued(n)
		s.log.Warn().Int64("requeued", n).Msg("Requeued stale events")
	}
	return n, nil
}
