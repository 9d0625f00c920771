// Package retention prunes old chat history on a cron schedule.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/metrics"
)

// Pruner deletes chat turns older than the cutoff.
type Pruner interface {
	PruneChatTurns(ctx context.Context, before time.Time) (int64, error)
}

type Scheduler struct {
	pruner   Pruner
	days     int
	schedule string
	timeout  time.Duration
	log      *slog.Logger
	now      func() time.Time
	cron     *cron.Cron
}

// NewScheduler keeps days of history. schedule uses the six-field cron syntax
// with seconds.
func NewScheduler(p Pruner, days int, schedule string, log *slog.Logger) *Scheduler {
	return &Scheduler{
		pruner:   p,
		days:     days,
		schedule: schedule,
		timeout:  time.Minute,
		log:      log.With("component", "retention"),
		now:      time.Now,
	}
}

// Start registers the job and starts the cron runner.
func (s *Scheduler) Start() error {
	if s.days <= 0 {
		return fmt.Errorf("retention window must be positive, got %d days", s.days)
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if _, err := s.RunOnce(ctx); err != nil {
			s.log.Error("chat history prune failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid retention schedule %q: %w", s.schedule, err)
	}

	s.cron = c
	c.Start()
	s.log.Info("retention scheduler started", "schedule", s.schedule, "days", s.days)
	return nil
}

// Stop halts the runner and waits for a running prune to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// RunOnce prunes everything older than the retention window.
func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	cutoff := Cutoff(s.now(), s.days)
	n, err := s.pruner.PruneChatTurns(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	metrics.ChatTurnsPrunedTotal.Add(float64(n))
	s.log.Info("chat history pruned", "removed", n, "cutoff", cutoff)
	return n, nil
}

// Cutoff is the oldest timestamp kept for a window of days.
func Cutoff(now time.Time, days int) time.Time {
	return now.UTC().AddDate(0, 0, -days)
}
