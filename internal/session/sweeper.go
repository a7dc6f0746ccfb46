// Package session holds the background sweeper that removes expired
// session rows. Sessions are never revoked on logout; the sweeper is the
// only thing that deletes them, once their tokens can no longer verify.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abakirov/mflix-api/internal/metrics"
	"github.com/abakirov/mflix-api/internal/repository"
	"github.com/robfig/cron/v3"
)

type Sweeper struct {
	sessions repository.SessionRepository
	logger   *slog.Logger
	schedule cron.Schedule
}

// NewSweeper parses a standard cron expression ("@hourly", "0 * * * *", ...)
// and returns a sweeper that fires on that schedule.
func NewSweeper(sessions repository.SessionRepository, logger *slog.Logger, cronExpr string) (*Sweeper, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("parse sweep schedule: %w", err)
	}
	return &Sweeper{
		sessions: sessions,
		logger:   logger.With("component", "session_sweeper"),
		schedule: schedule,
	}, nil
}

func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("session sweeper started")

	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("session sweeper shut down")
			return
		case <-timer.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("sweep expired sessions", "error", err)
		return
	}
	if removed > 0 {
		metrics.SessionsSweptTotal.Add(float64(removed))
		s.logger.Info("swept expired sessions", "count", removed)
	}
}
