package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"cjpowerhouse-backend/internal/repository"
)

const (
	// Sessions open this long are considered forgotten and force-closed.
	autoLogoutThreshold = 9 * time.Hour
	// A swept session is credited at most the daily requirement; time past
	// 8 hours on a forgotten session is treated as lost, not overtime.
	sweptDutyCapMinutes = 480

	defaultSweepInterval = time.Minute
)

// Sweeper force-closes duty sessions left open past the safety threshold so
// stale rows cannot corrupt later aggregation. It runs on its own ticker; a
// mutex guarantees only one sweep is in flight even if Sweep is also called
// directly.
type Sweeper struct {
	logs     repository.StaffLogRepository
	logger   *zap.Logger
	interval time.Duration
	now      func() time.Time

	mu sync.Mutex
}

func NewSweeper(logs repository.StaffLogRepository, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		logs:     logs,
		logger:   logger,
		interval: defaultSweepInterval,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("auto-logout sweeper started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("auto-logout sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep closes every session open for 9+ hours, crediting at most 480 duty
// minutes. A failure on one row is logged and skipped; the sweep moves on,
// and the row is retried on the next tick since closing is idempotent.
// Returns the number of sessions closed.
func (s *Sweeper) Sweep() int {
	if !s.mu.TryLock() {
		return 0 // a sweep is already running
	}
	defer s.mu.Unlock()

	now := s.now()
	candidates, err := s.logs.OverdueOpen(now.Add(-autoLogoutThreshold))
	if err != nil {
		s.logger.Warn("overdue session query failed", zap.Error(err))
		return 0
	}

	closed := 0
	for _, log := range candidates {
		minutes := int(now.Sub(log.TimeIn).Minutes())
		if minutes > sweptDutyCapMinutes {
			minutes = sweptDutyCapMinutes
		}
		if err := s.logs.CloseSwept(log.ID, now, minutes); err != nil {
			s.logger.Warn("auto-logout failed, will retry next sweep",
				zap.Uint("log_id", log.ID), zap.Error(err))
			continue
		}
		closed++
		s.logger.Info("auto-logged out overdue session",
			zap.Uint("log_id", log.ID),
			zap.Uint("staff_id", log.StaffID),
			zap.String("role", log.Role),
			zap.Int("duty_minutes", minutes))
	}
	return closed
}
