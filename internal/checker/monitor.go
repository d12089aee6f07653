package checker

import (
	"context"
	"log/slog"
	"time"

	"nexttrain.nyc/internal/logging"
	"nexttrain.nyc/internal/models"
)

// Handler receives each monitoring result. Exactly one of status or err
// is non-nil; err carries only the fatal query errors, never individual
// feed failures.
type Handler func(status *models.StopStatus, err error)

// Monitor repeatedly queries one stop at a fixed interval and hands
// each result to a handler.
type Monitor struct {
	checker  *Checker
	interval time.Duration
	logger   *slog.Logger
}

func NewMonitor(checker *Checker, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		checker:  checker,
		interval: interval,
		logger:   logger,
	}
}

// Run queries the stop immediately, then on every interval tick, until
// the context is cancelled. The sleep is cooperative; cancellation
// between queries returns promptly and abandons nothing of consequence,
// since no query state outlives the query.
func (m *Monitor) Run(ctx context.Context, stopID string, handler Handler) {
	m.query(ctx, stopID, handler)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.LogOperation(m.logger, "monitor_stopped", slog.String("stop_id", stopID))
			return
		case <-ticker.C:
			m.query(ctx, stopID, handler)
		}
	}
}

func (m *Monitor) query(ctx context.Context, stopID string, handler Handler) {
	status, err := m.checker.GetStopStatus(ctx, stopID)
	if err != nil {
		logging.LogError(m.logger, "error getting stop status", err,
			slog.String("stop_id", stopID))
		handler(nil, err)
		return
	}
	handler(status, nil)
}
