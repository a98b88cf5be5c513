package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	defaultPollInterval = 10 * time.Second
	maxBackoff          = 30 * time.Second
)

// Syncer refreshes the shared store once.
type Syncer interface {
	Sync(ctx context.Context) error
}

// StartPoller launches a background goroutine that syncs at interval,
// backing off exponentially while syncs fail. It returns immediately.
func StartPoller(ctx context.Context, syncer Syncer, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := syncer.Sync(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				failures++
				logger.Warn("account poll failed", zap.Error(err), zap.Int("failures", failures))
			} else {
				failures = 0
			}

			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff or base when base is larger.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	limit := maxBackoff
	if base > limit {
		limit = base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= limit {
			return limit
		}
	}
	return d
}
