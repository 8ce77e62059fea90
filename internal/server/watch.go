package server

import (
	"context"
	"time"

	"fintrack/internal/handlers"
	"fintrack/internal/logger"
)

// WatchStorage pings p every interval until ctx is done, logging when the
// backend goes down and when it comes back. It returns nil on cancellation.
func WatchStorage(ctx context.Context, p handlers.Pinger, interval time.Duration) error {
	log := logger.Named("storage")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(ctx, interval)
		err := p.Ping(pingCtx)
		cancel()

		switch {
		case err != nil && healthy:
			log.Errorw("storage unreachable", "error", err.Error())
			healthy = false
		case err == nil && !healthy:
			log.Infow("storage reachable again")
			healthy = true
		}
	}
}
