package app

import (
	"context"
	"log/slog"
	"time"

	"aria2top/internal/aria2"
	"aria2top/internal/state"
)

const defaultPollInterval = time.Second

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client aria2.Querier, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = discardLogger()
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh(ctx, store, client, logger)
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, client aria2.Querier, logger *slog.Logger) {
	downloads, err := client.Downloads(ctx)
	if err != nil {
		store.Update(nil, nil, err)
		logger.Error("download poll failed", "err", err)
		return
	}
	stat, err := client.GlobalStat(ctx)
	if err != nil {
		// Keep the download list; only the stat line is stale.
		store.Update(nil, downloads, nil)
		logger.Error("global stat poll failed", "err", err)
		return
	}
	store.Update(&stat, downloads, nil)
}
