//go:build !windows

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// watchReload calls reload on every SIGHUP until ctx is done.
func watchReload(ctx context.Context, reload func() error) error {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hup:
			if err := reload(); err != nil {
				slog.ErrorContext(ctx, "config reload failed", "err", err)
			}
		}
	}
}
