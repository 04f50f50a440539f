//go:build windows

package main

import "context"

// No SIGHUP on Windows; use PUT /api/config instead.
func watchReload(ctx context.Context, _ func() error) error {
	<-ctx.Done()
	return nil
}
