package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"naukariwala-site/internal/catalog"
	"naukariwala-site/internal/config"
	"naukariwala-site/internal/contact"
	"naukariwala-site/internal/content"
	"naukariwala-site/internal/events"
	"naukariwala-site/internal/httpapi"
	"naukariwala-site/internal/logger"
	"naukariwala-site/internal/ui"
	"naukariwala-site/internal/web"
)

const (
	shutdownTimeout = 5 * time.Second
	janitorInterval = time.Minute
	limiterIdle     = 10 * time.Minute
)

func serveAction(ctx context.Context, cmd *cli.Command) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	cfg := env.Cfg
	if addr := cmd.String("addr"); addr != "" {
		cfg.App.Addr = addr
	}

	lock := flock.New(filepath.Join(env.DataDir, "naukariwala.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return fmt.Errorf("another server is already using %s", env.DataDir)
	}
	defer lock.Unlock()

	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	site, err := content.Default()
	if err != nil {
		return err
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)
	loadCfg := func() (config.Config, error) { return loadConfig(env.UserCfgPath) }

	hub := events.NewHub()
	limiter := contact.NewClientLimiter(cfg.Contact.RatePerSecond, cfg.Contact.Burst)
	resetAfter := time.Duration(cfg.Contact.ResetAfterSeconds) * time.Second
	svc := contact.NewService(contact.LogSink{}, limiter, contact.Options{
		MaxMessageLen: cfg.Contact.MaxMessageLen,
		ResetAfter:    resetAfter,
	})

	mux := httpapi.NewMux(httpapi.Deps{
		Catalog:     cat,
		Site:        site,
		Contact:     svc,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: env.UserCfgPath,
		LoadCfg:     loadCfg,
		ApplyCfg:    func(prev, next config.Config) { applyConfig(ctx, prev, next) },
		StartedAt:   time.Now(),
	})
	pages, err := web.New(web.Deps{
		Catalog:    cat,
		Site:       site,
		Contact:    svc,
		Hub:        hub,
		ResetAfter: resetAfter,
	})
	if err != nil {
		return err
	}
	pages.Mount(mux)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if token := cmd.String("shutdown-token"); token != "" {
		mux.HandleFunc("/shutdown", httpapi.LocalOnly(shutdownHandler(token, cancel)))
	}

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.Recover,
			httpapi.RequestID,
			httpapi.AccessLog,
			httpapi.Cors(cfg.CORS.AllowOrigins),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.App.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.App.Addr, err)
	}

	ui.PrintBanner(os.Stdout, cmd.Bool("quiet"))
	slog.Info("server listening",
		"url", "http://"+ln.Addr().String(),
		"data_dir", env.DataDir,
		"config", env.UserCfgPath,
		"jobs", cat.Len(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer scancel()
		slog.Info("shutting down")
		return srv.Shutdown(sctx)
	})
	g.Go(func() error {
		return limiter.RunJanitor(gctx, janitorInterval, limiterIdle)
	})
	g.Go(func() error {
		return watchReload(gctx, func() error {
			return reloadConfig(gctx, &cfgVal, loadCfg, hub)
		})
	})

	return g.Wait()
}

// reloadConfig swaps in a fresh config from disk and applies it.
func reloadConfig(ctx context.Context, cfgVal *atomic.Value, loadCfg func() (config.Config, error), hub *events.Hub) error {
	next, err := loadCfg()
	if err != nil {
		return err
	}
	prev := cfgVal.Load().(config.Config)
	cfgVal.Store(next)
	applyConfig(ctx, prev, next)

	hub.Publish(events.MakeEvent("", events.TypeConfigReloaded, 1, map[string]any{"source": "signal"}))
	return nil
}

// applyConfig puts next into effect. Logging changes apply immediately;
// listen address, CORS and contact limits need a restart.
func applyConfig(ctx context.Context, prev, next config.Config) {
	logger.New(logger.Config{Level: next.Log.Level, Format: next.Log.Format})
	if next.App.Addr != prev.App.Addr {
		slog.WarnContext(ctx, "app.addr changed; restart to apply", "old", prev.App.Addr, "new", next.App.Addr)
	}
	slog.InfoContext(ctx, "config applied", "log_level", next.Log.Level, "log_format", next.Log.Format)
}
