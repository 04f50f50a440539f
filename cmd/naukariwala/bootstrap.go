package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"naukariwala-site/internal/config"
	"naukariwala-site/internal/logger"
)

type appEnv struct {
	DataDir     string
	UserCfgPath string
	Cfg         config.Config
}

// resolvePaths loads .env and works out the data dir and config path,
// seeding the config on first run.
func resolvePaths(cmd *cli.Command) (dataDir, cfgPath string, err error) {
	if err := config.LoadEnvFile(cmd.String("env")); err != nil {
		return "", "", err
	}

	dataDir = cmd.String("data-dir")
	if dataDir == "" {
		dataDir = config.DataDirFromEnv()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create data dir: %w", err)
	}

	cfgPath = cmd.String("config")
	if cfgPath == "" {
		cfgPath, err = config.EnsureUserConfig(dataDir)
		if err != nil {
			return "", "", fmt.Errorf("config bootstrap: %w", err)
		}
	}
	return dataDir, cfgPath, nil
}

// loadConfig reads path, applies NAUKARIWALA_* overrides and rejects invalid
// configs. Warnings are logged.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("config load (%s): %w", path, err)
	}
	config.OverlayEnv(&cfg)

	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		slog.Warn("config warning", "path", path, "warning", w)
	}
	if !vr.OK() {
		return cfg, config.Validate(cfg)
	}
	return cfg, nil
}

func bootstrap(cmd *cli.Command) (appEnv, error) {
	dataDir, cfgPath, err := resolvePaths(cmd)
	if err != nil {
		return appEnv{}, err
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return appEnv{}, err
	}
	logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return appEnv{DataDir: dataDir, UserCfgPath: cfgPath, Cfg: cfg}, nil
}
