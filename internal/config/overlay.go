package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "NAUKARIWALA_"

// LoadEnvFile loads a .env file into the process environment. A missing file
// is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// DataDirFromEnv returns NAUKARIWALA_DATA_DIR or "." when unset.
func DataDirFromEnv() string {
	return getEnv("DATA_DIR", ".")
}

// OverlayEnv lets NAUKARIWALA_* variables win over the YAML file.
func OverlayEnv(cfg *Config) {
	cfg.App.Addr = getEnv("ADDR", cfg.App.Addr)
	cfg.App.DataDir = getEnv("DATA_DIR", cfg.App.DataDir)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
	cfg.Catalog.Path = getEnv("CATALOG_PATH", cfg.Catalog.Path)
	cfg.Contact.RatePerSecond = getEnvAsFloat("CONTACT_RATE", cfg.Contact.RatePerSecond)
	cfg.Contact.Burst = getEnvAsInt("CONTACT_BURST", cfg.Contact.Burst)
	if v := os.Getenv(envPrefix + "CORS_ORIGINS"); v != "" {
		cfg.CORS.AllowOrigins = strings.Split(v, ",")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvAsFloat(key string, def float64) float64 {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
