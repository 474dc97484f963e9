// Package config loads zenithfmt settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hugr-lab/zenith-scan/internal/columns"
)

// Formula kinds accepted by Kind.
const (
	KindBoolean = "boolean"
	KindNumeric = "numeric"
)

// Environment variables overriding the file settings.
const (
	EnvLogLevel  = "ZENITH_LOG_LEVEL"
	EnvStorePath = "ZENITH_STORE_PATH"
)

// Config holds the CLI settings loaded from YAML and the environment.
type Config struct {
	LogLevel      string            `yaml:"log_level"`
	StorePath     string            `yaml:"store_path"`
	StoreTable    string            `yaml:"store_table"`
	Kind          string            `yaml:"kind"`
	ColumnMapping map[string]string `yaml:"column_mapping"`
}

func defaults() Config {
	return Config{
		LogLevel:   "info",
		StorePath:  "./data/scans.duckdb",
		StoreTable: "scans",
		Kind:       KindBoolean,
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml: %w", err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvStorePath); v != "" {
		cfg.StorePath = v
	}

	return cfg, cfg.validate()
}

// validate normalizes cfg in place.
func (cfg *Config) validate() error {
	cfg.Kind = strings.ToLower(cfg.Kind)
	switch cfg.Kind {
	case KindBoolean, KindNumeric:
	default:
		return fmt.Errorf(`kind must be %q or %q`, KindBoolean, KindNumeric)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	default:
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}

	if cfg.StoreTable == "" {
		return errors.New("store_table must not be empty")
	}

	known := make(map[string]bool)
	for _, col := range columns.All() {
		known[col.Name] = true
	}
	for from, to := range cfg.ColumnMapping {
		if !known[from] {
			return fmt.Errorf("column_mapping: unknown column %q", from)
		}
		if to == "" {
			return fmt.Errorf("column_mapping: empty target for %q", from)
		}
	}
	return nil
}

// NewLogger returns a text logger writing to w at the named level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}
