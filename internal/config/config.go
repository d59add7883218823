// Package config holds runtime settings for worksheetz.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/worksheetz/internal/render"
)

// Config holds all runtime configuration.
type Config struct {
	// OutDir is where "Save as PDF" writes files.
	OutDir string

	PageSize render.PageSize
	Color    bool

	// FontPath is an optional TTF font for full Unicode PDF output.
	FontPath string

	// Printers are queue names reported alongside whatever lpstat finds.
	Printers []string

	// ScanWindow bounds a destination scan. Default: 3s.
	ScanWindow time.Duration

	// Addr is the HTTP listen address for `serve`. Default: ":8080".
	Addr string

	LogLevel slog.Level

	// Seed makes generation reproducible. Empty means random.
	Seed string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutDir:     defaultOutDir(),
		PageSize:   render.PageLetter,
		Color:      true,
		ScanWindow: 3 * time.Second,
		Addr:       ":8080",
		LogLevel:   slog.LevelInfo,
	}
}

func defaultOutDir() string {
	if d := os.Getenv("XDG_DOCUMENTS_DIR"); d != "" {
		return filepath.Join(d, "Worksheets")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "Worksheets"
	}
	return filepath.Join(home, "Worksheets")
}

// FromEnv builds a Config from WORKSHEETZ_* environment variables. Invalid
// values keep their defaults and are reported as warnings.
func FromEnv() (Config, []string) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, []string) {
	cfg := DefaultConfig()
	var warnings []string
	warn := func(key, val string, err error) {
		warnings = append(warnings, fmt.Sprintf("%s=%q ignored: %v", key, val, err))
	}

	if v := getenv("WORKSHEETZ_OUT_DIR"); v != "" {
		cfg.OutDir = v
	}
	if v := getenv("WORKSHEETZ_PAGE_SIZE"); v != "" {
		if ps, err := render.ParsePageSize(v); err != nil {
			warn("WORKSHEETZ_PAGE_SIZE", v, err)
		} else {
			cfg.PageSize = ps
		}
	}
	if v := getenv("WORKSHEETZ_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err != nil {
			warn("WORKSHEETZ_COLOR", v, err)
		} else {
			cfg.Color = b
		}
	}
	if v := getenv("WORKSHEETZ_FONT"); v != "" {
		cfg.FontPath = v
	}
	if v := getenv("WORKSHEETZ_PRINTERS"); v != "" {
		cfg.Printers = SplitList(v)
	}
	if v := getenv("WORKSHEETZ_SCAN_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err != nil {
			warn("WORKSHEETZ_SCAN_WINDOW", v, err)
		} else if d <= 0 {
			warn("WORKSHEETZ_SCAN_WINDOW", v, fmt.Errorf("must be positive"))
		} else {
			cfg.ScanWindow = d
		}
	}
	if v := getenv("WORKSHEETZ_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("WORKSHEETZ_LOG_LEVEL"); v != "" {
		if lvl, err := ParseLevel(v); err != nil {
			warn("WORKSHEETZ_LOG_LEVEL", v, err)
		} else {
			cfg.LogLevel = lvl
		}
	}
	if v := getenv("WORKSHEETZ_SEED"); v != "" {
		cfg.Seed = v
	}

	return cfg, warnings
}

// ParseLevel accepts debug, info, warn(ing) and error.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewLogger returns a text logger on stderr at the configured level.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}
