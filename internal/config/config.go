// Package config holds gobeam's runtime defaults. Values come from an
// optional .env file and the environment; command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvResolution = "GOBEAM_RESOLUTION"
	EnvExact      = "GOBEAM_EXACT"
	EnvOutputDir  = "GOBEAM_OUTPUT_DIR"
	EnvLogLevel   = "GOBEAM_LOG_LEVEL"
)

// Config is the resolved set of defaults
type Config struct {
	Resolution int        // diagram stations per analysis
	Exact      bool       // exact treatment of triangular loads and moments
	OutputDir  string     // directory for exported images, reports and workbooks
	LogLevel   slog.Level // minimum level written to stderr
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		Resolution: 400,
		OutputDir:  ".",
		LogLevel:   slog.LevelWarn,
	}
}

// Load reads the given .env files (".env" when none are given) and then the
// environment. Missing .env files are not an error; malformed values are.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Default()

	if s := os.Getenv(EnvResolution); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 2 {
			return Config{}, fmt.Errorf("invalid %s %q: must be an integer of at least 2", EnvResolution, s)
		}
		cfg.Resolution = n
	}

	if s := os.Getenv(EnvExact); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvExact, s, err)
		}
		cfg.Exact = b
	}

	if s := os.Getenv(EnvOutputDir); s != "" {
		cfg.OutputDir = s
	}

	if s := os.Getenv(EnvLogLevel); s != "" {
		level, err := ParseLevel(s)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// ParseLevel accepts debug, info, warn/warning and error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning":
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// NewLogger builds the stderr text logger used by every command
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
