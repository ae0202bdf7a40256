// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting. Command-line flags override the
// environment after Load.
type Config struct {
	MapWidth  int    `env:"DUNGEON_MAP_WIDTH" envDefault:"80"`
	MapHeight int    `env:"DUNGEON_MAP_HEIGHT" envDefault:"43"`
	ViewRange int    `env:"DUNGEON_VIEW_RANGE" envDefault:"8"`
	SavePath  string `env:"DUNGEON_SAVE_PATH"`
	LogFile   string `env:"DUNGEON_LOG_FILE"`
	LogLevel  string `env:"DUNGEON_LOG_LEVEL" envDefault:"info"`
	SSHAddr   string `env:"DUNGEON_SSH_ADDR" envDefault:":2222"`
	HostKey   string `env:"DUNGEON_HOST_KEY" envDefault:"host_key"`
}

// Load parses the environment and fills in the default save path.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SavePath == "" {
		dir, err := DataDir()
		if err != nil {
			return Config{}, fmt.Errorf("default save path: %w", err)
		}
		cfg.SavePath = filepath.Join(dir, "saves.db")
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.MapWidth < 20 || c.MapHeight < 20 {
		return fmt.Errorf("map must be at least 20x20, got %dx%d", c.MapWidth, c.MapHeight)
	}
	if c.ViewRange < 1 {
		return fmt.Errorf("view range must be positive, got %d", c.ViewRange)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// DataDir returns the directory for saved games.
// Follows the XDG Base Directory spec: $XDG_DATA_HOME/dungeon-kernel,
// defaulting to ~/.local/share/dungeon-kernel.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeon-kernel"), nil
}

// NewLogger builds the diagnostic logger. The terminal owns stdout, so
// output goes to LogFile, or nowhere when it is empty. The returned closer
// releases the file.
func NewLogger(c Config) (*slog.Logger, io.Closer, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, nil, err
	}
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
