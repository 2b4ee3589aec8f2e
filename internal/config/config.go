package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields barnview needs to reach and poll the
// controller.
type Config struct {
	Host        string        // controller host:port
	PollEvery   time.Duration // refresh interval, also the freshness window
	SettleDelay time.Duration // pause after a command before the forced re-poll
	LogDir      string
	LogLevel    string
}

const (
	defaultConfigPath  = "~/.config/barnview/config.toml"
	defaultLogDir      = "~/.local/state/barnview"
	defaultHost        = "127.0.0.1:5050"
	defaultPollSeconds = 3
	defaultSettleMS    = 750
	defaultLogLevel    = "info"
)

// Load locates and parses the barnview config, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Host        string `toml:"host"`
		PollSeconds int    `toml:"poll_seconds"`
		SettleMS    int    `toml:"settle_ms"`
		LogDir      string `toml:"log_dir"`
		LogLevel    string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if host := strings.TrimSpace(raw.Host); host != "" {
		cfg.Host = host
	}
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.SettleMS > 0 {
		cfg.SettleDelay = time.Duration(raw.SettleMS) * time.Millisecond
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = dir
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return cfg, nil
}

// LogPath returns the path to the barnview diagnostic log file.
func (c Config) LogPath() string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "barnview.log")
}

func defaults() Config {
	return Config{
		Host:        defaultHost,
		PollEvery:   defaultPollSeconds * time.Second,
		SettleDelay: defaultSettleMS * time.Millisecond,
		LogDir:      mustExpand(defaultLogDir),
		LogLevel:    defaultLogLevel,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
