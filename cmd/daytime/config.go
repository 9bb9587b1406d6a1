package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config holds runtime configuration for the daytime CLI.
type Config struct {
	Prompt      string
	HistorySize int
	HistoryN    int
	LogLevel    string
}

func defaultConfig() Config {
	return Config{
		Prompt:      "daytime> ",
		HistorySize: 100,
		HistoryN:    10,
		LogLevel:    "info",
	}
}

// fileConfig is the config.toml key mapping.
type fileConfig struct {
	Prompt      string `toml:"prompt"`
	HistorySize int    `toml:"history_size"`
	HistoryN    int    `toml:"history_show"`
	LogLevel    string `toml:"log_level"`
}

// loadConfig overlays config.toml values onto the defaults, then applies
// DAYTIME_* environment overrides. An empty path falls back to the
// DAYTIME_CONFIG environment variable; when neither is set, only the
// defaults and environment apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv("DAYTIME_CONFIG")
	}
	if path == "" {
		return validate(applyEnv(cfg))
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("prompt") {
		cfg.Prompt = raw.Prompt
	}
	if meta.IsDefined("history_size") {
		cfg.HistorySize = raw.HistorySize
	}
	if meta.IsDefined("history_show") {
		cfg.HistoryN = raw.HistoryN
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return validate(applyEnv(cfg))
}

// applyEnv overrides config values from the environment. Environment
// variables take precedence over the config file.
func applyEnv(cfg Config) Config {
	cfg.Prompt = getEnvString("DAYTIME_PROMPT", cfg.Prompt)
	cfg.HistorySize = getEnvInt("DAYTIME_HISTORY_SIZE", cfg.HistorySize)
	cfg.HistoryN = getEnvInt("DAYTIME_HISTORY_SHOW", cfg.HistoryN)
	cfg.LogLevel = getEnvString("DAYTIME_LOG_LEVEL", cfg.LogLevel)
	return cfg
}

func validate(cfg Config) (Config, error) {
	if cfg.HistorySize <= 0 {
		return Config{}, fmt.Errorf("load config: history_size must be positive, got %d", cfg.HistorySize)
	}
	if cfg.HistoryN <= 0 {
		return Config{}, fmt.Errorf("load config: history_show must be positive, got %d", cfg.HistoryN)
	}

	return cfg, nil
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvString(key string, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// newLogger builds the console logger at the configured level.
func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log level %q: %w", level, err)
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}
