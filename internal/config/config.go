package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	LevelName string `yaml:"level"`
}

// Level maps the configured log level to a slog.Level, defaulting to info.
func (l LogConfig) Level() slog.Level {
	switch l.LevelName {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error: the app runs on defaults so a
// fresh install needs no setup. Env vars use the prefix LIFTLOG_:
//
//	LIFTLOG_STORAGE_PATH, LIFTLOG_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case os.IsNotExist(err):
		// defaults + env only
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("LIFTLOG_LOG_LEVEL"); v != "" {
		cfg.Log.LevelName = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "liftlog.db"
	}
	if cfg.Log.LevelName == "" {
		cfg.Log.LevelName = "info"
	}
}

func (c *Config) validate() error {
	switch c.Log.LevelName {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}
