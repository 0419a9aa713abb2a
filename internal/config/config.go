package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Registry struct {
		Path string `yaml:"path"`
	} `yaml:"registry"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
	Watch struct {
		Cron     string `yaml:"cron"`
		Scenario string `yaml:"scenario"`
	} `yaml:"watch"`
	Metrics struct {
		File string `yaml:"file"`
	} `yaml:"metrics"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// loadDotenv loads path into the environment. A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// CronParser accepts the same specs as the watch scheduler: an optional
// leading seconds field and @-descriptors.
var CronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Load reads config from a YAML file, then applies .env and environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := loadDotenv(".env"); err != nil {
		log.Warn().Err(err).Str("file", ".env").Msg("ignoring unreadable .env")
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("POINTDRIFT_REGISTRY"); v != "" {
		cfg.Registry.Path = v
	}
	if v := os.Getenv("POINTDRIFT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("POINTDRIFT_WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("POINTDRIFT_SCENARIO"); v != "" {
		cfg.Watch.Scenario = v
	}
	if v := os.Getenv("POINTDRIFT_METRICS_FILE"); v != "" {
		cfg.Metrics.File = v
	}
	if v := os.Getenv("POINTDRIFT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "@every 2s"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that every set field holds a usable value.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := CronParser.Parse(c.Watch.Cron); err != nil {
		return fmt.Errorf("watch.cron: %w", err)
	}
	return nil
}
