package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

const (
	IDsSequence = "sequence"
	IDsUUID     = "uuid"
)

type Config struct {
	Port       string `yaml:"port"`
	LogLevel   string `yaml:"log_level"`
	IDStrategy string `yaml:"ids"`
	QueueSize  int    `yaml:"queue_size"`
}

func Load() Config {
	return Config{
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		IDStrategy: getEnv("TODO_IDS", IDsSequence),
		QueueSize:  64,
	}
}

// LoadFile starts from Load and overlays the non-empty fields of a YAML file.
func LoadFile(path string) (Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.IDStrategy {
	case IDsSequence, IDsUUID:
	default:
		return fmt.Errorf("%w: unknown id strategy %q", ErrInvalid, c.IDStrategy)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Port == "" {
		return fmt.Errorf("%w: empty port", ErrInvalid)
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("%w: negative queue size", ErrInvalid)
	}
	return nil
}

func (c *Config) merge(o Config) {
	if o.Port != "" {
		c.Port = o.Port
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.IDStrategy != "" {
		c.IDStrategy = o.IDStrategy
	}
	if o.QueueSize != 0 {
		c.QueueSize = o.QueueSize
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
