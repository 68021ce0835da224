// Package config loads service configuration from an optional TOML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Service holds process identity and listen addresses.
type Service struct {
	Principal   string `toml:"principal"`
	HTTPPort    string `toml:"http_port"`
	MetricsPort string `toml:"metrics_port"`
}

// Kafka holds event publishing configuration.
type Kafka struct {
	Enabled         bool     `toml:"enabled"`
	Brokers         []string `toml:"brokers"`
	TopicNormalized string   `toml:"topic_normalized"`
	TopicRejected   string   `toml:"topic_rejected"`
}

// Observability holds logging configuration.
type Observability struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"` // json, console
}

// Config is the root service configuration.
type Config struct {
	Service       Service       `toml:"service"`
	Kafka         Kafka         `toml:"kafka"`
	Observability Observability `toml:"observability"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Service: Service{
			Principal:   "svc-transcript-normalizer",
			HTTPPort:    "8080",
			MetricsPort: "9090",
		},
		Kafka: Kafka{
			Enabled:         false,
			Brokers:         nil,
			TopicNormalized: "transcripts.normalized",
			TopicRejected:   "transcripts.rejected",
		},
		Observability: Observability{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Load builds the configuration: defaults, then the TOML file at path
// (if given), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFromEnv builds the configuration from defaults and environment
// only, using CONFIG_FILE as the optional file path.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

func (c *Config) applyEnv() {
	c.Service.Principal = envOrDefault("SERVICE_PRINCIPAL", c.Service.Principal)
	c.Service.HTTPPort = envOrDefault("HTTP_PORT", c.Service.HTTPPort)
	c.Service.MetricsPort = envOrDefault("METRICS_PORT", c.Service.MetricsPort)

	c.Kafka.Enabled = boolOrDefault("KAFKA_ENABLED", c.Kafka.Enabled)
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers := make([]string, 0)
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
		c.Kafka.Brokers = brokers
	}
	c.Kafka.TopicNormalized = envOrDefault("KAFKA_TOPIC_NORMALIZED", c.Kafka.TopicNormalized)
	c.Kafka.TopicRejected = envOrDefault("KAFKA_TOPIC_REJECTED", c.Kafka.TopicRejected)

	c.Observability.LogLevel = envOrDefault("LOG_LEVEL", c.Observability.LogLevel)
	c.Observability.LogFormat = envOrDefault("LOG_FORMAT", c.Observability.LogFormat)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolOrDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
