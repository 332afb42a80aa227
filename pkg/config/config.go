package config

import (
	"fmt"
	"os"
)

// The operator is deliberately flag-free. Everything it needs comes from
// the environment.
const (
	logLevelEnv    = "LOG_LEVEL"
	healthAddrEnv  = "HEALTH_ADDR"
	metricsAddrEnv = "METRICS_ADDR"
)

type Config struct {
	// LogLevel filters operator log output. One of debug, info, warn, error.
	LogLevel string

	// HealthAddr is the address of the plain health endpoint.
	HealthAddr string

	// MetricsAddr is the address the Prometheus metrics endpoint binds to.
	MetricsAddr string
}

// New loads the configuration from the environment.
func New() (*Config, error) {
	conf := &Config{
		LogLevel:    envOr(logLevelEnv, "info"),
		HealthAddr:  envOr(healthAddrEnv, ":8080"),
		MetricsAddr: envOr(metricsAddrEnv, ":8081"),
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	if c.HealthAddr == "" {
		return fmt.Errorf("health address must be set")
	}
	if c.MetricsAddr == "" {
		return fmt.Errorf("metrics address must be set")
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
