package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config covers the demo process configuration read from environment
// variables.
type Config struct {
	Environment string
	LogLevel    string
	// Step is the length of one sample slot in the generated data.
	Step time.Duration
	// Samples is the number of generated readings.
	Samples int
}

// Load reads environment variables, applies defaults, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnvAny([]string{"IVTABLE_ENV", "ENVIRONMENT"}, "development"),
		LogLevel:    getEnvAny([]string{"IVTABLE_LOG_LEVEL"}, ""),
		Step:        time.Duration(getEnvIntAny([]string{"IVTABLE_SAMPLE_STEP_MINUTES"}, 15)) * time.Minute,
		Samples:     getEnvIntAny([]string{"IVTABLE_SAMPLES"}, 8),
	}

	if cfg.Step <= 0 {
		return nil, fmt.Errorf("IVTABLE_SAMPLE_STEP_MINUTES must be positive, got %s", cfg.Step)
	}
	if cfg.Samples < 0 {
		return nil, fmt.Errorf("IVTABLE_SAMPLES cannot be negative, got %d", cfg.Samples)
	}
	return cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c != nil && strings.EqualFold(c.Environment, "development")
}

// getEnvAny returns the first non-empty environment variable value from keys, or def if none set.
func getEnvAny(keys []string, def string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

// getEnvIntAny returns the first set integer environment variable value from keys, or def.
func getEnvIntAny(keys []string, def int) int {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				return parsed
			}
		}
	}
	return def
}
