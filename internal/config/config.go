// Package config handles process-level configuration for gemichat.
// Everything comes from the environment; per-session settings live in the
// session store, not here.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration.
type Config struct {
	// Addr is the listen address of the web UI.
	Addr string `env:"GEMICHAT_ADDR" envDefault:":8080"`

	// APIKey pre-fills new sessions. The sidebar value, when set, wins for
	// that session.
	APIKey string `env:"GEMINI_API_KEY"`

	// DefaultModel is the model new sessions start with.
	DefaultModel string `env:"GEMICHAT_MODEL" envDefault:"gemini-2.5-flash"`

	// DefaultTemperature is the temperature new sessions start with, in [0,1].
	DefaultTemperature float64 `env:"GEMICHAT_TEMPERATURE" envDefault:"0.7"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"GEMICHAT_LOG_LEVEL" envDefault:"info"`

	// SessionTTL evicts sessions idle for longer than this.
	SessionTTL time.Duration `env:"GEMICHAT_SESSION_TTL" envDefault:"2h"`

	// MaxUploadBytes bounds multipart uploads accepted by the web layer.
	// The 4MB default matches the service's documented soft ceiling.
	MaxUploadBytes int64 `env:"GEMICHAT_MAX_UPLOAD" envDefault:"4194304"`

	// RequestTimeout bounds a single gateway call.
	RequestTimeout time.Duration `env:"GEMICHAT_REQUEST_TIMEOUT" envDefault:"120s"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
