package models

import (
	"fmt"

	apierrors "github.com/diogo/gemichat/internal/errors"
)

// SessionConfig holds the per-session generation settings bound to the
// sidebar controls. It never persists across sessions.
type SessionConfig struct {
	APIKey      string
	ModelName   string
	Temperature float64 // [0,1]
}

// DefaultSessionConfig returns the settings a fresh session starts with.
// The API key may be pre-filled from the environment.
func DefaultSessionConfig(apiKey string, modelName string, temperature float64) SessionConfig {
	if !ValidModelName(modelName) {
		modelName = DefaultModel
	}
	if temperature < 0 || temperature > 1 {
		temperature = 0.7
	}
	return SessionConfig{
		APIKey:      apiKey,
		ModelName:   modelName,
		Temperature: temperature,
	}
}

// ConfigUpdate is a partial SessionConfig change; nil fields are untouched.
type ConfigUpdate struct {
	APIKey      *string
	ModelName   *string
	Temperature *float64
}

// Apply validates the update and merges it into the config. On validation
// failure the config is left unchanged and the prior values are retained.
func (c *SessionConfig) Apply(u ConfigUpdate) error {
	next := *c

	if u.APIKey != nil {
		next.APIKey = *u.APIKey
	}
	if u.ModelName != nil {
		if !ValidModelName(*u.ModelName) {
			return apierrors.NewValidationError("model", fmt.Sprintf("unsupported model name %q", *u.ModelName))
		}
		next.ModelName = *u.ModelName
	}
	if u.Temperature != nil {
		if *u.Temperature < 0 || *u.Temperature > 1 {
			return apierrors.NewValidationError("temperature", fmt.Sprintf("temperature %v outside [0,1]", *u.Temperature))
		}
		next.Temperature = *u.Temperature
	}

	*c = next
	return nil
}
