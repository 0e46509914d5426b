package models

import (
	"testing"

	apierrors "github.com/diogo/gemichat/internal/errors"
)

func TestDefaultSessionConfig(t *testing.T) {
	cfg := DefaultSessionConfig("key", ModelPro, 0.3)
	if cfg.APIKey != "key" || cfg.ModelName != ModelPro || cfg.Temperature != 0.3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestDefaultSessionConfigFallbacks(t *testing.T) {
	cfg := DefaultSessionConfig("", "no-such-model", 3.5)
	if cfg.ModelName != DefaultModel {
		t.Errorf("expected fallback to %s, got %s", DefaultModel, cfg.ModelName)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("expected fallback temperature 0.7, got %v", cfg.Temperature)
	}
}

func TestApplyPartialUpdate(t *testing.T) {
	cfg := DefaultSessionConfig("old-key", ModelFlash, 0.7)

	model := ModelPro
	if err := cfg.Apply(ConfigUpdate{ModelName: &model}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if cfg.ModelName != ModelPro {
		t.Errorf("expected model %s, got %s", ModelPro, cfg.ModelName)
	}
	if cfg.APIKey != "old-key" {
		t.Errorf("untouched field changed: %s", cfg.APIKey)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("untouched field changed: %v", cfg.Temperature)
	}
}

func TestApplyRejectsUnknownModel(t *testing.T) {
	cfg := DefaultSessionConfig("key", ModelFlash, 0.7)

	bad := "gemini-9000-ultra"
	err := cfg.Apply(ConfigUpdate{ModelName: &bad})
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if !apierrors.IsValidationError(err) {
		t.Errorf("expected validation error, got %T", err)
	}
	if cfg.ModelName != ModelFlash {
		t.Errorf("config changed despite failed validation: %s", cfg.ModelName)
	}
}

func TestApplyRejectsOutOfRangeTemperature(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		ok   bool
	}{
		{"zero", 0, true},
		{"one", 1, true},
		{"mid", 0.5, true},
		{"negative", -0.1, false},
		{"above one", 1.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSessionConfig("key", ModelFlash, 0.7)
			err := cfg.Apply(ConfigUpdate{Temperature: &tt.temp})
			if tt.ok && err != nil {
				t.Errorf("Apply(%v) failed: %v", tt.temp, err)
			}
			if !tt.ok {
				if err == nil {
					t.Errorf("Apply(%v) should fail", tt.temp)
				}
				if cfg.Temperature != 0.7 {
					t.Errorf("temperature changed despite failed validation: %v", cfg.Temperature)
				}
			}
		})
	}
}

func TestApplyAtomicOnFailure(t *testing.T) {
	cfg := DefaultSessionConfig("old-key", ModelFlash, 0.7)

	key := "new-key"
	temp := 2.0
	err := cfg.Apply(ConfigUpdate{APIKey: &key, Temperature: &temp})
	if err == nil {
		t.Fatal("expected error")
	}
	if cfg.APIKey != "old-key" {
		t.Errorf("valid field applied despite failed update: %s", cfg.APIKey)
	}
}

func TestValidModelName(t *testing.T) {
	for _, name := range AllModels() {
		if !ValidModelName(name) {
			t.Errorf("ValidModelName(%q) = false", name)
		}
	}
	if ValidModelName("") || ValidModelName("gpt-4") {
		t.Error("ValidModelName accepted an unknown name")
	}
}
