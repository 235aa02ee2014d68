package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WRAPPED_INPUT_PATH", "")
	t.Setenv("WRAPPED_SUMMARY_PATH", "")
	t.Setenv("WRAPPED_HTML_PATH", "")
	t.Setenv("WRAPPED_TOP_MODELS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.InputPath != defaultInputPath {
		t.Errorf("InputPath = %q, want %q", cfg.InputPath, defaultInputPath)
	}
	if cfg.SummaryPath != defaultSummaryPath {
		t.Errorf("SummaryPath = %q, want %q", cfg.SummaryPath, defaultSummaryPath)
	}
	if cfg.HTMLPath != "" {
		t.Errorf("HTMLPath = %q, want empty", cfg.HTMLPath)
	}
	if cfg.TopModels != defaultTopModels {
		t.Errorf("TopModels = %d, want %d", cfg.TopModels, defaultTopModels)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WRAPPED_INPUT_PATH", "/data/events.csv")
	t.Setenv("WRAPPED_SUMMARY_PATH", "/data/out.json")
	t.Setenv("WRAPPED_HTML_PATH", "/data/wrapped.html")
	t.Setenv("WRAPPED_TOP_MODELS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.InputPath != "/data/events.csv" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.SummaryPath != "/data/out.json" {
		t.Errorf("SummaryPath = %q", cfg.SummaryPath)
	}
	if cfg.HTMLPath != "/data/wrapped.html" {
		t.Errorf("HTMLPath = %q", cfg.HTMLPath)
	}
	if cfg.TopModels != 10 {
		t.Errorf("TopModels = %d, want 10", cfg.TopModels)
	}
}

func TestLoadRejectsBadTopModels(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"non-numeric", "lots"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WRAPPED_TOP_MODELS", tt.value)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.TopModels != defaultTopModels {
				t.Errorf("TopModels = %d, want default %d", cfg.TopModels, defaultTopModels)
			}
		})
	}
}
