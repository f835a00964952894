package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.PulsePeriod != DefaultPulsePeriod {
		t.Errorf("expected pulse period %g, got %g", DefaultPulsePeriod, cfg.PulsePeriod)
	}
	if !cfg.Glow {
		t.Error("glow should default on")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero pulse", func(c *Config) { c.PulsePeriod = 0 }},
		{"negative pulse", func(c *Config) { c.PulsePeriod = -1.2 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative fps", func(c *Config) { c.FPS = -30 }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero grid height", func(c *Config) { c.Grid.Height = 0 }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.yaml")

	cfg := Default()
	cfg.PulsePeriod = 0.8
	cfg.FPS = 30
	cfg.Grid.Width = 60

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.PulsePeriod != 0.8 {
		t.Errorf("expected pulse period 0.8, got %g", loaded.PulsePeriod)
	}
	if loaded.FPS != 30 {
		t.Errorf("expected fps 30, got %d", loaded.FPS)
	}
	if loaded.Grid.Width != 60 {
		t.Errorf("expected grid width 60, got %d", loaded.Grid.Width)
	}
	// Untouched fields come from defaults.
	if loaded.Height != DefaultHeight {
		t.Errorf("expected default height, got %d", loaded.Height)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("calm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.PulsePeriod != 2.0 {
		t.Errorf("expected pulse period 2.0, got %g", cfg.PulsePeriod)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestFrameDelayMS(t *testing.T) {
	tests := []struct {
		fps  int
		want int
	}{
		{60, 17},
		{30, 33},
		{100, 10},
		{1, 1000},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.FPS = tt.fps
		if got := cfg.FrameDelayMS(); got != tt.want {
			t.Errorf("fps %d: expected delay %d, got %d", tt.fps, tt.want, got)
		}
	}
}
