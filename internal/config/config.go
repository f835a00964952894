package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 700
	DefaultHeight      = 700
	DefaultPulsePeriod = 1.2
	DefaultFPS         = 60
	DefaultGridWidth   = 80
	DefaultGridHeight  = 24
	DefaultBackground  = "#111111"
)

// Config is the full animation configuration. Flags override file values,
// file values override defaults.
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	PulsePeriod float64 `yaml:"pulse_period"`
	FPS         int     `yaml:"fps"`
	Glow        bool    `yaml:"glow"`
	Mute        bool    `yaml:"mute"`
	Background  string  `yaml:"background"`
	Grid        Grid    `yaml:"grid"`
}

// Grid sizes the terminal renderer's character cell grid.
type Grid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func Default() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		PulsePeriod: DefaultPulsePeriod,
		FPS:         DefaultFPS,
		Glow:        true,
		Background:  DefaultBackground,
		Grid:        Grid{Width: DefaultGridWidth, Height: DefaultGridHeight},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations that would divide by zero at frame time.
// Called once at startup so renderers can assume sane values.
func (c *Config) Validate() error {
	if c.PulsePeriod <= 0 {
		return fmt.Errorf("pulse period must be > 0, got %g", c.PulsePeriod)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be > 0, got %d", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	return nil
}

// FrameDelayMS is the windowed renderer's per-frame delay, rounded.
func (c *Config) FrameDelayMS() int { return (1000 + c.FPS/2) / c.FPS }
