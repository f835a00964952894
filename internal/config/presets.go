package config

import "sort"

// Presets are named moods: each one adjusts the heartbeat tempo and frame
// budget over the defaults.
var Presets = map[string]*Config{
	"calm": {
		Width: DefaultWidth, Height: DefaultHeight, PulsePeriod: 2.0, FPS: 30,
		Glow: true, Background: DefaultBackground,
		Grid: Grid{Width: DefaultGridWidth, Height: DefaultGridHeight},
	},
	"steady": {
		Width: DefaultWidth, Height: DefaultHeight, PulsePeriod: DefaultPulsePeriod, FPS: DefaultFPS,
		Glow: true, Background: DefaultBackground,
		Grid: Grid{Width: DefaultGridWidth, Height: DefaultGridHeight},
	},
	"racing": {
		Width: DefaultWidth, Height: DefaultHeight, PulsePeriod: 0.6, FPS: 90,
		Glow: true, Background: DefaultBackground,
		Grid: Grid{Width: DefaultGridWidth, Height: DefaultGridHeight},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
