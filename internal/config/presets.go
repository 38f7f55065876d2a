package config

import (
	"slices"
	"sort"

	"github.com/san-kum/cubelife/internal/lifetime"
)

// Presets adjust the defaults for common views of the same model.
var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	// every labelled challenge level gets a marker
	"full": func(c *Config) {
		c.Samples.Challenges = slices.Clone(c.Axes.XTicks)
	},
	"coarse": func(c *Config) {
		c.Samples.Points = 100
		c.Axes.EpochIncrement = 160
	},
	"dense": func(c *Config) {
		c.Samples.Points = 2000
		c.Axes.EpochIncrement = 48
	},
	// secondary axis in weeks; one tick per week
	"weekly": func(c *Config) {
		c.Axes.EpochsPerDay = lifetime.DefaultEpochsPerDay * 7
		c.Axes.EpochIncrement = lifetime.DefaultEpochsPerDay * 7
		c.Labels.Secondary = "Cube Lifetime (Weeks)"
		c.Labels.SecondaryUnit = "Weeks"
		c.Labels.SecondarySuffix = "w"
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
