package config

import "sort"

// Presets are canned configurations for common renders. CLI overrides still
// win over preset values.
var Presets = map[string]*Config{
	"calm": {
		Resolution: 512, Steps: 240, Dt: 0.35, Strength: 0.8,
		OutputDir: DefaultOutputDir, GifName: "calm_water.gif",
		Fps: 30, LiveView: true, Seed: DefaultSeed, Palette: "water",
	},
	"storm": {
		Resolution: 512, Steps: 180, Dt: 0.8, Strength: 2.4,
		OutputDir: DefaultOutputDir, GifName: "storm.gif",
		Fps: 60, LiveView: true, Seed: DefaultSeed, Palette: "water",
	},
	"ember": {
		Resolution: 512, Steps: 180, Dt: 0.6, Strength: 1.4,
		OutputDir: DefaultOutputDir, GifName: "ember.gif",
		Fps: 60, LiveView: true, Seed: DefaultSeed, Palette: "ember",
	},
	"quick": {
		Resolution: 128, Steps: 60, Dt: 0.6, Strength: 1.4,
		OutputDir: DefaultOutputDir, GifName: "quick.gif",
		Fps: 30, LiveView: false, Seed: DefaultSeed, Palette: "water",
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
