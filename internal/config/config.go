package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultResolution = 512
	DefaultSteps      = 180
	DefaultDt         = 0.6
	DefaultStrength   = 1.4
	DefaultFps        = 60
	DefaultOutputDir  = "output_frames"
	DefaultGifName    = "water_flow.gif"
	DefaultSeed       = 42
	DefaultPalette    = "water"
)

type Config struct {
	Resolution int     `yaml:"resolution"`
	Steps      int     `yaml:"steps"`
	Dt         float64 `yaml:"dt"`
	Strength   float64 `yaml:"strength"`
	OutputDir  string  `yaml:"output_dir"`
	GifName    string  `yaml:"gif_name"`
	Fps        int     `yaml:"fps"`
	LiveView   bool    `yaml:"live_view"`
	Seed       int64   `yaml:"seed"`
	Palette    string  `yaml:"palette"`
}

func Default() *Config {
	return &Config{
		Resolution: DefaultResolution,
		Steps:      DefaultSteps,
		Dt:         DefaultDt,
		Strength:   DefaultStrength,
		OutputDir:  DefaultOutputDir,
		GifName:    DefaultGifName,
		Fps:        DefaultFps,
		LiveView:   true,
		Seed:       DefaultSeed,
		Palette:    DefaultPalette,
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

// OutputPath is where the animation artifact lands.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.GifName)
}
