package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Resolution != 512 {
		t.Errorf("expected resolution 512, got %d", cfg.Resolution)
	}
	if cfg.Steps != 180 {
		t.Errorf("expected 180 steps, got %d", cfg.Steps)
	}
	if cfg.Dt != 0.6 || cfg.Strength != 1.4 {
		t.Errorf("unexpected motion defaults: dt=%f strength=%f", cfg.Dt, cfg.Strength)
	}
	if !cfg.LiveView {
		t.Error("live view should default to enabled")
	}
	if cfg.OutputPath() != filepath.Join("output_frames", "water_flow.gif") {
		t.Errorf("unexpected output path %s", cfg.OutputPath())
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dyeflow.yaml")

	cfg := Default()
	cfg.Resolution = 64
	cfg.GifName = "test.gif"
	cfg.LiveView = false

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Resolution != 64 || loaded.GifName != "test.gif" || loaded.LiveView {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("steps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Steps != 30 {
		t.Errorf("expected steps 30, got %d", cfg.Steps)
	}
	if cfg.Resolution != DefaultResolution {
		t.Errorf("unset option should keep default, got %d", cfg.Resolution)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	warnings := Apply(cfg, []string{
		"--steps=20",
		"--resolution=64",
		"--dt=0.3",
		"--strength=2.0",
		"--fps=24",
		"--output-dir=out",
		"--gif-name=flow.gif",
		"--palette=ember",
		"--seed=7",
		"--no-live-view",
	})

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if cfg.Steps != 20 || cfg.Resolution != 64 || cfg.Dt != 0.3 || cfg.Strength != 2.0 {
		t.Errorf("numeric overrides not applied: %+v", cfg)
	}
	if cfg.Fps != 24 || cfg.OutputDir != "out" || cfg.GifName != "flow.gif" {
		t.Errorf("output overrides not applied: %+v", cfg)
	}
	if cfg.Palette != "ember" || cfg.Seed != 7 || cfg.LiveView {
		t.Errorf("remaining overrides not applied: %+v", cfg)
	}
}

func TestApplyUnknownOption(t *testing.T) {
	cfg := Default()
	warnings := Apply(cfg, []string{"--frobnicate=1"})

	if len(warnings) != 1 || !strings.Contains(warnings[0], "frobnicate") {
		t.Fatalf("expected one warning naming the option, got %v", warnings)
	}
	if *cfg != *Default() {
		t.Error("unknown option must not change the config")
	}
}

func TestApplyMalformedNumber(t *testing.T) {
	cfg := Default()
	warnings := Apply(cfg, []string{"--steps=abc"})

	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if cfg.Steps != DefaultSteps {
		t.Errorf("malformed value must keep the default, got %d", cfg.Steps)
	}
}

func TestApplyMalformedShape(t *testing.T) {
	cfg := Default()
	warnings := Apply(cfg, []string{"steps=5", "--steps"})

	if len(warnings) != 2 {
		t.Fatalf("expected two warnings, got %v", warnings)
	}
	if cfg.Steps != DefaultSteps {
		t.Errorf("malformed arguments must keep the default, got %d", cfg.Steps)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("storm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Strength != 2.4 {
		t.Errorf("expected strength 2.4, got %f", cfg.Strength)
	}

	// Mutating the returned config must not touch the stored preset.
	cfg.Strength = 0
	if Presets["storm"].Strength != 2.4 {
		t.Error("preset lookup must return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}
