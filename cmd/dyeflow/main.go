package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/dyeflow/internal/config"
	"github.com/san-kum/dyeflow/internal/encode"
	"github.com/san-kum/dyeflow/internal/gui"
	"github.com/san-kum/dyeflow/internal/metrics"
	"github.com/san-kum/dyeflow/internal/sim"
	"github.com/san-kum/dyeflow/internal/viz"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dyeflow [--option=value ...]",
		Short: "procedural fluid-dye animation generator",
		Long: `dyeflow advects a colored dye field through a procedurally generated
flow and writes the result as an animated GIF (or APNG), with an optional
live preview window.

Options use tolerant --key=value form: unknown options and malformed
values are reported and ignored. Recognized options: resolution, steps,
dt, strength, fps, seed, palette, output-dir, gif-name, preset, config,
and the --no-live-view flag.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               runRender,
	}

	liveCmd := &cobra.Command{
		Use:                "live [--option=value ...]",
		Short:              "render with a terminal live view",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               runLive,
	}

	framesCmd := &cobra.Command{
		Use:                "frames [--option=value ...]",
		Short:              "write every frame as an individual PNG",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               runFrames,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-8s steps=%d dt=%.2f strength=%.2f palette=%s\n",
					name, p.Steps, p.Dt, p.Strength, p.Palette)
			}
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, framesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig assembles the run configuration: defaults, then an optional
// preset or YAML config file, then tolerant --key=value overrides.
// Configuration warnings go to stderr and never abort the run.
func buildConfig(args []string) (*config.Config, error) {
	cfg := config.Default()
	rest := make([]string, 0, len(args))

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--preset="):
			name := strings.TrimPrefix(arg, "--preset=")
			p := config.GetPreset(name)
			if p == nil {
				return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
			}
			cfg = p
		case strings.HasPrefix(arg, "--config="):
			path := strings.TrimPrefix(arg, "--config=")
			loaded, err := config.Load(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		default:
			rest = append(rest, arg)
		}
	}

	for _, w := range config.Apply(cfg, rest) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return cfg, nil
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

func newSimulator(cfg *config.Config) *sim.Simulator {
	return sim.New(sim.Config{
		Resolution: cfg.Resolution,
		Steps:      cfg.Steps,
		Dt:         cfg.Dt,
		Strength:   cfg.Strength,
		Fps:        cfg.Fps,
		Seed:       cfg.Seed,
		Palette:    cfg.Palette,
	})
}

func printMetrics(s *sim.Simulator) {
	vals := s.MetricValues()
	if len(vals) == 0 {
		return
	}
	fmt.Println("\nmetrics:")
	for name, val := range vals {
		fmt.Printf("  %s: %.4f\n", name, val)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	if wantsHelp(args) {
		return cmd.Help()
	}
	cfg, err := buildConfig(args)
	if err != nil {
		return err
	}

	s := newSimulator(cfg)
	s.AddMetric(metrics.NewPeakSpeed())
	s.AddMetric(metrics.NewDyeDrift(s.Base()))

	n := s.Config().Resolution
	collector := encode.ForPath(cfg.OutputPath(), n)
	sink := sim.FrameSink(collector)

	var win *gui.Window
	if cfg.LiveView {
		win = gui.Open(n, s.Config().Fps, "dyeflow")
		sink = sim.Tee(collector, win)
	}

	fmt.Printf("rendering %d frames at %dx%d...\n", s.Config().Steps, n, n)
	start := time.Now()

	produced, err := s.Run(context.Background(), sink)
	if win != nil {
		win.Close()
	}
	if err != nil {
		return err
	}
	fmt.Printf("simulated %d frames in %v\n", produced, time.Since(start))

	if err := collector.WriteFile(cfg.OutputPath()); err != nil {
		return err
	}
	fmt.Printf("saved animation to %s\n", cfg.OutputPath())
	printMetrics(s)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if wantsHelp(args) {
		return cmd.Help()
	}
	cfg, err := buildConfig(args)
	if err != nil {
		return err
	}

	s := newSimulator(cfg)
	collector := encode.ForPath(cfg.OutputPath(), s.Config().Resolution)

	m := viz.NewModel(s, collector)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}

	if collector.Frames() == 0 {
		fmt.Println("no frames produced; nothing to encode")
		return nil
	}
	if err := collector.WriteFile(cfg.OutputPath()); err != nil {
		return err
	}
	fmt.Printf("saved animation to %s (%d frames)\n", cfg.OutputPath(), collector.Frames())
	return nil
}

func runFrames(cmd *cobra.Command, args []string) error {
	if wantsHelp(args) {
		return cmd.Help()
	}
	cfg, err := buildConfig(args)
	if err != nil {
		return err
	}

	s := newSimulator(cfg)
	dump, err := encode.NewFrameDump(cfg.OutputDir, s.Config().Resolution)
	if err != nil {
		return err
	}

	if _, err := s.Run(context.Background(), dump); err != nil {
		return err
	}
	if dump.Err() != nil {
		return dump.Err()
	}
	fmt.Printf("wrote %d frames to %s\n", dump.Count(), cfg.OutputDir)
	return nil
}
