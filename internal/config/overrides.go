package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Apply folds simple --key=value overrides into cfg. The parsing is
// deliberately forgiving: unknown keys and malformed numeric values produce
// a warning and leave the corresponding option at its previous value, they
// never abort the run. The returned slice holds one warning per ignored
// argument.
func Apply(cfg *Config, args []string) []string {
	var warnings []string

	for _, raw := range args {
		if !strings.HasPrefix(raw, "--") {
			warnings = append(warnings, fmt.Sprintf("ignoring argument %q: use --key=value format or --no-live-view", raw))
			continue
		}

		key := raw[2:]
		if key == "no-live-view" {
			cfg.LiveView = false
			continue
		}

		opt, value, ok := strings.Cut(key, "=")
		if !ok {
			warnings = append(warnings, fmt.Sprintf("ignoring argument --%s: expected --key=value format or --no-live-view", key))
			continue
		}

		if w := applyOption(cfg, opt, value); w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

func applyOption(cfg *Config, opt, value string) string {
	switch opt {
	case "resolution":
		return setInt(opt, value, &cfg.Resolution)
	case "steps":
		return setInt(opt, value, &cfg.Steps)
	case "fps":
		return setInt(opt, value, &cfg.Fps)
	case "dt":
		return setFloat(opt, value, &cfg.Dt)
	case "strength":
		return setFloat(opt, value, &cfg.Strength)
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return parseWarning(opt, value)
		}
		cfg.Seed = v
	case "output-dir":
		cfg.OutputDir = value
	case "gif-name":
		cfg.GifName = value
	case "palette":
		cfg.Palette = value
	default:
		return fmt.Sprintf("unknown option --%s", opt)
	}
	return ""
}

func setInt(opt, value string, dst *int) string {
	v, err := strconv.Atoi(value)
	if err != nil {
		return parseWarning(opt, value)
	}
	*dst = v
	return ""
}

func setFloat(opt, value string, dst *float64) string {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return parseWarning(opt, value)
	}
	*dst = v
	return ""
}

func parseWarning(opt, value string) string {
	return fmt.Sprintf("failed to parse value %q for --%s, keeping default", value, opt)
}
