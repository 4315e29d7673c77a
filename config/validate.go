package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks ranges and cross-field constraints. All problems are
// reported together.
func Validate(cfg *Config) error {
	var errs []string
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if err := cfg.Terrain.Options().Validate(); err != nil {
		add("terrain: %v", err)
	}
	if cfg.Cost.SteepnessFactor < 0 || isNaN(cfg.Cost.SteepnessFactor) {
		add("cost.steepness_factor must be >= 0, got %g", cfg.Cost.SteepnessFactor)
	}

	s := cfg.Search
	if s.HeadingWeight < 0 || isNaN(s.HeadingWeight) {
		add("search.heading_weight must be >= 0, got %g", s.HeadingWeight)
	}
	if s.StepInterval <= 0 {
		add("search.step_interval must be positive, got %s", s.StepInterval)
	}
	if s.MaxSteps < 0 {
		add("search.max_steps must be >= 0, got %d", s.MaxSteps)
	}

	v := cfg.Visual
	if v.EasyMax < 0 || v.ModerateMax < v.EasyMax {
		add("visual: need 0 <= easy_max <= moderate_max, got %g/%g", v.EasyMax, v.ModerateMax)
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		add("metrics.addr is required when metrics are enabled")
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		add("log.level %q: %v", cfg.Log.Level, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}

func isNaN(f float32) bool { return math.IsNaN(float64(f)) }
