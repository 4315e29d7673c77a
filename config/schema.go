// Package config loads the peakpath YAML configuration, applies defaults,
// validates it and hot-reloads it when the file changes.
//
// Every tuning constant of the core packages lives here; the core packages
// themselves only accept injected values through their options.
package config

import "time"

// Config is the top-level YAML structure.
type Config struct {
	Terrain TerrainConf `yaml:"terrain"`
	Cost    CostConf    `yaml:"cost"`
	Search  SearchConf  `yaml:"search"`
	Visual  VisualConf  `yaml:"visual"`
	Metrics MetricsConf `yaml:"metrics"`
	Log     LogConf     `yaml:"log"`
}

// TerrainConf shapes the generated heightfield.
type TerrainConf struct {
	N            int     `yaml:"n"`
	Seed         int64   `yaml:"seed"`
	Scale        float64 `yaml:"scale"`
	Amplitude    float64 `yaml:"amplitude"`
	Exponent     float64 `yaml:"exponent"`
	Radius       float64 `yaml:"radius"`
	ValleyShrink float64 `yaml:"valley_shrink"`
	Alpha        float64 `yaml:"alpha"`
	Beta         float64 `yaml:"beta"`
	Octaves      int32   `yaml:"octaves"`
}

// CostConf holds the edge cost model.
type CostConf struct {
	SteepnessFactor float32 `yaml:"steepness_factor"`
}

// PointConf is a planar (x, z) world position.
type PointConf struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// SearchConf drives the stepping search.
type SearchConf struct {
	Start         PointConf     `yaml:"start"`
	Goal          PointConf     `yaml:"goal"`
	StepInterval  time.Duration `yaml:"step_interval"`
	MaxSteps      int           `yaml:"max_steps"` // 0 = until terminal
	HeadingWeight float32       `yaml:"heading_weight"`
}

// VisualConf holds slope thresholds and marker lifts.
type VisualConf struct {
	EasyMax     float32 `yaml:"easy_max"`
	ModerateMax float32 `yaml:"moderate_max"`
	LineLift    float32 `yaml:"line_lift"`
	PointLift   float32 `yaml:"point_lift"`
}

// MetricsConf configures the Prometheus endpoint.
type MetricsConf struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LogConf configures the command's logger.
type LogConf struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
