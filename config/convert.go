package config

import (
	"log/slog"

	"github.com/katalvlaran/peakpath/astar"
	"github.com/katalvlaran/peakpath/cost"
	"github.com/katalvlaran/peakpath/terrain"
	"github.com/katalvlaran/peakpath/visual"
)

// Options converts the section to terrain generator options.
func (c TerrainConf) Options() terrain.Options {
	return terrain.Options{
		N:            c.N,
		Seed:         c.Seed,
		Scale:        c.Scale,
		Amplitude:    c.Amplitude,
		Exponent:     c.Exponent,
		Radius:       c.Radius,
		ValleyShrink: c.ValleyShrink,
		Alpha:        c.Alpha,
		Beta:         c.Beta,
		Octaves:      c.Octaves,
	}
}

// Model returns the configured cost model.
func (c CostConf) Model() (cost.Model, error) {
	return cost.NewModel(c.SteepnessFactor)
}

// Options returns the engine options of the section. It panics on a negative
// heading weight, so call it on validated configs only.
func (c SearchConf) Options() []astar.Option {
	return []astar.Option{astar.WithHeadingWeight(c.HeadingWeight)}
}

// Palette returns the default palette with the configured thresholds and lifts.
func (c VisualConf) Palette() visual.Palette {
	p := visual.DefaultPalette()
	p.EasyMax = c.EasyMax
	p.ModerateMax = c.ModerateMax
	p.LineLift = c.LineLift
	p.PointLift = c.PointLift

	return p
}

// SlogLevel parses the level, falling back to info on unknown names.
func (c LogConf) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
