package config

import (
	"time"

	"github.com/katalvlaran/peakpath/astar"
	"github.com/katalvlaran/peakpath/cost"
	"github.com/katalvlaran/peakpath/terrain"
	"github.com/katalvlaran/peakpath/visual"
)

// Default returns the configuration used when a key is absent from the file.
func Default() Config {
	t := terrain.DefaultOptions()

	return Config{
		Terrain: TerrainConf{
			N:            t.N,
			Seed:         t.Seed,
			Scale:        t.Scale,
			Amplitude:    t.Amplitude,
			Exponent:     t.Exponent,
			Radius:       t.Radius,
			ValleyShrink: t.ValleyShrink,
			Alpha:        t.Alpha,
			Beta:         t.Beta,
			Octaves:      t.Octaves,
		},
		Cost: CostConf{SteepnessFactor: cost.DefaultSteepnessFactor},
		Search: SearchConf{
			Start:         PointConf{X: -0.9, Z: -0.9},
			Goal:          PointConf{X: 0.9, Z: 0.9},
			StepInterval:  20 * time.Millisecond,
			HeadingWeight: astar.DefaultHeadingWeight,
		},
		Visual: VisualConf{
			EasyMax:     visual.DefaultEasyMax,
			ModerateMax: visual.DefaultModerateMax,
			LineLift:    visual.DefaultLineLift,
			PointLift:   visual.DefaultPointLift,
		},
		Metrics: MetricsConf{Enabled: true, Addr: ":9090"},
		Log:     LogConf{Level: "info"},
	}
}
