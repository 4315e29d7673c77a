package main

import (
	"fmt"

	"github.com/katalvlaran/peakpath/config"
	"github.com/katalvlaran/peakpath/core"
	"github.com/katalvlaran/peakpath/spatial"
	"github.com/katalvlaran/peakpath/terrain"
	"github.com/katalvlaran/peakpath/visual"
)

// scene is the immutable input of one search run.
type scene struct {
	graph       *core.Graph
	index       *spatial.Index
	start, goal core.NodeIndex
	maxHeight   float32
	palette     visual.Palette
	clamped     bool // start or goal lay outside the terrain and were snapped
	reachable   bool
}

// buildScene generates the terrain, builds the graph and resolves the
// configured start/goal positions to their nearest nodes.
func buildScene(cfg *config.Config) (*scene, error) {
	m, maxH, err := terrain.Generate(cfg.Terrain.Options())
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	model, err := cfg.Cost.Model()
	if err != nil {
		return nil, fmt.Errorf("cost: %w", err)
	}
	g, err := core.BuildFromMesh(m, core.WithCostModel(model))
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	ix, err := spatial.NewIndex(g)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	s, g0 := cfg.Search.Start, cfg.Search.Goal
	start, _ := ix.Nearest(s.X, s.Z)
	goal, _ := ix.Nearest(g0.X, g0.Z)

	return &scene{
		graph:     g,
		index:     ix,
		start:     start,
		goal:      goal,
		maxHeight: maxH,
		palette:   cfg.Visual.Palette(),
		clamped:   !ix.InBounds(s.X, s.Z) || !ix.InBounds(g0.X, g0.Z),
		reachable: g.Connected(start, goal),
	}, nil
}
