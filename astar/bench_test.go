package astar_test

import (
	"testing"

	"github.com/katalvlaran/peakpath/astar"
	"github.com/katalvlaran/peakpath/core"
)

// BenchmarkFindPath_Hills128 runs corner-to-corner searches over a 128×128-quad heightfield.
// The graph is built once; every iteration constructs a fresh engine.
func BenchmarkFindPath_Hills128(b *testing.B) {
	g := hills(b, 128)
	goal := core.NodeIndex(g.Len() - 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, 0, goal)
	}
}

// BenchmarkStep_Hills128 measures the per-call cost of Step with the default heading weight.
func BenchmarkStep_Hills128(b *testing.B) {
	g := hills(b, 128)
	goal := core.NodeIndex(g.Len() - 1)
	e, _ := astar.New(g, 0, goal)
	var state astar.SearchState
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !e.Step(&state) {
			b.StopTimer()
			e, _ = astar.New(g, 0, goal)
			state = astar.SearchState{}
			b.StartTimer()
		}
	}
}
