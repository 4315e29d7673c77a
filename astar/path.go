package astar

import (
	"math"

	"github.com/katalvlaran/peakpath/core"
)

// ReconstructPath follows prev from target back to the first node without a
// predecessor and returns the chain in forward order.
//
// For a target that was never reached the result is [target], which callers
// treat as "no drawable path" (fewer than two nodes). Out-of-range targets yield nil.
// prev must be acyclic; Engine guarantees that.
func ReconstructPath(prev []core.NodeIndex, target core.NodeIndex) []core.NodeIndex {
	if target < 0 || int(target) >= len(prev) {
		return nil
	}

	var path []core.NodeIndex
	for v := target; v != core.NoNode; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// CurrentBestPath returns the best path known so far from start to target.
//
// It can be called at any time, e.g. every tick toward the most recently visited
// node to draw the provisional route before the goal is found. It does not mutate
// the engine, so two calls without an intervening Step return equal slices.
// A result shorter than two nodes means no drawable path yet.
func (e *Engine) CurrentBestPath(target core.NodeIndex) []core.NodeIndex {
	return ReconstructPath(e.prev, target)
}

// PathCost sums the cheapest edge cost along consecutive path nodes.
// Returns +Inf if two consecutive nodes are not adjacent; an empty or single-node path costs 0.
func PathCost(g *core.Graph, path []core.NodeIndex) float32 {
	var total float32
	for i := 0; i+1 < len(path); i++ {
		c, ok := g.EdgeCost(path[i], path[i+1])
		if !ok {
			return float32(math.Inf(1))
		}
		total += c
	}

	return total
}
