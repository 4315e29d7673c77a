package core

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/peakpath/cost"
	"github.com/katalvlaran/peakpath/mesh"
)

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// Contains reports whether n is a valid node index.
func (g *Graph) Contains(n NodeIndex) bool {
	return n >= 0 && int(n) < len(g.Nodes)
}

// Position returns the position of node n. Panics if n is out of range.
func (g *Graph) Position(n NodeIndex) mesh.Vertex {
	return g.Nodes[n].Position
}

// Neighbors returns the outgoing edges of node n, duplicates included.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(n NodeIndex) []Edge {
	return g.Nodes[n].Neighbors
}

// EdgeCount returns the total number of directed edge records.
// For a graph from BuildGraph this is always 6 × triangle count.
func (g *Graph) EdgeCount() int {
	total := 0
	for i := range g.Nodes {
		total += len(g.Nodes[i].Neighbors)
	}

	return total
}

// HasEdge reports whether a record a→b exists.
func (g *Graph) HasEdge(a, b NodeIndex) bool {
	_, ok := g.EdgeCost(a, b)

	return ok
}

// EdgeCost returns the cheapest a→b record's cost and whether any exists.
// Complexity: O(deg(a)).
func (g *Graph) EdgeCost(a, b NodeIndex) (float32, bool) {
	if !g.Contains(a) || !g.Contains(b) {
		return 0, false
	}
	best := float32(math.Inf(1))
	found := false
	for _, e := range g.Nodes[a].Neighbors {
		if e.To == b && e.Cost < best {
			best = e.Cost
			found = true
		}
	}

	return best, found
}

// Bounds returns the planar (X, Z) bounding box of all node positions.
// An empty graph yields the zero orb.Bound.
func (g *Graph) Bounds() orb.Bound {
	if len(g.Nodes) == 0 {
		return orb.Bound{}
	}
	p := cost.Planar(g.Nodes[0].Position)
	b := orb.Bound{Min: p, Max: p}
	for i := 1; i < len(g.Nodes); i++ {
		b = b.Extend(cost.Planar(g.Nodes[i].Position))
	}

	return b
}
