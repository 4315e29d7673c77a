package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peakpath/core"
	"github.com/katalvlaran/peakpath/mesh"
)

// square returns a flat 2×2 grid split along the 1-2 diagonal, so the opposite
// corners 0 and 3 are two edges apart:
//
//	0───1
//	│ ╱ │
//	2───3
func square(t testing.TB) *core.Graph {
	t.Helper()
	vertices := []mesh.Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
	}
	g, err := core.BuildGraph(vertices, []uint32{0, 2, 1, 1, 2, 3})
	require.NoError(t, err)

	return g
}

// hills returns an n×n-quad heightfield with a couple of ridges.
func hills(t testing.TB, n int) *core.Graph {
	t.Helper()
	m, err := mesh.Grid(n, 1, func(x, z float32) float32 {
		return float32(math.Sin(float64(3*x))*math.Cos(float64(2*z))) + 0.5*x*z
	})
	require.NoError(t, err)
	g, err := core.BuildFromMesh(m)
	require.NoError(t, err)

	return g
}

// withIsland returns g's mesh plus one extra vertex that no triangle references.
func withIsland(t testing.TB, n int) (*core.Graph, core.NodeIndex) {
	t.Helper()
	m, err := mesh.Grid(n, 1, nil)
	require.NoError(t, err)
	vertices := append(append([]mesh.Vertex(nil), m.Vertices...), mesh.Vertex{X: 5, Y: 0, Z: 5})
	g, err := core.BuildGraph(vertices, m.Indices)
	require.NoError(t, err)

	return g, core.NodeIndex(len(vertices) - 1)
}

// dedup copies g keeping only the first record per (from, to) pair.
func dedup(g *core.Graph) *core.Graph {
	out := &core.Graph{Nodes: make([]core.Node, len(g.Nodes))}
	for i, n := range g.Nodes {
		out.Nodes[i].Position = n.Position
		seen := make(map[core.NodeIndex]bool)
		for _, e := range n.Neighbors {
			if seen[e.To] {
				continue
			}
			seen[e.To] = true
			out.Nodes[i].Neighbors = append(out.Nodes[i].Neighbors, e)
		}
	}

	return out
}

// requireValidPath checks endpoints and adjacency of consecutive nodes.
func requireValidPath(t *testing.T, g *core.Graph, path []core.NodeIndex, start, goal core.NodeIndex) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	for i := 0; i+1 < len(path); i++ {
		require.True(t, g.HasEdge(path[i], path[i+1]), "no edge %d→%d", path[i], path[i+1])
	}
}
