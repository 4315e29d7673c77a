// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: BuildGraph, the mesh → weighted adjacency conversion.
// Determinism:
//   - Neighbor order follows triangle order, then edge order a-b, b-c, c-a.

package core

import (
	"fmt"

	"github.com/katalvlaran/peakpath/mesh"
)

// BuildGraph converts a triangle list into a weighted adjacency graph.
//
// Implementation:
//   - Stage 1: Validate indices (multiple of 3, all in range) → ErrInvalidMesh otherwise.
//   - Stage 2: Allocate one Node per vertex, preserving index identity.
//   - Stage 3: For each triangle (a,b,c) compute one cost per undirected edge and
//     append both directed records: a→b, b→a, b→c, c→b, c→a, a→c.
//
// The vertices slice is read, never retained; positions are copied into nodes.
// Edges shared by adjacent triangles are inserted once per triangle.
//
// Complexity: O(V + T) time, O(V + 6T) space.
func BuildGraph(vertices []mesh.Vertex, indices []uint32, opts ...Option) (*Graph, error) {
	cfg := defaultBuildOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate the index buffer.
	if err := mesh.ValidateIndices(len(vertices), indices); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMesh, err)
	}

	// 2) Nodes mirror vertices one-to-one.
	g := &Graph{Nodes: make([]Node, len(vertices))}
	for i, v := range vertices {
		g.Nodes[i].Position = v
	}

	// 3) Three undirected edges per triangle, two records each.
	for i := 0; i < len(indices); i += 3 {
		a := NodeIndex(indices[i])
		b := NodeIndex(indices[i+1])
		c := NodeIndex(indices[i+2])

		g.link(a, b, cfg.costFn(vertices[a], vertices[b]))
		g.link(b, c, cfg.costFn(vertices[b], vertices[c]))
		g.link(c, a, cfg.costFn(vertices[c], vertices[a]))
	}

	return g, nil
}

// BuildFromMesh is BuildGraph over m.Vertices and m.Indices.
func BuildFromMesh(m *mesh.Mesh, opts ...Option) (*Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrInvalidMesh)
	}

	return BuildGraph(m.Vertices, m.Indices, opts...)
}

// link appends u→v and v→u with the same cost.
func (g *Graph) link(u, v NodeIndex, c float32) {
	g.Nodes[u].Neighbors = append(g.Nodes[u].Neighbors, Edge{To: v, Cost: c})
	g.Nodes[v].Neighbors = append(g.Nodes[v].Neighbors, Edge{To: u, Cost: c})
}
