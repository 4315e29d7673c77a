// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node/Edge/Graph value types, build options and sentinel errors.

package core

import (
	"errors"

	"github.com/katalvlaran/peakpath/cost"
	"github.com/katalvlaran/peakpath/mesh"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidMesh indicates a malformed index buffer: length not a multiple of 3,
	// or an index >= len(vertices).
	ErrInvalidMesh = errors.New("core: invalid mesh")
)

// NodeIndex identifies a node; it equals the index of the vertex the node was built from.
type NodeIndex int

// NoNode marks "no node", e.g. a missing predecessor.
const NoNode NodeIndex = -1

// Edge is a directed adjacency record stored in its source node's Neighbors list.
type Edge struct {
	// To is the destination node.
	To NodeIndex

	// Cost is the traversal cost; identical for both directions of a mesh edge.
	Cost float32
}

// Node is a graph vertex: a copy of its mesh position plus outgoing edges.
type Node struct {
	Position  mesh.Vertex
	Neighbors []Edge
}

// Graph is an immutable adjacency list indexed by NodeIndex.
type Graph struct {
	Nodes []Node
}

// Option configures graph construction.
type Option func(*buildOptions)

type buildOptions struct {
	costFn cost.Func
}

func defaultBuildOptions() buildOptions {
	return buildOptions{costFn: cost.DefaultModel().Func()}
}

// WithCostModel weights edges with m instead of cost.DefaultModel().
func WithCostModel(m cost.Model) Option {
	return func(o *buildOptions) {
		o.costFn = m.Func()
	}
}

// WithCostFunc weights edges with fn. fn must be symmetric and return values >= 1
// for searches over the graph to keep their termination guarantee.
// Panics if fn is nil.
func WithCostFunc(fn cost.Func) Option {
	if fn == nil {
		panic("core: WithCostFunc(nil)")
	}

	return func(o *buildOptions) {
		o.costFn = fn
	}
}
