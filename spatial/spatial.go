// Package spatial answers "which graph node is at this spot?" queries on the
// ground plane, so callers can pick search endpoints by world (x, z) position
// instead of raw node indices.
//
// Node positions are projected onto X/Z and stored in an R-tree; height is ignored.
package spatial

import (
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/peakpath/core"
	"github.com/katalvlaran/peakpath/cost"
)

// ErrEmptyGraph indicates an index was requested over a nil or empty graph.
var ErrEmptyGraph = errors.New("spatial: graph has no nodes")

const (
	minEntries = 25
	maxEntries = 50
	pointTol   = 1e-9
)

// nodeEntry wraps a node for R-tree storage.
type nodeEntry struct {
	node core.NodeIndex
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.box
}

// Index is a read-only planar lookup over a graph's node positions.
type Index struct {
	tree   *rtreego.Rtree
	bounds orb.Bound
}

// NewIndex indexes every node of g by its (X, Z) position.
// Complexity: O(V log V).
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	entries := make([]rtreego.Spatial, 0, g.Len())
	for i := range g.Nodes {
		p := cost.Planar(g.Nodes[i].Position)
		entries = append(entries, &nodeEntry{
			node: core.NodeIndex(i),
			box:  rtreego.Point{p[0], p[1]}.ToRect(pointTol),
		})
	}

	return &Index{
		tree:   rtreego.NewTree(2, minEntries, maxEntries, entries...),
		bounds: g.Bounds(),
	}, nil
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Bounds returns the planar bounding box of the indexed nodes.
func (ix *Index) Bounds() orb.Bound {
	return ix.bounds
}

// InBounds reports whether (x, z) lies inside the indexed area.
func (ix *Index) InBounds(x, z float64) bool {
	return ix.bounds.Contains(orb.Point{x, z})
}

// Nearest returns the node closest to (x, z) on the ground plane.
// The boolean is false only if the index is empty.
func (ix *Index) Nearest(x, z float64) (core.NodeIndex, bool) {
	hit := ix.tree.NearestNeighbor(rtreego.Point{x, z})
	if hit == nil {
		return core.NoNode, false
	}

	return hit.(*nodeEntry).node, true
}

// KNearest returns up to k nodes ordered by increasing planar distance to (x, z).
func (ix *Index) KNearest(k int, x, z float64) []core.NodeIndex {
	if k <= 0 {
		return nil
	}
	hits := ix.tree.NearestNeighbors(k, rtreego.Point{x, z})
	out := make([]core.NodeIndex, 0, len(hits))
	for _, h := range hits {
		if h == nil {
			continue
		}
		out = append(out, h.(*nodeEntry).node)
	}

	return out
}

// Within returns every node whose position lies in the axis-aligned box
// [minX, maxX] × [minZ, maxZ]. Order is unspecified.
func (ix *Index) Within(minX, minZ, maxX, maxZ float64) ([]core.NodeIndex, error) {
	if maxX < minX || maxZ < minZ {
		return nil, fmt.Errorf("spatial: inverted box [%g,%g]×[%g,%g]", minX, maxX, minZ, maxZ)
	}
	box, err := rtreego.NewRect(
		rtreego.Point{minX - pointTol, minZ - pointTol},
		[]float64{maxX - minX + 2*pointTol, maxZ - minZ + 2*pointTol},
	)
	if err != nil {
		return nil, fmt.Errorf("spatial: query box: %w", err)
	}

	hits := ix.tree.SearchIntersect(box)
	out := make([]core.NodeIndex, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*nodeEntry).node)
	}

	return out, nil
}
