package visual

import (
	"github.com/katalvlaran/peakpath/core"
	"github.com/katalvlaran/peakpath/cost"
)

// FloatsPerVertex is the stride of flattened buffers: x y z r g b.
const FloatsPerVertex = 6

// BuildPathVertexData turns a node path into one colored segment per consecutive pair.
// Colors come from the slope of each segment; endpoints are lifted by LineLift.
// Paths with fewer than two nodes yield no segments. Pairs referencing nodes
// outside g are skipped.
// Complexity: O(len(path)).
func BuildPathVertexData(g *core.Graph, path []core.NodeIndex, opts ...Option) []LineSegment {
	if g == nil || len(path) < 2 {
		return nil
	}
	p := resolve(opts)

	segments := make([]LineSegment, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if !g.Contains(u) || !g.Contains(v) {
			continue
		}
		a, b := g.Position(u), g.Position(v)
		segments = append(segments, LineSegment{
			A:     a.Lift(p.LineLift),
			B:     b.Lift(p.LineLift),
			Color: p.SlopeColor(cost.Slope(a, b)),
		})
	}

	return segments
}

// Points turns a node set (visited, frontier, …) into flat-colored markers lifted by PointLift.
// Nodes outside g are skipped.
func Points(g *core.Graph, nodes []core.NodeIndex, color RGB, opts ...Option) []Point {
	if g == nil || len(nodes) == 0 {
		return nil
	}
	p := resolve(opts)

	points := make([]Point, 0, len(nodes))
	for _, n := range nodes {
		if !g.Contains(n) {
			continue
		}
		points = append(points, Point{Position: g.Position(n).Lift(p.PointLift), Color: color})
	}

	return points
}

// FlattenSegments interleaves segments as [x y z r g b] per endpoint, two endpoints per segment.
func FlattenSegments(segments []LineSegment) []float32 {
	out := make([]float32, 0, len(segments)*2*FloatsPerVertex)
	for _, s := range segments {
		out = appendVertex(out, s.A.X, s.A.Y, s.A.Z, s.Color)
		out = appendVertex(out, s.B.X, s.B.Y, s.B.Z, s.Color)
	}

	return out
}

// FlattenPoints interleaves points as [x y z r g b].
func FlattenPoints(points []Point) []float32 {
	out := make([]float32, 0, len(points)*FloatsPerVertex)
	for _, pt := range points {
		out = appendVertex(out, pt.Position.X, pt.Position.Y, pt.Position.Z, pt.Color)
	}

	return out
}

func appendVertex(dst []float32, x, y, z float32, c RGB) []float32 {
	return append(dst, x, y, z, c.R, c.G, c.B)
}
