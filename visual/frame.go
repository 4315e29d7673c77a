package visual

import (
	"github.com/katalvlaran/peakpath/astar"
	"github.com/katalvlaran/peakpath/core"
)

// FrameColors are the flat colors of the point layers.
type FrameColors struct {
	Visited  RGB
	Frontier RGB
}

// DefaultFrameColors returns grey visited markers and cyan frontier markers.
func DefaultFrameColors() FrameColors {
	return FrameColors{
		Visited:  RGB{R: 0.55, G: 0.55, B: 0.6},
		Frontier: RGB{R: 0.2, G: 0.85, B: 0.95},
	}
}

// Frame is everything a renderer needs to draw one tick of a running search.
type Frame struct {
	Visited  []Point
	Frontier []Point
	Path     []LineSegment

	// Final is true when Path is the engine's found path rather than the
	// provisional best path toward the latest visited node.
	Final bool
}

// BuildFrame assembles the point layers and the path overlay for the current state.
// Until the goal is found the overlay follows CurrentBestPath toward the most
// recently visited node; afterwards it is the final path.
func BuildFrame(e *astar.Engine, state *astar.SearchState, colors FrameColors, opts ...Option) Frame {
	g := e.Graph()
	f := Frame{
		Visited:  Points(g, state.Visited, colors.Visited, opts...),
		Frontier: Points(g, state.Frontier, colors.Frontier, opts...),
	}

	var path []core.NodeIndex
	if len(state.Path) > 0 {
		path = state.Path
		f.Final = true
	} else if last := state.Last(); last != core.NoNode {
		path = e.CurrentBestPath(last)
	}
	f.Path = BuildPathVertexData(g, path, opts...)

	return f
}
