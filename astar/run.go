package astar

import (
	"fmt"

	"github.com/katalvlaran/peakpath/core"
)

// Run calls Step until the engine is terminal and returns the final status.
// state receives the same updates as with manual stepping.
func (e *Engine) Run(state *SearchState) Status {
	for e.Step(state) {
	}

	return e.status
}

// FindPath runs a complete search from start to goal and returns the path.
// Returns ErrNoPath (wrapped) if the goal is unreachable.
func FindPath(g *core.Graph, start, goal core.NodeIndex, opts ...Option) ([]core.NodeIndex, error) {
	e, err := New(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	var state SearchState
	if e.Run(&state) != StatusFound {
		return nil, fmt.Errorf("%w: start=%d goal=%d after %d expansions",
			ErrNoPath, start, goal, e.stats.Expanded)
	}

	return state.Path, nil
}
