package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/peakpath/core"
	"github.com/katalvlaran/peakpath/mesh"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrInvalidIndex indicates a start or goal index outside [0, graph.Len()).
	ErrInvalidIndex = errors.New("astar: node index out of range")

	// ErrNoPath indicates FindPath exhausted the open set without reaching the goal.
	ErrNoPath = errors.New("astar: goal unreachable from start")

	// ErrBadHeadingWeight indicates a negative or NaN heading weight.
	ErrBadHeadingWeight = errors.New("astar: heading weight must be non-negative")
)

// DefaultHeadingWeight multiplies the heuristic in every relaxed node's f-score.
const DefaultHeadingWeight float32 = 15.0

// Status is the lifecycle state of an Engine.
type Status int

const (
	// StatusReady means no node has been expanded yet.
	StatusReady Status = iota
	// StatusSearching means at least one node was expanded and the goal is not yet reached.
	StatusSearching
	// StatusFound means the goal was expanded and the path is available.
	StatusFound
	// StatusExhausted means the open set drained without reaching the goal.
	StatusExhausted
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusSearching:
		return "searching"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether s is Found or Exhausted.
func (s Status) Terminal() bool {
	return s == StatusFound || s == StatusExhausted
}

// SearchState is the per-step visualization snapshot filled by Engine.Step.
//
// Visited accumulates every expanded node in expansion order. Frontier is replaced
// on every expansion with the nodes that expansion relaxed. Path stays empty until
// the goal is expanded, then holds start→goal and is never touched again.
type SearchState struct {
	Visited  []core.NodeIndex
	Frontier []core.NodeIndex
	Path     []core.NodeIndex
}

// Last returns the most recently visited node, or core.NoNode if none.
func (s *SearchState) Last() core.NodeIndex {
	if len(s.Visited) == 0 {
		return core.NoNode
	}

	return s.Visited[len(s.Visited)-1]
}

// Stats counts engine work since construction.
type Stats struct {
	Steps     int // Step calls that expanded a node
	Expanded  int // nodes visited (goal included)
	Relaxed   int // successful relaxations (= heap pushes after the start entry)
	StalePops int // heap entries discarded because their node was already visited
}

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b mesh.Vertex) float32

// Euclidean is the default heuristic: 3D straight-line distance.
func Euclidean(a, b mesh.Vertex) float32 {
	return a.Distance(b)
}

// Option configures an Engine.
type Option func(*Options)

// Options holds the engine configuration. Use DefaultOptions and Option helpers.
type Options struct {
	// HeadingWeight scales the heuristic of relaxed nodes. Default DefaultHeadingWeight.
	HeadingWeight float32

	// Heuristic estimates remaining cost. Default Euclidean.
	Heuristic Heuristic

	// OnExpand, if non-nil, is called after a node is marked visited.
	OnExpand func(u core.NodeIndex)

	// OnRelax, if non-nil, is called after dist[v] improves to g via u.
	OnRelax func(u, v core.NodeIndex, g float32)

	// OnStale, if non-nil, is called for each discarded stale heap entry.
	OnStale func(u core.NodeIndex)

	// OnFinish, if non-nil, is called once when the engine reaches a terminal status.
	OnFinish func(status Status)
}

// DefaultOptions returns Options with DefaultHeadingWeight, Euclidean and no hooks.
func DefaultOptions() Options {
	return Options{
		HeadingWeight: DefaultHeadingWeight,
		Heuristic:     Euclidean,
	}
}

// WithHeadingWeight sets the heuristic weight. Panics on negative or NaN values,
// like other option constructors that receive nonsensical configuration.
func WithHeadingWeight(w float32) Option {
	if w < 0 || math.IsNaN(float64(w)) {
		panic(ErrBadHeadingWeight.Error())
	}

	return func(o *Options) {
		o.HeadingWeight = w
	}
}

// WithHeuristic replaces the heuristic. A nil h keeps the current one.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand adds fn to the expansion hooks. Hooks run in installation order,
// so several observers (metrics, logging) can be attached side by side.
func WithOnExpand(fn func(u core.NodeIndex)) Option {
	return func(o *Options) {
		if prev := o.OnExpand; prev != nil && fn != nil {
			o.OnExpand = func(u core.NodeIndex) { prev(u); fn(u) }
		} else if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax adds fn to the relaxation hooks.
func WithOnRelax(fn func(u, v core.NodeIndex, g float32)) Option {
	return func(o *Options) {
		if prev := o.OnRelax; prev != nil && fn != nil {
			o.OnRelax = func(u, v core.NodeIndex, g float32) { prev(u, v, g); fn(u, v, g) }
		} else if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnStale adds fn to the stale-pop hooks.
func WithOnStale(fn func(u core.NodeIndex)) Option {
	return func(o *Options) {
		if prev := o.OnStale; prev != nil && fn != nil {
			o.OnStale = func(u core.NodeIndex) { prev(u); fn(u) }
		} else if fn != nil {
			o.OnStale = fn
		}
	}
}

// WithOnFinish adds fn to the terminal-status hooks.
func WithOnFinish(fn func(status Status)) Option {
	return func(o *Options) {
		if prev := o.OnFinish; prev != nil && fn != nil {
			o.OnFinish = func(s Status) { prev(s); fn(s) }
		} else if fn != nil {
			o.OnFinish = fn
		}
	}
}
