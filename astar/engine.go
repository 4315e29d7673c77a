package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/peakpath/core"
)

// Engine holds the mutable state of one search from start to goal.
// The graph is borrowed read-only and must outlive the engine.
type Engine struct {
	g       *core.Graph
	start   core.NodeIndex
	goal    core.NodeIndex
	options Options

	dist    []float32        // best known cost from start; +Inf if unknown
	prev    []core.NodeIndex // predecessor on the best known path; NoNode if none
	visited []bool           // finalized nodes
	open    openSet
	seq     uint64

	status Status
	stats  Stats
}

// New prepares a search from start to goal over g.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must lie in [0, g.Len()) (ErrInvalidIndex).
//
// The start node gets dist 0 and enters the open set with f = h(start, goal).
// Complexity: O(V).
func New(g *core.Graph, start, goal core.NodeIndex, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start=%d, graph has %d nodes", ErrInvalidIndex, start, g.Len())
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: goal=%d, graph has %d nodes", ErrInvalidIndex, goal, g.Len())
	}

	n := g.Len()
	e := &Engine{
		g:       g,
		start:   start,
		goal:    goal,
		options: cfg,
		dist:    make([]float32, n),
		prev:    make([]core.NodeIndex, n),
		visited: make([]bool, n),
		open:    make(openSet, 0, n),
		status:  StatusReady,
	}
	inf := float32(math.Inf(1))
	for i := range e.dist {
		e.dist[i] = inf
		e.prev[i] = core.NoNode
	}

	e.dist[start] = 0
	heap.Init(&e.open)
	e.push(start, e.h(start))

	return e, nil
}

// Step advances the search by one node expansion and records the change in state.
//
// Returns true while the search should continue, false once it is terminal:
//   - open set empty → StatusExhausted, state untouched, Path stays empty.
//   - goal expanded  → StatusFound, goal appended to Visited, Frontier cleared,
//     Path = start…goal.
//
// Stale heap entries (nodes already visited) are discarded inside the call, so a
// true return always means exactly one new node was appended to state.Visited.
// Calling Step on a terminal engine returns false and does nothing.
func (e *Engine) Step(state *SearchState) bool {
	if e.status.Terminal() {
		return false
	}

	// 1) Pop until a node that is not yet final shows up.
	var u core.NodeIndex
	for {
		if e.open.Len() == 0 {
			e.finish(StatusExhausted)
			return false
		}
		u = heap.Pop(&e.open).(entry).node
		if !e.visited[u] {
			break
		}
		e.stats.StalePops++
		if e.options.OnStale != nil {
			e.options.OnStale(u)
		}
	}

	// 2) Finalize u.
	e.visited[u] = true
	e.stats.Expanded++
	e.stats.Steps++
	state.Visited = append(state.Visited, u)
	if e.options.OnExpand != nil {
		e.options.OnExpand(u)
	}

	// 3) Goal reached: publish the path and stop.
	if u == e.goal {
		state.Path = ReconstructPath(e.prev, e.goal)
		state.Frontier = nil
		e.finish(StatusFound)
		return false
	}

	// 4) Relax outgoing edges; the frontier is exactly what this expansion improved.
	//    A fresh slice each step, so callers may keep earlier frontiers.
	state.Frontier = nil
	e.relax(u, state)
	e.status = StatusSearching

	return true
}

// relax tries every outgoing edge of u and pushes improved neighbors.
func (e *Engine) relax(u core.NodeIndex, state *SearchState) {
	du := e.dist[u]
	for _, edge := range e.g.Neighbors(u) {
		v := edge.To
		if e.visited[v] {
			continue // final
		}
		tentative := du + edge.Cost
		if tentative >= e.dist[v] {
			continue
		}
		e.dist[v] = tentative
		e.prev[v] = u
		e.push(v, tentative+e.h(v)*e.options.HeadingWeight)
		e.stats.Relaxed++
		state.Frontier = append(state.Frontier, v)
		if e.options.OnRelax != nil {
			e.options.OnRelax(u, v, tentative)
		}
	}
}

func (e *Engine) push(n core.NodeIndex, f float32) {
	heap.Push(&e.open, entry{node: n, f: f, seq: e.seq})
	e.seq++
}

func (e *Engine) h(n core.NodeIndex) float32 {
	return e.options.Heuristic(e.g.Position(n), e.g.Position(e.goal))
}

func (e *Engine) finish(s Status) {
	e.status = s
	if e.options.OnFinish != nil {
		e.options.OnFinish(s)
	}
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Start returns the start node.
func (e *Engine) Start() core.NodeIndex { return e.start }

// Goal returns the goal node.
func (e *Engine) Goal() core.NodeIndex { return e.goal }

// Graph returns the graph being searched.
func (e *Engine) Graph() *core.Graph { return e.g }

// Stats returns the work counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }

// OpenLen returns the number of open-set entries, stale duplicates included.
func (e *Engine) OpenLen() int { return e.open.Len() }

// Dist returns the best known cost from start to n, +Inf if n is unreached or out of range.
func (e *Engine) Dist(n core.NodeIndex) float32 {
	if !e.g.Contains(n) {
		return float32(math.Inf(1))
	}

	return e.dist[n]
}

// Visited reports whether n has been expanded (its dist is final).
func (e *Engine) Visited(n core.NodeIndex) bool {
	return e.g.Contains(n) && e.visited[n]
}
