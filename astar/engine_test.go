package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/peakpath/astar"
	"github.com/katalvlaran/peakpath/core"
	"github.com/katalvlaran/peakpath/mesh"
)

func TestNew_Validation(t *testing.T) {
	g := square(t)

	_, err := astar.New(nil, 0, 0)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	for _, tc := range []struct {
		name        string
		start, goal core.NodeIndex
	}{
		{"NegativeStart", -1, 3},
		{"StartPastEnd", 4, 3},
		{"NegativeGoal", 0, -1},
		{"GoalPastEnd", 0, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, err := astar.New(g, tc.start, tc.goal)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, astar.ErrInvalidIndex)
		})
	}
}

func TestNew_InitialState(t *testing.T) {
	g := square(t)
	e, err := astar.New(g, 0, 3)
	require.NoError(t, err)

	assert.Equal(t, astar.StatusReady, e.Status())
	assert.Equal(t, float32(0), e.Dist(0))
	assert.True(t, math.IsInf(float64(e.Dist(3)), 1))
	assert.True(t, math.IsInf(float64(e.Dist(99)), 1))
	assert.Equal(t, 1, e.OpenLen())
	assert.False(t, e.Visited(0))
	assert.Equal(t, core.NodeIndex(0), e.Start())
	assert.Equal(t, core.NodeIndex(3), e.Goal())
	assert.Same(t, g, e.Graph())
}

func TestWithHeadingWeight_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { astar.WithHeadingWeight(-1) })
	assert.Panics(t, func() { astar.WithHeadingWeight(float32(math.NaN())) })
	assert.NotPanics(t, func() { astar.WithHeadingWeight(0) })
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ready", astar.StatusReady.String())
	assert.Equal(t, "searching", astar.StatusSearching.String())
	assert.Equal(t, "found", astar.StatusFound.String())
	assert.Equal(t, "exhausted", astar.StatusExhausted.String())
	assert.Equal(t, "Status(9)", astar.Status(9).String())
	assert.True(t, astar.StatusFound.Terminal())
	assert.False(t, astar.StatusSearching.Terminal())
}

// SearchSuite groups the behavioral scenarios of the stepping engine.
type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestSquareCorners: flat 2×2 grid, corner to opposite corner.
func (s *SearchSuite) TestSquareCorners() {
	g := square(s.T())
	e, err := astar.New(g, 0, 3)
	s.Require().NoError(err)

	var state astar.SearchState
	calls := 0
	for e.Step(&state) {
		calls++
		s.Require().LessOrEqual(calls, 4)
	}
	calls++

	s.LessOrEqual(calls, 4)
	s.Equal(astar.StatusFound, e.Status())
	s.Len(state.Path, 3)
	requireValidPath(s.T(), g, state.Path, 0, 3)
	s.InDelta(2.0, astar.PathCost(g, state.Path), 1e-6)
	s.InDelta(2.0, e.Dist(3), 1e-6)
	s.Empty(state.Frontier)
}

// TestTieBreakFIFO: nodes 2 and 1 share f after the first expansion; 2 was pushed
// first (neighbor order of node 0), so it is expanded first and lies on the path.
func (s *SearchSuite) TestTieBreakFIFO() {
	g := square(s.T())
	e, err := astar.New(g, 0, 3)
	s.Require().NoError(err)

	var state astar.SearchState
	s.True(e.Step(&state))
	s.Equal([]core.NodeIndex{2, 1}, state.Frontier)
	s.True(e.Step(&state))
	s.Equal([]core.NodeIndex{0, 2}, state.Visited)
	s.False(e.Step(&state))
	s.Equal([]core.NodeIndex{0, 2, 3}, state.Path)
	s.Equal([]core.NodeIndex{0, 2, 3}, state.Visited)
}

// TestDisconnectedGoal: an isolated goal drains the open set.
func (s *SearchSuite) TestDisconnectedGoal() {
	g, island := withIsland(s.T(), 3)
	e, err := astar.New(g, 0, island)
	s.Require().NoError(err)

	var state astar.SearchState
	steps := 0
	for e.Step(&state) {
		steps++
		s.Require().LessOrEqual(steps, g.Len())
	}

	s.Equal(astar.StatusExhausted, e.Status())
	s.Empty(state.Path)
	s.Less(len(e.CurrentBestPath(island)), 2)
	s.Len(state.Visited, g.Len()-1, "every connected node gets expanded")

	// Terminal engines are inert.
	before := astar.SearchState{
		Visited:  append([]core.NodeIndex(nil), state.Visited...),
		Frontier: append([]core.NodeIndex(nil), state.Frontier...),
	}
	s.False(e.Step(&state))
	s.Equal(before.Visited, state.Visited)
	s.Equal(before.Frontier, state.Frontier)
	s.Empty(state.Path)
}

// TestTermination: every start/goal pair on a connected terrain terminates within V steps.
func (s *SearchSuite) TestTermination() {
	g := hills(s.T(), 6)
	for _, pair := range [][2]core.NodeIndex{{0, 48}, {48, 0}, {10, 30}, {24, 24}} {
		e, err := astar.New(g, pair[0], pair[1])
		s.Require().NoError(err)

		var state astar.SearchState
		steps := 0
		for e.Step(&state) {
			steps++
			s.Require().Less(steps, g.Len(), "search did not terminate")
		}
		s.Equal(astar.StatusFound, e.Status())
		requireValidPath(s.T(), g, state.Path, pair[0], pair[1])
	}
}

// TestDistMonotone: no dist value ever increases between steps, and dists of
// visited nodes never change again.
func (s *SearchSuite) TestDistMonotone() {
	g := hills(s.T(), 8)
	e, err := astar.New(g, 0, core.NodeIndex(g.Len()-1), astar.WithHeadingWeight(1))
	s.Require().NoError(err)

	snapshot := func() []float32 {
		out := make([]float32, g.Len())
		for i := range out {
			out[i] = e.Dist(core.NodeIndex(i))
		}
		return out
	}

	final := make(map[core.NodeIndex]float32)
	prev := snapshot()
	var state astar.SearchState
	for e.Step(&state) {
		cur := snapshot()
		for i := range cur {
			s.Require().LessOrEqual(cur[i], prev[i], "dist[%d] increased", i)
		}
		for n, d := range final {
			s.Require().Equal(d, cur[n], "visited dist[%d] changed", n)
		}
		last := state.Last()
		final[last] = cur[last]
		prev = cur
	}
}

// TestCurrentBestPathIdempotent: repeated calls without Step agree; paths grow from start.
func (s *SearchSuite) TestCurrentBestPathIdempotent() {
	g := hills(s.T(), 5)
	e, err := astar.New(g, 0, core.NodeIndex(g.Len()-1))
	s.Require().NoError(err)

	var state astar.SearchState
	for e.Step(&state) {
		last := state.Last()
		a := e.CurrentBestPath(last)
		b := e.CurrentBestPath(last)
		s.Equal(a, b)
		requireValidPath(s.T(), g, a, 0, last)
	}
	s.Equal(state.Path, e.CurrentBestPath(e.Goal()))
	s.Nil(e.CurrentBestPath(-1))
}

// TestUnreachedTarget: before expansion, only the start has a path.
func (s *SearchSuite) TestUnreachedTarget() {
	g := square(s.T())
	e, err := astar.New(g, 0, 3)
	s.Require().NoError(err)

	s.Equal([]core.NodeIndex{0}, e.CurrentBestPath(0))
	s.Equal([]core.NodeIndex{3}, e.CurrentBestPath(3))
}

// TestDuplicateEdgesHarmless: shared triangle edges do not change the result.
func (s *SearchSuite) TestDuplicateEdgesHarmless() {
	g := hills(s.T(), 7)
	d := dedup(g)
	s.Less(d.EdgeCount(), g.EdgeCount())

	goal := core.NodeIndex(g.Len() - 1)
	for _, w := range []float32{0, 1, astar.DefaultHeadingWeight} {
		withDup, err := astar.FindPath(g, 0, goal, astar.WithHeadingWeight(w))
		s.Require().NoError(err)
		without, err := astar.FindPath(d, 0, goal, astar.WithHeadingWeight(w))
		s.Require().NoError(err)

		s.Equal(without, withDup, "weight %v", w)
		s.InDelta(astar.PathCost(d, without), astar.PathCost(g, withDup), 1e-5)
	}
}

// TestStalePops: a node improved after its first push leaves a stale entry behind,
// which is skipped inside Step.
func (s *SearchSuite) TestStalePops() {
	// 0 ─10─ 2, 0 ─1─ 1 ─1─ 2, node 3 isolated.
	g := &core.Graph{Nodes: []core.Node{
		{Neighbors: []core.Edge{{To: 2, Cost: 10}, {To: 1, Cost: 1}}},
		{Neighbors: []core.Edge{{To: 0, Cost: 1}, {To: 2, Cost: 1}}},
		{Neighbors: []core.Edge{{To: 0, Cost: 10}, {To: 1, Cost: 1}}},
		{Position: mesh.Vertex{X: 9}},
	}}
	stale := 0
	e, err := astar.New(g, 0, 3, astar.WithHeadingWeight(0), astar.WithOnStale(func(core.NodeIndex) { stale++ }))
	s.Require().NoError(err)

	var state astar.SearchState
	s.True(e.Step(&state))
	s.True(e.Step(&state))
	s.True(e.Step(&state))
	s.Equal([]core.NodeIndex{0, 1, 2}, state.Visited)
	s.InDelta(2.0, e.Dist(2), 1e-6)
	s.Equal(1, e.OpenLen(), "stale entry for node 2 still queued")

	s.False(e.Step(&state))
	s.Equal(astar.StatusExhausted, e.Status())
	s.Equal(1, e.Stats().StalePops)
	s.Equal(1, stale)
	s.Equal([]core.NodeIndex{0, 1, 2}, state.Visited)
}

// TestHooksAndStats: hooks fire in step with the counters.
func (s *SearchSuite) TestHooksAndStats() {
	g := hills(s.T(), 6)
	var expanded, relaxed int
	var finished []astar.Status
	e, err := astar.New(g, 3, core.NodeIndex(g.Len()-4),
		astar.WithOnExpand(func(core.NodeIndex) { expanded++ }),
		astar.WithOnRelax(func(u, v core.NodeIndex, d float32) {
			relaxed++
			s.Require().Greater(d, float32(0))
		}),
		astar.WithOnFinish(func(st astar.Status) { finished = append(finished, st) }),
	)
	s.Require().NoError(err)

	var state astar.SearchState
	frontierTotal := 0
	for e.Step(&state) {
		frontierTotal += len(state.Frontier)
	}
	s.False(e.Step(&state))

	st := e.Stats()
	s.Equal(len(state.Visited), st.Expanded)
	s.Equal(st.Expanded, st.Steps)
	s.Equal(expanded, st.Expanded)
	s.Equal(relaxed, st.Relaxed)
	s.Equal(frontierTotal, st.Relaxed)
	s.Equal([]astar.Status{astar.StatusFound}, finished)
}

// TestStartIsGoal: the first step finds a one-node path.
func (s *SearchSuite) TestStartIsGoal() {
	g := square(s.T())
	e, err := astar.New(g, 2, 2)
	s.Require().NoError(err)

	var state astar.SearchState
	s.False(e.Step(&state))
	s.Equal(astar.StatusFound, e.Status())
	s.Equal([]core.NodeIndex{2}, state.Path)
}

// TestDijkstraOrderIsOptimal: with weight 0 the path cost matches an exhaustive check
// on a small grid, and the default inflated weight never beats it.
func (s *SearchSuite) TestDijkstraOrderIsOptimal() {
	g := hills(s.T(), 6)
	goal := core.NodeIndex(g.Len() - 1)

	exact, err := astar.FindPath(g, 0, goal, astar.WithHeadingWeight(0))
	s.Require().NoError(err)
	greedy, err := astar.FindPath(g, 0, goal)
	s.Require().NoError(err)

	s.LessOrEqual(astar.PathCost(g, exact), astar.PathCost(g, greedy)+1e-5)
}

func TestFindPath_NoPath(t *testing.T) {
	g, island := withIsland(t, 2)
	path, err := astar.FindPath(g, 0, island)
	assert.Nil(t, path)
	assert.ErrorIs(t, err, astar.ErrNoPath)

	_, err = astar.FindPath(g, 0, 1000)
	assert.ErrorIs(t, err, astar.ErrInvalidIndex)
}

func TestRun_ReturnsTerminalStatus(t *testing.T) {
	g := square(t)
	e, err := astar.New(g, 3, 0)
	require.NoError(t, err)

	var state astar.SearchState
	assert.Equal(t, astar.StatusFound, e.Run(&state))
	requireValidPath(t, g, state.Path, 3, 0)
	assert.Equal(t, astar.StatusFound, e.Run(&state))
}

func TestWithHeuristic(t *testing.T) {
	g := hills(t, 4)
	calls := 0
	zero := func(a, b mesh.Vertex) float32 { calls++; return 0 }
	path, err := astar.FindPath(g, 0, core.NodeIndex(g.Len()-1), astar.WithHeuristic(zero), astar.WithHeuristic(nil))
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.Positive(t, calls)
}

func TestReconstructPath(t *testing.T) {
	prev := []core.NodeIndex{core.NoNode, 0, 1, core.NoNode}
	assert.Equal(t, []core.NodeIndex{0, 1, 2}, astar.ReconstructPath(prev, 2))
	assert.Equal(t, []core.NodeIndex{3}, astar.ReconstructPath(prev, 3))
	assert.Nil(t, astar.ReconstructPath(prev, 4))
	assert.Nil(t, astar.ReconstructPath(prev, -2))
}

func TestPathCost(t *testing.T) {
	g := square(t)
	assert.Zero(t, astar.PathCost(g, nil))
	assert.Zero(t, astar.PathCost(g, []core.NodeIndex{1}))
	assert.InDelta(t, 2.0, astar.PathCost(g, []core.NodeIndex{0, 1, 3}), 1e-6)
	assert.True(t, math.IsInf(float64(astar.PathCost(g, []core.NodeIndex{0, 3})), 1))
}

func TestHooks_Chain(t *testing.T) {
	var order []string
	e, err := astar.New(square(t), 0, 3,
		astar.WithOnFinish(func(astar.Status) { order = append(order, "first") }),
		astar.WithOnFinish(nil),
		astar.WithOnFinish(func(astar.Status) { order = append(order, "second") }),
	)
	require.NoError(t, err)

	assert.Equal(t, astar.StatusFound, e.Run(&astar.SearchState{}))
	assert.Equal(t, []string{"first", "second"}, order)
}
