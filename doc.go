// Package peakpath finds and visualizes slope-aware routes across a
// triangulated heightfield, one search step at a time.
//
// What is inside:
//
//	mesh/     Vertex, Mesh, index validation and the deterministic grid triangulator
//	cost/     slope-penalized edge cost: 1 + slope*steepness
//	core/     BuildGraph: mesh → adjacency lists, every triangle edge in both directions
//	astar/    resumable A*: New, Step, CurrentBestPath, Run, FindPath
//	visual/   path segments colored by slope, visited/frontier markers, flat float buffers
//	spatial/  R-tree nearest-node lookup from planar (x, z) positions
//	terrain/  Perlin mountain generator for demos and benchmarks
//	metrics/  Prometheus collectors fed by engine hooks
//	config/   YAML configuration with defaults, validation and hot reload
//
// The stepping contract: each Step call expands exactly one node and reports
// what changed, so a caller can render the search between steps:
//
//	e, _ := astar.New(g, start, goal)
//	var st astar.SearchState
//	for e.Step(&st) {
//		draw(visual.BuildFrame(e, &st, visual.DefaultFrameColors()))
//	}
//	// e.Status() is StatusFound (st.Path set) or StatusExhausted.
//
// The demo lives in cmd/peakpath:
//
//	go run ./cmd/peakpath -config configs/peakpath.yaml
package peakpath
