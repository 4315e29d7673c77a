package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/peakpath/astar"
	"github.com/katalvlaran/peakpath/config"
	"github.com/katalvlaran/peakpath/core"
	"github.com/katalvlaran/peakpath/metrics"
	"github.com/katalvlaran/peakpath/visual"
)

// progressEvery is the number of steps between progress log lines.
const progressEvery = 250

// run is one engine over one scene, tagged with an id for the logs.
type run struct {
	id     uuid.UUID
	scene  *scene
	engine *astar.Engine
	state  astar.SearchState
	max    int
	log    *slog.Logger
	done   bool
}

// driver owns the current run and steps it once per tick. Only the goroutine
// executing loop touches the engine; new configurations arrive on a channel.
type driver struct {
	log *slog.Logger
	rec *metrics.Recorder
}

func newRun(cfg *config.Config, log *slog.Logger, rec *metrics.Recorder) (*run, error) {
	sc, err := buildScene(cfg)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	rl := log.With("run", id.String())

	opts := append(cfg.Search.Options(), rec.Options()...)
	if rl.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts,
			astar.WithOnExpand(func(u core.NodeIndex) { rl.Debug("expand", "node", int(u)) }),
			astar.WithOnStale(func(u core.NodeIndex) { rl.Debug("stale pop", "node", int(u)) }),
		)
	}
	e, err := astar.New(sc.graph, sc.start, sc.goal, opts...)
	if err != nil {
		return nil, err
	}
	rec.ObserveGraph(sc.graph)

	rl.Info("search ready",
		"nodes", sc.graph.Len(),
		"edges", sc.graph.EdgeCount(),
		"max_height", sc.maxHeight,
		"start", int(sc.start),
		"goal", int(sc.goal),
	)
	if sc.clamped {
		rl.Warn("start or goal outside terrain, snapped to nearest node")
	}
	if !sc.reachable {
		rl.Warn("goal is in another component, search will exhaust")
	}

	return &run{id: id, scene: sc, engine: e, max: cfg.Search.MaxSteps, log: rl}, nil
}

// tick advances the run by one Step and reports whether it is still active.
func (r *run) tick(rec *metrics.Recorder) bool {
	if r.done {
		return false
	}
	if r.engine.Step(&r.state) {
		steps := r.engine.Stats().Steps
		if steps%progressEvery == 0 {
			f := visual.BuildFrame(r.engine, &r.state, visual.DefaultFrameColors(), visual.WithPalette(r.scene.palette))
			r.log.Info("searching",
				"steps", steps,
				"open", r.engine.OpenLen(),
				"frontier", len(f.Frontier),
				"best_path_segments", len(f.Path),
			)
		}
		if r.max > 0 && steps >= r.max {
			r.log.Warn("step budget reached", "steps", steps)
			r.done = true
		}

		return !r.done
	}

	r.done = true
	st := r.engine.Stats()
	switch r.engine.Status() {
	case astar.StatusFound:
		rec.ObservePath(r.state.Path)
		segs := visual.BuildPathVertexData(r.scene.graph, r.state.Path, visual.WithPalette(r.scene.palette))
		easy, moderate, hard := bucketCounts(r.scene.palette, segs)
		r.log.Info("path found",
			"steps", st.Steps,
			"stale_pops", st.StalePops,
			"nodes", len(r.state.Path),
			"cost", astar.PathCost(r.scene.graph, r.state.Path),
			"easy", easy,
			"moderate", moderate,
			"hard", hard,
			"vertex_floats", len(visual.FlattenSegments(segs)),
		)
	case astar.StatusExhausted:
		r.log.Warn("goal unreachable", "steps", st.Steps)
	}

	return false
}

// bucketCounts counts path segments per slope color.
func bucketCounts(p visual.Palette, segs []visual.LineSegment) (easy, moderate, hard int) {
	for _, seg := range segs {
		switch seg.Color {
		case p.Easy:
			easy++
		case p.Moderate:
			moderate++
		default:
			hard++
		}
	}

	return easy, moderate, hard
}

// loop steps the current run on a ticker until ctx is done. A config received
// on reloads replaces the run; a config that fails to build keeps the old one.
func (d *driver) loop(ctx context.Context, cfg *config.Config, reloads <-chan *config.Config) error {
	r, err := newRun(cfg, d.log, d.rec)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(cfg.Search.StepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case next := <-reloads:
			nr, err := newRun(next, d.log, d.rec)
			if err != nil {
				d.log.Warn("reload skipped: rebuild failed", "err", err)
				continue
			}
			r.log.Info("run replaced", "next", nr.id.String())
			r = nr
			ticker.Reset(next.Search.StepInterval)
		case <-ticker.C:
			r.tick(d.rec)
		}
	}
}
