// Package metrics exposes search progress as Prometheus collectors.
//
// A Recorder turns astar hook callbacks into counters, so instrumentation is
// attached with engine options instead of being compiled into the engine:
//
//	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)
//	e, _ := astar.New(g, start, goal, rec.Options()...)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/peakpath/astar"
	"github.com/katalvlaran/peakpath/core"
)

const namespace = "peakpath"

// Recorder owns the collectors of one registry.
type Recorder struct {
	expanded   prometheus.Counter
	relaxed    prometheus.Counter
	stalePops  prometheus.Counter
	finished   *prometheus.CounterVec
	pathLength prometheus.Histogram
	graphNodes prometheus.Gauge
	graphEdges prometheus.Gauge
}

// NewRecorder registers the search collectors with reg.
// It panics if they are already registered there, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		expanded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_expanded_total",
			Help:      "Nodes popped from the open set and marked visited.",
		}),
		relaxed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_relaxed_total",
			Help:      "Edge relaxations that improved a tentative distance.",
		}),
		stalePops: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_pops_total",
			Help:      "Outdated open-set entries discarded on pop.",
		}),
		finished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_finished_total",
			Help:      "Searches that reached a terminal status.",
		}, []string{"status"}),
		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length_nodes",
			Help:      "Node count of reconstructed final paths.",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
		}),
		graphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Nodes in the graph currently searched.",
		}),
		graphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Directed edge records in the graph currently searched.",
		}),
	}
}

// Options returns the engine hooks that feed this Recorder.
func (r *Recorder) Options() []astar.Option {
	return []astar.Option{
		astar.WithOnExpand(func(core.NodeIndex) { r.expanded.Inc() }),
		astar.WithOnRelax(func(_, _ core.NodeIndex, _ float32) { r.relaxed.Inc() }),
		astar.WithOnStale(func(core.NodeIndex) { r.stalePops.Inc() }),
		astar.WithOnFinish(func(s astar.Status) { r.finished.WithLabelValues(s.String()).Inc() }),
	}
}

// ObserveGraph records the size of g.
func (r *Recorder) ObserveGraph(g *core.Graph) {
	if g == nil {
		return
	}
	r.graphNodes.Set(float64(g.Len()))
	r.graphEdges.Set(float64(g.EdgeCount()))
}

// ObservePath records the node count of a final path. Empty paths are ignored.
func (r *Recorder) ObservePath(path []core.NodeIndex) {
	if len(path) == 0 {
		return
	}
	r.pathLength.Observe(float64(len(path)))
}
