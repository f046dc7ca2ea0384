// Package metrics exposes Prometheus instrumentation for graph stores and
// index builds: live node/edge gauges kept in sync through the graph's
// change notifications, mutation counters, and index build histograms.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/jamieparkinson/graphology/pkg/graph"
)

// Registry bundles the module's Prometheus collectors around a private
// prometheus.Registry, so embedding applications can expose or gather them
// without global registration conflicts.
type Registry struct {
	registry *prometheus.Registry

	NodesTotal prometheus.Gauge
	EdgesTotal prometheus.Gauge

	MutationsTotal     *prometheus.CounterVec
	IndexBuildsTotal   *prometheus.CounterVec
	IndexBuildDuration *prometheus.HistogramVec
}

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.NodesTotal = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "graphology_nodes_total",
		Help: "Current number of nodes in the graph",
	})
	r.EdgesTotal = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "graphology_edges_total",
		Help: "Current number of edges in the graph",
	})
	r.MutationsTotal = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "graphology_mutations_total",
		Help: "Total number of graph mutations by kind",
	}, []string{"kind"})
	r.IndexBuildsTotal = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "graphology_index_builds_total",
		Help: "Total number of index builds by index",
	}, []string{"index"})
	r.IndexBuildDuration = promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graphology_index_build_duration_seconds",
		Help:    "Index build duration in seconds",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
	}, []string{"index"})

	return r
}

// Gather collects the current metric families, for reporting or testing.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// Registry returns the underlying prometheus.Registry, for mounting a
// promhttp handler in embedding services.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// ObserveIndexBuild records one index build.
func (r *Registry) ObserveIndexBuild(index string, d time.Duration) {
	r.IndexBuildsTotal.WithLabelValues(index).Inc()
	r.IndexBuildDuration.WithLabelValues(index).Observe(d.Seconds())
}

// Observe attaches the registry to a graph: gauges are initialized to the
// graph's current order and size and then kept in sync through change
// notifications. The registry assumes it observes a single graph. It
// returns the subscription id for detaching via g.Unsubscribe.
func (r *Registry) Observe(g *graph.Graph) graph.SubscriptionID {
	r.NodesTotal.Set(float64(g.Order()))
	r.EdgesTotal.Set(float64(g.Size()))
	return g.Subscribe(func(e graph.Event) {
		r.MutationsTotal.WithLabelValues(e.Kind.String()).Inc()
		switch e.Kind {
		case graph.NodeAdded:
			r.NodesTotal.Inc()
		case graph.NodeDropped:
			r.NodesTotal.Dec()
		case graph.EdgeAdded:
			r.EdgesTotal.Inc()
		case graph.EdgeDropped:
			r.EdgesTotal.Dec()
		case graph.Cleared:
			r.NodesTotal.Set(float64(g.Order()))
			r.EdgesTotal.Set(float64(g.Size()))
		}
	})
}
