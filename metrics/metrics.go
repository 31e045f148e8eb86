// Package metrics exports search counters and distributions to Prometheus.
//
// A Recorder plugs into an astar.Engine through Hooks():
//
//	rec, _ := metrics.NewRecorder(prometheus.NewRegistry())
//	e, _ := astar.New(g, start, goal, astar.WithHooks(rec.Hooks()))
//
// Metrics (all prefixed "astargrid_"):
//   - astargrid_searches_total{status}     - finished searches by terminal status
//   - astargrid_cells_discovered_total     - frontier insertions
//   - astargrid_relaxations_total          - successful decrease-cost operations
//   - astargrid_cells_finalized_total      - finalized cells, start cells included
//   - astargrid_search_iterations          - histogram of iterations per search
//   - astargrid_path_cost                  - histogram of path cost for found searches
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/astargrid/astar"
)

// Recorder holds the Prometheus collectors for grid searches.
// Its hooks are safe for concurrent engines; Prometheus collectors are
// goroutine-safe.
type Recorder struct {
	Searches   *prometheus.CounterVec
	Discovered prometheus.Counter
	Relaxed    prometheus.Counter
	Finalized  prometheus.Counter
	Iterations prometheus.Histogram
	PathCost   prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg.
// Registering twice on the same registry returns the duplicate error.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astargrid_searches_total",
				Help: "Total number of finished searches by terminal status",
			},
			[]string{"status"}, // found, unreachable, aborted, failed
		),
		Discovered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "astargrid_cells_discovered_total",
			Help: "Total number of cells inserted into a frontier",
		}),
		Relaxed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "astargrid_relaxations_total",
			Help: "Total number of frontier cells that received a cheaper path",
		}),
		Finalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "astargrid_cells_finalized_total",
			Help: "Total number of finalized cells",
		}),
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "astargrid_search_iterations",
			Help:    "Iterations per finished search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		PathCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "astargrid_path_cost",
			Help:    "Path cost of searches that found the goal",
			Buckets: prometheus.ExponentialBuckets(10, 2, 14),
		}),
	}

	for _, c := range []prometheus.Collector{r.Searches, r.Discovered, r.Relaxed, r.Finalized, r.Iterations, r.PathCost} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return r, nil
}

// Observe records one finished search.
func (r *Recorder) Observe(res astar.Result) {
	r.Searches.WithLabelValues(res.Status.String()).Inc()
	r.Iterations.Observe(float64(res.Iterations))
	if res.Status == astar.StatusFound {
		r.PathCost.Observe(float64(res.Cost))
	}
}

// Hooks returns engine callbacks feeding this recorder.
func (r *Recorder) Hooks() astar.Hooks {
	return astar.Hooks{
		OnDiscover: func(int) { r.Discovered.Inc() },
		OnRelax:    func(int) { r.Relaxed.Inc() },
		OnFinalize: func(int) { r.Finalized.Inc() },
		OnFinish:   r.Observe,
	}
}
