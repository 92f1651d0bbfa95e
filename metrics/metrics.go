// Package metrics exports path-search statistics to Prometheus.
//
// A Collector implements astar.Observer; pass it to astar.WithObserver and
// every completed search updates the counters and histograms below.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridstar/astar"
)

// Collector records search outcomes. It is safe for concurrent use.
type Collector struct {
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	expanded prometheus.Histogram
	length   prometheus.Histogram
}

// NewCollector registers the search metrics with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	c := &Collector{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridstar_searches_total",
			Help: "Total path searches by outcome status",
		}, []string{"status"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridstar_search_duration_seconds",
			Help:    "Path search duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),

		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridstar_search_expanded_cells",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),

		length: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridstar_path_steps",
			Help:    "Steps in returned paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	// Pre-create every status series so dashboards see zeros.
	for _, st := range astar.Statuses {
		c.searches.WithLabelValues(st.String())
	}

	return c
}

// ObserveSearch implements astar.Observer.
func (c *Collector) ObserveSearch(res astar.Result, elapsed time.Duration) {
	c.searches.WithLabelValues(res.Status.String()).Inc()
	c.duration.Observe(elapsed.Seconds())
	c.expanded.Observe(float64(res.Expanded))
	if res.Status == astar.StatusFound {
		c.length.Observe(res.Cost)
	}
}
