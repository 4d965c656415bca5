package diag

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PromSink counts events in Prometheus metrics registered on a caller-owned
// registry.
type PromSink struct {
	events  *prometheus.CounterVec
	pathLen *prometheus.HistogramVec
}

// NewPromSink registers the sink's collectors on reg. A nil reg registers
// on prometheus.DefaultRegisterer. Registering twice on the same registry
// panics, as promauto does.
func NewPromSink(reg prometheus.Registerer) *PromSink {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PromSink{
		// events counts lifecycle events by algorithm and kind
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvsearch_events_total",
			Help: "Search lifecycle events by algorithm and event kind",
		}, []string{"algorithm", "event"}),

		// pathLen tracks the length of paths found at goal
		pathLen: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvsearch_goal_path_length",
			Help:    "Number of actions in paths returned on reaching a goal",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
	}
}

// Record increments the event counter and observes goal path lengths.
func (s *PromSink) Record(e Event) {
	s.events.WithLabelValues(e.Algorithm, e.Kind.String()).Inc()
	if e.Kind == Goal {
		s.pathLen.WithLabelValues(e.Algorithm).Observe(float64(e.PathLen))
	}
}
