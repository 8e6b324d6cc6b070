package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HydrationSkips counts recommendation candidates that could not be
	// hydrated (deleted or missing title). Non-fatal by design.
	HydrationSkips = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "movieapi",
			Name:      "hydration_skips_total",
			Help:      "Recommendation candidates skipped because the title could not be hydrated",
		},
	)

	// MappingFallbacks counts external user ids that fell back to the
	// default recommendation key.
	MappingFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "movieapi",
			Name:      "user_key_mapping_fallbacks_total",
			Help:      "External user ids that could not be parsed into a recommendation key",
		},
	)
)

func init() {
	prometheus.MustRegister(HydrationSkips)
	prometheus.MustRegister(MappingFallbacks)
}
