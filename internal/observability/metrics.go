// Package observability holds process-wide metrics and tracing setup.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamSuccessGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "upstream",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful OctoFit API response per endpoint.",
	}, []string{"endpoint"})

	pageRenderCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "pages",
		Name:      "renders_total",
		Help:      "Number of page renders grouped by page and view state.",
	}, []string{"page", "state"})
)

func init() {
	prometheus.MustRegister(upstreamSuccessGauge, pageRenderCounter)
}

// RecordUpstreamSuccess updates the per-endpoint success watermark.
func RecordUpstreamSuccess(endpoint string, ts time.Time) {
	if ts.IsZero() {
		return
	}
	upstreamSuccessGauge.WithLabelValues(endpoint).Set(float64(ts.Unix()))
}

// RecordPageRender counts a rendered page in the given state.
func RecordPageRender(page, state string) {
	pageRenderCounter.WithLabelValues(page, state).Inc()
}

// UpstreamLastSuccess exposes the success watermark for assertions in tests.
func UpstreamLastSuccess(endpoint string) prometheus.Gauge {
	return upstreamSuccessGauge.WithLabelValues(endpoint)
}

// PageRenders exposes the counter for assertions in tests.
func PageRenders(page, state string) prometheus.Counter {
	return pageRenderCounter.WithLabelValues(page, state)
}
