package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "apiclient",
		Name:      "requests_total",
		Help:      "Number of OctoFit API requests grouped by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "apiclient",
		Name:      "request_duration_seconds",
		Help:      "Latency of OctoFit API requests, including failed ones.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration)
}

func recordRequest(endpoint, outcome string, elapsed time.Duration) {
	requestCounter.WithLabelValues(endpoint, outcome).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
