// Package metrics holds the Prometheus collectors exposed at /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "xapi"

// Fetch outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	LRSFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lrs_fetch_total",
		Help:      "Statement fetches from the LRS by outcome.",
	}, []string{"outcome"})

	LRSFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lrs_fetch_duration_seconds",
		Help:      "Latency of statement fetches from the LRS.",
		Buckets:   prometheus.DefBuckets,
	})

	ActivityMatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_match_total",
		Help:      "Configured activities resolved, by the matcher tier that resolved them.",
	}, []string{"tier"})
)

// ObserveFetch records one LRS fetch that started at start.
func ObserveFetch(start time.Time, err error) {
	LRSFetchDuration.Observe(time.Since(start).Seconds())
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	LRSFetchTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
