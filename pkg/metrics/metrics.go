package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drishti_upstream_requests_total",
			Help: "Total number of requests sent to the backend services.",
		},
		[]string{"method", "endpoint", "status"},
	)
	upstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drishti_upstream_request_duration_seconds",
			Help:    "Backend request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	syncRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drishti_sync_refresh_total",
			Help: "Resource refreshes by outcome (ok, error, stale, cancelled).",
		},
		[]string{"resource", "outcome"},
	)
	syncRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "drishti_sync_records",
			Help: "Records currently cached per resource.",
		},
		[]string{"resource"},
	)
	dispatchOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drishti_dispatch_outcomes_total",
			Help: "Report/dispatch saga terminal states.",
		},
		[]string{"state"},
	)
	mediaAnalyses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drishti_media_analyses_total",
			Help: "Frame analyses by outcome.",
		},
		[]string{"outcome"},
	)
	registerOnce sync.Once
)

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(upstreamRequests, upstreamLatency, syncRefreshes, syncRecords, dispatchOutcomes, mediaAnalyses)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveUpstream records one backend call. status 0 means a transport error.
func ObserveUpstream(method, endpoint string, status int, d time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status/100) + "xx"
	}
	upstreamRequests.WithLabelValues(method, endpoint, label).Inc()
	upstreamLatency.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func IncSyncRefresh(resource, outcome string) {
	syncRefreshes.WithLabelValues(resource, outcome).Inc()
}

func SetSyncRecords(resource string, n int) {
	syncRecords.WithLabelValues(resource).Set(float64(n))
}

func IncDispatchOutcome(state string) {
	dispatchOutcomes.WithLabelValues(state).Inc()
}

func IncMediaAnalysis(outcome string) {
	mediaAnalyses.WithLabelValues(outcome).Inc()
}
