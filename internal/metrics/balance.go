package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceQueryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightnode7000",
		Subsystem: "balance",
		Name:      "query_total",
		Help:      "Count of balance queries.",
	}, []string{"status"})

	balanceQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lightnode7000",
		Subsystem: "balance",
		Name:      "query_duration_seconds",
		Help:      "Duration of balance queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	balanceQueryAssets = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lightnode7000",
		Subsystem: "balance",
		Name:      "query_assets",
		Help:      "Number of assets resolved per balance query.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"status"})

	balanceRecomputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightnode7000",
		Subsystem: "balance",
		Name:      "recompute_total",
		Help:      "Count of per-asset balance recomputations.",
	}, []string{"status"})

	balanceRecomputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lightnode7000",
		Subsystem: "balance",
		Name:      "recompute_duration_seconds",
		Help:      "Duration of per-asset balance recomputations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Balance tracks metrics for the balance cache engine.
type Balance struct{}

// NewBalance creates a Balance metrics collector.
func NewBalance() *Balance {
	return &Balance{}
}

// ObserveQuery records a balance query outcome.
func (m Balance) ObserveQuery(err error, assets int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	balanceQueryTotal.WithLabelValues(status).Inc()
	balanceQueryDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	balanceQueryAssets.WithLabelValues(status).Observe(float64(assets))
}

// ObserveRecompute records one per-asset recomputation.
func (m Balance) ObserveRecompute(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	balanceRecomputeTotal.WithLabelValues(status).Inc()
	balanceRecomputeDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
