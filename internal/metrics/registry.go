package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registryRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightnode7000",
		Subsystem: "asset_registry",
		Name:      "refresh_total",
		Help:      "Count of asset registry refreshes.",
	}, []string{"status"})

	registryRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lightnode7000",
		Subsystem: "asset_registry",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of asset registry refreshes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	registryAssetsKnown = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lightnode7000",
		Subsystem: "asset_registry",
		Name:      "assets_known",
		Help:      "Number of asset definitions in the registry cache.",
	})
)

// Registry tracks metrics for the asset registry.
type Registry struct{}

// NewRegistry creates a Registry metrics collector.
func NewRegistry() *Registry {
	return &Registry{}
}

// ObserveRefresh records one registry refresh.
func (m Registry) ObserveRefresh(err error, assets int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	registryRefreshTotal.WithLabelValues(status).Inc()
	registryRefreshDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		registryAssetsKnown.Set(float64(assets))
	}
}
