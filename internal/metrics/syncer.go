package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncerIngestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightnode7000",
		Subsystem: "syncer",
		Name:      "ingest_total",
		Help:      "Count of block ingestions.",
	}, []string{"status"})

	syncerIngestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lightnode7000",
		Subsystem: "syncer",
		Name:      "ingest_duration_seconds",
		Help:      "Duration of block ingestion.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	syncerIngestTxs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lightnode7000",
		Subsystem: "syncer",
		Name:      "ingest_transactions",
		Help:      "Number of transactions per ingested block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"status"})

	syncerChainIndex = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lightnode7000",
		Subsystem: "syncer",
		Name:      "chain_index",
		Help:      "Highest block index confirmed contiguous from genesis.",
	})

	syncerUnlinkedBlocks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lightnode7000",
		Subsystem: "syncer",
		Name:      "unlinked_blocks",
		Help:      "Number of persisted blocks awaiting lower indexes.",
	})
)

// Syncer tracks metrics for block ingestion and chain linking.
type Syncer struct{}

// NewSyncer creates a Syncer metrics collector.
func NewSyncer() *Syncer {
	return &Syncer{}
}

// ObserveIngest records the outcome and duration of one block ingestion.
func (m Syncer) ObserveIngest(err error, txs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncerIngestTotal.WithLabelValues(status).Inc()
	syncerIngestDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	syncerIngestTxs.WithLabelValues(status).Observe(float64(txs))
}

// SetPosition records the current chain position.
func (m Syncer) SetPosition(index int64, unlinked int) {
	syncerChainIndex.Set(float64(index))
	syncerUnlinkedBlocks.Set(float64(unlinked))
}
