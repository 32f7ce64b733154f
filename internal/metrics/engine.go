package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	EngineQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moltscope",
			Name:      "engine_queries_total",
			Help:      "Total number of engine queries by kind",
		},
		[]string{"kind"},
	)

	EngineQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moltscope",
			Name:      "engine_query_duration_seconds",
			Help:      "Engine query duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"kind"},
	)

	SnapshotReloadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "moltscope",
			Name:      "snapshot_reloads_total",
			Help:      "Total number of corpus snapshot reloads",
		},
	)

	SnapshotPosts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "moltscope",
			Name:      "snapshot_posts",
			Help:      "Number of posts in the active snapshot",
		},
	)

	SnapshotCommunities = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "moltscope",
			Name:      "snapshot_communities",
			Help:      "Number of communities in the active snapshot",
		},
	)
)

// RegisterEngineMetrics registers the engine metrics. Called explicitly
// from the composition root (no init()).
func RegisterEngineMetrics() {
	prometheus.MustRegister(EngineQueriesTotal)
	prometheus.MustRegister(EngineQueryDuration)
	prometheus.MustRegister(SnapshotReloadsTotal)
	prometheus.MustRegister(SnapshotPosts)
	prometheus.MustRegister(SnapshotCommunities)
}
