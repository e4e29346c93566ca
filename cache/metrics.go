package cache

import "github.com/rcrowley/go-metrics"

const DefaultMetricsPrefix = "lru"

// Metric names registered in Config.Metrics. Full name is MetricName(Config.MetricsPrefix, metric).
const (
	HitsMetric      = "hits"
	MissesMetric    = "misses"
	InsertsMetric   = "inserts"
	UpdatesMetric   = "updates"
	EvictionsMetric = "evictions"
	EntriesMetric   = "entries"
)

// MetricName returns registry name of cache metric.
// Caches that share registry should have different prefixes, or they will share counters.
func MetricName(prefix, metric string) string {
	if prefix == "" {
		prefix = DefaultMetricsPrefix
	}
	return prefix + "." + metric
}

type stats struct {
	hits      metrics.Counter
	misses    metrics.Counter
	inserts   metrics.Counter
	updates   metrics.Counter
	evictions metrics.Counter
	entries   metrics.Gauge
}

func newStats(r metrics.Registry, prefix string) stats {
	if r == nil {
		return stats{
			hits:      metrics.NilCounter{},
			misses:    metrics.NilCounter{},
			inserts:   metrics.NilCounter{},
			updates:   metrics.NilCounter{},
			evictions: metrics.NilCounter{},
			entries:   metrics.NilGauge{},
		}
	}
	counter := func(metric string) metrics.Counter {
		return metrics.GetOrRegisterCounter(MetricName(prefix, metric), r)
	}
	return stats{
		hits:      counter(HitsMetric),
		misses:    counter(MissesMetric),
		inserts:   counter(InsertsMetric),
		updates:   counter(UpdatesMetric),
		evictions: counter(EvictionsMetric),
		entries:   metrics.GetOrRegisterGauge(MetricName(prefix, EntriesMetric), r),
	}
}
