package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus returns the registry served on the metrics port. Runtime
// metrics are limited to GC and scheduler ones.
func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.MetricsGC,
				collectors.MetricsScheduler,
			),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			Namespace: "fitlog",
		}),
	)
	reg.MustRegister(extraCollectors...)

	return reg
}
