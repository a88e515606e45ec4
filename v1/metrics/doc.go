// Package metrics provides Prometheus-based metrics for the dashsearch clients.
//
// # Architecture
//
//   - MetricsCollector interface: observer plus metric factories
//   - Metrics struct: implementation backed by an isolated registry
//   - NewMetrics constructor: returns *Metrics
//   - FXModule: provides *Metrics, MetricsCollector and observability.Observer
//
// Metrics implements observability.Observer, so it can be handed straight to
// the dashvector, embedding and dashsearch clients. Every observed operation
// updates:
//
//   - operations_total{component,operation,status}
//   - operation_duration_seconds{component,operation}
//   - operation_size{component,operation} (only when Size > 0)
//
// All metrics carry a constant service label and, when Config.Namespace is
// set, the namespace prefix.
//
// # Direct Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    EnableDefaultCollectors: true,
//	    ServiceName:             "dashsearch",
//	})
//	go m.Server.ListenAndServe()
//
//	vec, _ := dashvector.NewClient(cfg, dashvector.WithObserver(m))
//
// # Custom Metrics
//
//	indexed := m.CreateCounter("records_indexed_total", "Records added.", []string{"collection"})
//	indexed.WithLabelValues("poems").Inc()
//
// # Configuration
//
// NewConfig reads METRICS_ADDRESS (default ":9090"), METRICS_ENABLE_DEFAULT_COLLECTORS
// (default true), METRICS_NAMESPACE and METRICS_SERVICE_NAME.
package metrics
