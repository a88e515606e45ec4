package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns an isolated Prometheus registry, the HTTP server exposing it,
// and the operation metrics fed by ObserveOperation.
type Metrics struct {
	// Server serves the registry on /metrics.
	Server *http.Server

	// Registry is private to this service to avoid collisions with other
	// libraries registering on the default registry.
	Registry *prometheus.Registry

	registerer prometheus.Registerer

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationSize     *prometheus.HistogramVec
}

// NewMetrics creates the registry, wraps it with a constant service label,
// registers the operation metrics (plus default collectors if enabled) and
// prepares, but does not start, the HTTP server.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "dashsearch"})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// every metric gets service="<cfg.ServiceName>"
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrapped,
	}

	m.operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "operations_total",
		Help:      "Total number of client operations by component, operation and status.",
	}, []string{"component", "operation", "status"})

	m.operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of client operations in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"component", "operation"})

	m.operationSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "operation_size",
		Help:      "Items processed per operation (documents, results or tokens).",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"component", "operation"})

	wrapped.MustRegister(m.operationsTotal, m.operationDuration, m.operationSize)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	addr := cfg.Address
	if addr == "" {
		addr = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return m
}
