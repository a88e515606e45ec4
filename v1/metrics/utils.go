package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter registers a CounterVec, or returns the one already registered
// under the same descriptor.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	return registerOrReuse(m.registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels))
}

// CreateHistogram registers a HistogramVec. Nil buckets means prometheus.DefBuckets.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	return registerOrReuse(m.registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: buckets,
	}, labels))
}

// CreateGauge registers a GaugeVec.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	return registerOrReuse(m.registerer, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	}, labels))
}

func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
