package metrics

import (
	coremetrics "github.com/ecomodal/footprint/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records calculator activity in Prometheus metrics.
type PromSink struct {
	computations *prometheus.CounterVec
	renders      *prometheus.HistogramVec
	catalog      prometheus.Gauge
}

// NewPromSink registers calculator metrics on the default Prometheus
// registerer. The metrics HTTP server is started separately from the
// configured metrics listen address.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	computations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trip_computations_total",
		Help: "Total number of trip emission computations",
	}, []string{"dataset", "source"})
	renders := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "render_duration_seconds",
		Help:    "Time spent rendering a computation result",
		Buckets: prometheus.DefBuckets,
	}, []string{"format"})
	catalog := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_modes",
		Help: "Number of transport modes in the emission catalog",
	})

	if err := reg.Register(computations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			computations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(renders); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			renders = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(catalog); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			catalog = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{computations: computations, renders: renders, catalog: catalog}, nil
}

// RecordCompute increments the computation counter.
func (s *PromSink) RecordCompute(rec coremetrics.ComputeRecord) error {
	s.computations.WithLabelValues(rec.Dataset.String(), rec.Source).Inc()
	return nil
}

// RecordRender observes the render duration histogram.
func (s *PromSink) RecordRender(rec coremetrics.RenderRecord) error {
	s.renders.WithLabelValues(rec.Format).Observe(rec.Duration.Seconds())
	return nil
}

// RecordCatalogSize sets the gauge to the number of catalogued modes.
func (s *PromSink) RecordCatalogSize(size int) error {
	if s.catalog != nil {
		s.catalog.Set(float64(size))
	}
	return nil
}
