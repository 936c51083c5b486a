package metrics

import (
	"time"

	"github.com/ecomodal/footprint/core/model"
)

// ComputeRecord is a flat record of one trip computation to be recorded.
type ComputeRecord struct {
	Dataset    model.Dataset
	DistanceKm float64
	Passengers int
	Emissions  []EmissionValue
	Source     string
	Duration   time.Duration
	Time       time.Time
}

// EmissionValue is one mode's figure inside a compute record.
type EmissionValue struct {
	Mode   model.Mode
	KgCO2e float64
	NoData bool
}

// MetricsSink records trip computations for observability purposes.
type MetricsSink interface {
	RecordCompute(rec ComputeRecord) error
}

// RenderRecord captures one finished render of a result.
type RenderRecord struct {
	Format   string
	Bytes    int
	Duration time.Duration
	Time     time.Time
}

// RenderRecorder is implemented by sinks able to record render timings.
type RenderRecorder interface {
	RecordRender(rec RenderRecord) error
}

// CatalogSizeRecorder records the number of catalogued modes.
type CatalogSizeRecorder interface {
	RecordCatalogSize(size int) error
}

// NopSink implements every recorder interface with no-op methods.
type NopSink struct{}

func (NopSink) RecordCompute(ComputeRecord) error { return nil }

func (NopSink) RecordRender(RenderRecord) error { return nil }
func (NopSink) RecordCatalogSize(int) error     { return nil }
