package metrics

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCompute forwards the record to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordCompute(rec ComputeRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordCompute(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordRender forwards render records to the sinks that take them.
func (m *MultiSink) RecordRender(rec RenderRecord) error {
	for _, s := range m.Sinks {
		if r, ok := s.(RenderRecorder); ok {
			if err := r.RecordRender(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordCatalogSize forwards the catalog size to the sinks that take it.
func (m *MultiSink) RecordCatalogSize(size int) error {
	for _, s := range m.Sinks {
		if r, ok := s.(CatalogSizeRecorder); ok {
			if err := r.RecordCatalogSize(size); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes the sinks that hold external connections.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		if c, ok := s.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
