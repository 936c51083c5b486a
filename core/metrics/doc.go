package metrics

// Package metrics defines interfaces and implementations for collecting
// calculator metrics. Sinks like PromSink and InfluxSink record trip
// computations, render timings and the catalog size and can be combined
// with NewMultiSink. The factory helpers return a MultiSink automatically
// when multiple sinks are configured; with none configured everything is
// discarded through NopSink.
