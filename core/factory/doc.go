// Package factory provides a small generic registry used to instantiate
// modules from configuration. A module is named by a type string and carries
// a map of raw settings; factories decode the settings into typed structs and
// return the concrete implementation. The metrics sinks are wired this way:
// the config file lists sink modules by type ("prometheus", "influx", "nop")
// and the registry builds them at startup.
//
// Example usage:
//
//	reg := factory.NewRegistry[metrics.MetricsSink]()
//	reg.Register("nop", func(conf map[string]any) (metrics.MetricsSink, error) {
//	    return metrics.NopSink{}, nil
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "nop"})
package factory
