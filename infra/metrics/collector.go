package metrics

import (
	"context"

	"github.com/ecomodal/footprint/core/events"
	coremetrics "github.com/ecomodal/footprint/core/metrics"
	"github.com/ecomodal/footprint/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// compute and render events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.ComputeEvent:
					_ = sink.RecordCompute(coremetrics.FromComputeEvent(e))
				case events.RenderEvent:
					if r, ok := sink.(coremetrics.RenderRecorder); ok {
						_ = r.RecordRender(coremetrics.FromRenderEvent(e))
					}
				}
			}
		}
	}()
}
