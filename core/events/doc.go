// Package events defines the calculator events emitted on the event bus.
//
// Available event types:
//   - ComputeEvent: one finished trip computation
//   - RenderEvent: one finished render of a computation result
package events
