// Package eventbus carries the calculator's observability events from the
// surfaces that produce them to the collector feeding the metrics sinks.
package eventbus

// Event is an arbitrary event passed on the bus. Compute and render events
// share one stream; consumers type-switch.
type Event any

// EventBus is the publish/subscribe contract the surfaces depend on.
type EventBus interface {
	Publish(Event)
	Subscribe() <-chan Event
	Unsubscribe(<-chan Event)
	Close()
}

// Bus is the default EventBus implementation.
type Bus = TypedBus[Event]

// New creates a new Bus.
func New() *Bus { return NewTyped[Event]() }
