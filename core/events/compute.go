package events

import (
	"time"

	"github.com/ecomodal/footprint/core/model"
)

// ComputeEvent is published after every successful trip computation.
// Source tells which surface asked: "http", "cli" or "watch".
type ComputeEvent struct {
	Request  model.TripRequest
	Result   model.TripResult
	Source   string
	Duration time.Duration
	Time     time.Time
}
