package events

import "time"

// RenderEvent is published after a result was rendered for a client.
// Format is the output kind: "table", "chart", "png", "json" or "csv".
type RenderEvent struct {
	Format   string
	Bytes    int
	Duration time.Duration
	Time     time.Time
}
