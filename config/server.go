package config

import (
	"fmt"

	"github.com/ecomodal/footprint/render"
)

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	// Listen is the widget server address.
	Listen string `json:"listen"`
	// MetricsListen serves Prometheus scrapes when set. Empty disables the
	// metrics server.
	MetricsListen string `json:"metrics_listen"`
	// ChartWidth and ChartHeight size the chart PNG in points.
	ChartWidth  int `json:"chart_width"`
	ChartHeight int `json:"chart_height"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.ChartWidth == 0 {
		c.ChartWidth = render.DefaultChartPNGWidth
	}
	if c.ChartHeight == 0 {
		c.ChartHeight = render.DefaultChartPNGHeight
	}
}

// Validate checks mandatory fields.
func (c ServerConfig) Validate() error {
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart size %dx%d is not positive", c.ChartWidth, c.ChartHeight)
	}
	return nil
}
