package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ecomodal/footprint/core/model"
)

// Default PNG canvas size in points.
const (
	DefaultChartPNGWidth  = 480
	DefaultChartPNGHeight = 320
)

var barColor = color.RGBA{R: 46, G: 139, B: 87, A: 255}

// ChartPNG writes the result as a PNG bar chart with the mode names on the
// X axis and the fixed 0 to 100 kg CO2e value axis. Modes without data draw
// an empty slot. Width and height are the canvas size in points; values at
// or below zero select the defaults.
func ChartPNG(w io.Writer, res model.TripResult, width, height int) error {
	if width <= 0 {
		width = DefaultChartPNGWidth
	}
	if height <= 0 {
		height = DefaultChartPNGHeight
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("kg CO2e per passenger (%s, %g km, %d aboard)",
		res.Dataset, res.DistanceKm, res.Passengers)
	p.Y.Label.Text = "kg CO2e"
	p.Y.Min = 0
	p.Y.Max = ChartMaxKg

	values := make(plotter.Values, len(res.Emissions))
	names := make([]string, len(res.Emissions))
	for i, e := range res.Emissions {
		names[i] = e.Mode.String()
		if !e.NoData {
			values[i] = e.KgCO2e
		}
	}
	bars, err := plotter.NewBarChart(values, vg.Points(22))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = 0
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(names...)

	wt, err := p.WriterTo(vg.Points(float64(width)), vg.Points(float64(height)), "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
