// Package render turns trip results into human readable output: an aligned
// text table, a fixed-scale ASCII bar chart and a PNG chart. Rendering is
// deterministic, the same result always produces the same bytes. Figures are
// rounded to one decimal place here and nowhere earlier.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ecomodal/footprint/core/model"
)

// ChartMaxKg is the fixed upper bound of the chart value axis. The axis does
// not rescale with the data so bars stay comparable across control changes.
const ChartMaxKg = 100.0

// DefaultChartWidth is the bar width used when the caller passes none.
const DefaultChartWidth = 50

// Table writes the result as an aligned table, one row per mode. Modes
// without data in the selected dataset show n/a.
func Table(w io.Writer, res model.TripResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprint(tw, "MODE\tKG CO2E\n"); err != nil {
		return err
	}
	for _, e := range res.Emissions {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", e.Mode, formatKg(e)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// BarChart writes an ASCII bar chart with a fixed 0 to 100 kg CO2e axis.
// Values above the axis bound draw a full bar. Width is the bar area width
// in characters.
func BarChart(w io.Writer, res model.TripResult, width int) error {
	if width <= 0 {
		width = DefaultChartWidth
	}
	labelW := 0
	for _, e := range res.Emissions {
		if n := len(e.Mode.String()); n > labelW {
			labelW = n
		}
	}
	for _, e := range res.Emissions {
		bar := ""
		if !e.NoData {
			n := int(math.Round(e.KgCO2e / ChartMaxKg * float64(width)))
			if n > width {
				n = width
			}
			if n < 0 {
				n = 0
			}
			bar = strings.Repeat("#", n)
		}
		if _, err := fmt.Fprintf(w, "%-*s |%-*s| %s\n", labelW, e.Mode, width, bar, formatKg(e)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-*s  0%*s kg CO2e\n", labelW, "", width-1, strconv.Itoa(int(ChartMaxKg)))
	return err
}

func formatKg(e model.Emission) string {
	if e.NoData {
		return "n/a"
	}
	return strconv.FormatFloat(e.KgCO2e, 'f', 1, 64)
}
