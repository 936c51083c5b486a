package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecomodal/footprint/config"
	"github.com/ecomodal/footprint/core/calc"
	"github.com/ecomodal/footprint/core/controls"
	"github.com/ecomodal/footprint/core/events"
	coremetrics "github.com/ecomodal/footprint/core/metrics"
	"github.com/ecomodal/footprint/core/model"
	"github.com/ecomodal/footprint/pkg/export"
	"github.com/ecomodal/footprint/render"
)

var (
	calcDataset    string
	calcDistance   int
	calcPassengers int
	calcFormat     string
	calcChartPath  string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute emissions for one trip",
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&calcDataset, "dataset", "s", controls.DefaultDataset.String(), "emission dataset, OWID or PSI")
	calcCmd.Flags().IntVarP(&calcDistance, "distance", "k", controls.DefaultDistanceKm, "trip distance in km")
	calcCmd.Flags().IntVarP(&calcPassengers, "passengers", "p", controls.DefaultPassengers, "people sharing a car")
	calcCmd.Flags().StringVarP(&calcFormat, "format", "f", "table", "output format: table, json or csv")
	calcCmd.Flags().StringVar(&calcChartPath, "chart", "", "write the chart PNG to this path")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	req, err := tripRequestFromFlags(calcDataset, calcDistance, calcPassengers)
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := calc.New(cat).Compute(req)
	if err != nil {
		return err
	}
	computeDuration := time.Since(start)

	renderStart := time.Now()
	cw := &countingWriter{w: cmd.OutOrStdout()}
	switch calcFormat {
	case "table":
		err = render.Table(cw, res)
	case "json":
		err = export.WriteJSON(cw, res)
	case "csv":
		err = export.WriteCSV(cw, res)
	default:
		return fmt.Errorf("%w: unknown format %q", model.ErrInvalidInput, calcFormat)
	}
	if err != nil {
		return err
	}

	if calcChartPath != "" {
		f, err := os.Create(calcChartPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", calcChartPath, err)
		}
		if err := render.ChartPNG(f, res, 0, 0); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	now := time.Now()
	recordUsage(cfg,
		coremetrics.FromComputeEvent(events.ComputeEvent{
			Request:  req,
			Result:   res,
			Source:   "cli",
			Duration: computeDuration,
			Time:     now,
		}),
		coremetrics.FromRenderEvent(events.RenderEvent{
			Format:   calcFormat,
			Bytes:    cw.n,
			Duration: now.Sub(renderStart),
			Time:     now,
		}))
	return nil
}
