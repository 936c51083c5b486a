package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecomodal/footprint/config"
	"github.com/ecomodal/footprint/core/calc"
	"github.com/ecomodal/footprint/core/controls"
	"github.com/ecomodal/footprint/core/model"
	"github.com/ecomodal/footprint/pkg/export"
)

var (
	sweepDataset    string
	sweepPassengers int
	sweepFormat     string
	sweepOut        string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Export emissions across the whole distance range",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().StringVarP(&sweepDataset, "dataset", "s", controls.DefaultDataset.String(), "emission dataset, OWID or PSI")
	sweepCmd.Flags().IntVarP(&sweepPassengers, "passengers", "p", controls.DefaultPassengers, "people sharing a car")
	sweepCmd.Flags().StringVarP(&sweepFormat, "format", "f", "csv", "output format: csv or json")
	sweepCmd.Flags().StringVarP(&sweepOut, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	ds, err := model.ParseDataset(sweepDataset)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	if err := controls.ValidatePassengers(sweepPassengers); err != nil {
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
	rec := calc.New(cat)

	results := make([]model.TripResult, 0, (controls.DistanceMax-controls.DistanceMin)/controls.DistanceStep+1)
	for km := controls.DistanceMin; km <= controls.DistanceMax; km += controls.DistanceStep {
		res, err := rec.Compute(model.TripRequest{Dataset: ds, DistanceKm: float64(km), Passengers: sweepPassengers})
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if sweepOut != "" {
		f, err := os.Create(sweepOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", sweepOut, err)
		}
		defer f.Close()
		out = f
	}
	switch sweepFormat {
	case "csv":
		return export.WriteSweepCSV(out, results)
	case "json":
		return export.WriteSweepJSON(out, results)
	default:
		return fmt.Errorf("%w: unknown format %q", model.ErrInvalidInput, sweepFormat)
	}
}
