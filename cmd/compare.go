package cmd

import (
	"fmt"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecomodal/footprint/config"
	"github.com/ecomodal/footprint/core/calc"
	"github.com/ecomodal/footprint/core/controls"
	"github.com/ecomodal/footprint/core/model"
)

var (
	compareDistance   int
	comparePassengers int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the OWID and PSI datasets for one trip",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().IntVarP(&compareDistance, "distance", "k", controls.DefaultDistanceKm, "trip distance in km")
	compareCmd.Flags().IntVarP(&comparePassengers, "passengers", "p", controls.DefaultPassengers, "people sharing a car")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := controls.ValidateDistance(compareDistance); err != nil {
		return err
	}
	if err := controls.ValidatePassengers(comparePassengers); err != nil {
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

	comps, err := calc.CompareDatasets(cat, float64(compareDistance), comparePassengers)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprint(tw, "MODE\tOWID KG\tPSI KG\tDELTA KG\n"); err != nil {
		return err
	}
	for _, c := range comps {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Mode, formatKg(c.OWID), formatKg(c.PSI), formatDelta(c)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if top, ok := calc.MaxDivergence(comps); ok {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "largest gap: %s (%.1f kg)\n", top.Mode, math.Abs(top.DeltaKg))
	}
	return err
}

func formatKg(e model.Emission) string {
	if e.NoData {
		return "n/a"
	}
	return strconv.FormatFloat(e.KgCO2e, 'f', 1, 64)
}

func formatDelta(c calc.ModeComparison) string {
	if !c.Comparable {
		return "n/a"
	}
	return strconv.FormatFloat(c.DeltaKg, 'f', 1, 64)
}
