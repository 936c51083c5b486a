package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecomodal/footprint/config"
	"github.com/ecomodal/footprint/core/catalog"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Print the emission factor catalog",
	RunE:  runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

func runModes(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprint(tw, "MODE\tOWID KG/KM\tPSI KG/KM\n"); err != nil {
		return err
	}
	for _, e := range cat.Entries() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Mode, formatFactor(e.OWID), formatFactor(e.PSI)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatFactor(f catalog.Factor) string {
	if !f.Known {
		return "n/a"
	}
	return strconv.FormatFloat(f.KgPerKm, 'f', -1, 64)
}
