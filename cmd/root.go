// Package cmd hosts the footprint command line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ecomodal/footprint/app"
	"github.com/ecomodal/footprint/config"
	"github.com/ecomodal/footprint/core/catalog"
	"github.com/ecomodal/footprint/core/controls"
	coremetrics "github.com/ecomodal/footprint/core/metrics"
	"github.com/ecomodal/footprint/core/model"
	"github.com/ecomodal/footprint/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Transport emission calculator",
	Long:  "Compares the greenhouse gas footprint of transport modes per trip,\nserved as an interactive web widget or computed from the command line.",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file, builtin defaults when empty")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}

// loadCatalog builds the emission catalog the configuration points at.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

// tripRequestFromFlags validates trip parameters against the widget control
// ranges before computing.
func tripRequestFromFlags(dataset string, distanceKm, passengers int) (model.TripRequest, error) {
	ds, err := model.ParseDataset(dataset)
	if err != nil {
		return model.TripRequest{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	if err := controls.ValidateDistance(distanceKm); err != nil {
		return model.TripRequest{}, err
	}
	if err := controls.ValidatePassengers(passengers); err != nil {
		return model.TripRequest{}, err
	}
	return model.TripRequest{Dataset: ds, DistanceKm: float64(distanceKm), Passengers: passengers}, nil
}

// recordUsage forwards one-shot usage records to the configured sinks. The
// CLI has no long-lived collector, records go to the sinks directly.
func recordUsage(cfg *config.Config, compute coremetrics.ComputeRecord, renders ...coremetrics.RenderRecord) {
	if len(cfg.Metrics.Sinks) == 0 {
		return
	}
	logg := logger.New("cli")
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		logg.Warnf("metrics sinks: %v", err)
		return
	}
	defer func() {
		if c, ok := sink.(interface{ Close() }); ok {
			c.Close()
		}
	}()
	if err := sink.RecordCompute(compute); err != nil {
		logg.Warnf("record compute: %v", err)
	}
	if r, ok := sink.(coremetrics.RenderRecorder); ok {
		for _, rec := range renders {
			if err := r.RecordRender(rec); err != nil {
				logg.Warnf("record render: %v", err)
			}
		}
	}
}

// countingWriter tracks how many bytes a renderer produced.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
