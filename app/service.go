// Package app wires configuration, catalog, sinks and the HTTP surface into
// a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecomodal/footprint/api/widget"
	"github.com/ecomodal/footprint/config"
	"github.com/ecomodal/footprint/core/calc"
	"github.com/ecomodal/footprint/core/catalog"
	coremetrics "github.com/ecomodal/footprint/core/metrics"
	"github.com/ecomodal/footprint/infra/logger"
	"github.com/ecomodal/footprint/infra/metrics"
	"github.com/ecomodal/footprint/internal/eventbus"
)

// Service orchestrates the calculator, its HTTP surface and the metric sinks.
type Service struct {
	Catalog *catalog.Catalog
	Handler http.Handler

	rec           calc.Recalculator
	bus           eventbus.EventBus
	sink          coremetrics.MetricsSink
	log           logger.Logger
	listen        string
	metricsListen string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	cat := catalog.Builtin()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		cat = loaded
		logg.Infof("catalog factors loaded from %s", cfg.Catalog.Path)
	}

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sinks: %w", err)
	}
	if sizer, ok := sink.(coremetrics.CatalogSizeRecorder); ok {
		if err := sizer.RecordCatalogSize(cat.Len()); err != nil {
			logg.Warnf("catalog size gauge: %v", err)
		}
	}

	bus := eventbus.New()
	rec := calc.New(cat)

	mux := http.NewServeMux()
	mux.Handle("/", widget.NewPageHandler())
	mux.Handle("/api/trip", widget.NewTripHandler(rec, bus))
	mux.Handle("/api/chart", widget.NewChartHandler(rec, bus, cfg.Server.ChartWidth, cfg.Server.ChartHeight))
	mux.Handle("/api/catalog", widget.NewCatalogHandler(cat))
	mux.Handle("/healthz", widget.NewHealthHandler())

	return &Service{
		Catalog:       cat,
		Handler:       widget.WithRequestLog(logger.New("widget"), mux),
		rec:           rec,
		bus:           bus,
		sink:          sink,
		log:           logg,
		listen:        cfg.Server.Listen,
		metricsListen: cfg.Server.MetricsListen,
	}, nil
}

// Recalculator exposes the calculator backed by the service catalog.
func (s *Service) Recalculator() calc.Recalculator { return s.rec }

// Run starts the event collector and the HTTP servers, then blocks until the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	metrics.StartEventCollector(ctx, s.bus, s.sink)

	if s.metricsListen != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.metricsListen); err != nil {
				s.log.Errorf("metrics server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.listen, Handler: s.Handler}
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("widget server listening on %s", s.listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
