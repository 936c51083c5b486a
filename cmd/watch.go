package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ecomodal/footprint/config"
	"github.com/ecomodal/footprint/core/calc"
	"github.com/ecomodal/footprint/core/controls"
	"github.com/ecomodal/footprint/core/events"
	corelogger "github.com/ecomodal/footprint/core/logger"
	coremetrics "github.com/ecomodal/footprint/core/metrics"
	"github.com/ecomodal/footprint/core/model"
	"github.com/ecomodal/footprint/infra/logger"
	"github.com/ecomodal/footprint/infra/metrics"
	"github.com/ecomodal/footprint/internal/eventbus"
	"github.com/ecomodal/footprint/render"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive terminal session with live re-rendering",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sinks: %w", err)
	}
	defer func() {
		if c, ok := sink.(interface{ Close() }); ok {
			c.Close()
		}
	}()
	bus := eventbus.New()
	defer bus.Close()
	metrics.StartEventCollector(cmd.Context(), bus, sink)

	session := &watchSession{
		rec: calc.New(cat),
		out: cmd.OutOrStdout(),
		bus: bus,
		log: logger.New("watch"),
		id:  uuid.NewString(),
	}
	return session.run(cmd.InOrStdin())
}

const watchHelp = "commands: dataset|ds owid|psi, distance|d N, passengers|p N, + or - to step distance, show, help, quit"

// watchSession owns one control panel. Accepted control changes re-render
// through the registered change handler, synchronously on the input loop.
type watchSession struct {
	rec   calc.Recalculator
	panel *controls.Panel
	out   io.Writer
	bus   eventbus.EventBus
	log   corelogger.Logger
	id    string
}

func (s *watchSession) run(in io.Reader) error {
	s.panel = controls.NewPanel()
	s.panel.OnChange(func(ev controls.ChangeEvent) {
		s.log.Debugw("control changed", map[string]any{
			"session": s.id,
			"control": ev.Control.String(),
		})
		s.render(ev.Values)
	})
	s.log.Infof("watch session %s started", s.id)

	s.render(s.panel.Values())
	fmt.Fprintln(s.out, watchHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		quit, err := s.handle(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			break
		}
	}
	s.log.Infof("watch session %s ended", s.id)
	return scanner.Err()
}

func (s *watchSession) handle(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "q", "exit":
		return true, nil
	case "help", "h":
		fmt.Fprintln(s.out, watchHelp)
		return false, nil
	case "show":
		s.render(s.panel.Values())
		return false, nil
	case "+":
		s.panel.StepDistance(1)
		return false, nil
	case "-":
		s.panel.StepDistance(-1)
		return false, nil
	case "dataset", "ds":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: dataset owid|psi")
		}
		ds, err := model.ParseDataset(fields[1])
		if err != nil {
			return false, err
		}
		return false, s.panel.SetDataset(ds)
	case "distance", "d":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: distance N")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("distance %q is not an integer", fields[1])
		}
		return false, s.panel.SetDistance(n)
	case "passengers", "p":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: passengers N")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("passengers %q is not an integer", fields[1])
		}
		return false, s.panel.SetPassengers(n)
	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (s *watchSession) render(v controls.Values) {
	start := time.Now()
	res, err := s.rec.Compute(v.TripRequest())
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	s.publish(events.ComputeEvent{
		Request:  v.TripRequest(),
		Result:   res,
		Source:   "watch",
		Duration: time.Since(start),
		Time:     time.Now(),
	})

	fmt.Fprintf(s.out, "\n%s, %d km, %d aboard\n\n", v.Dataset, v.DistanceKm, v.Passengers)

	tableStart := time.Now()
	cw := &countingWriter{w: s.out}
	if err := render.Table(cw, res); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	s.publish(events.RenderEvent{Format: "table", Bytes: cw.n, Duration: time.Since(tableStart), Time: time.Now()})

	fmt.Fprintln(s.out)

	chartStart := time.Now()
	cw = &countingWriter{w: s.out}
	if err := render.BarChart(cw, res, 0); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	s.publish(events.RenderEvent{Format: "chart", Bytes: cw.n, Duration: time.Since(chartStart), Time: time.Now()})
}

func (s *watchSession) publish(ev eventbus.Event) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}
