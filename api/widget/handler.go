// Package widget exposes the interactive calculator over HTTP: the control
// page, the JSON trip endpoint, the PNG chart endpoint and the catalog dump.
// The server holds no session state; every request recomputes from its own
// parameters.
package widget

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecomodal/footprint/core/calc"
	"github.com/ecomodal/footprint/core/catalog"
	"github.com/ecomodal/footprint/core/controls"
	"github.com/ecomodal/footprint/core/events"
	"github.com/ecomodal/footprint/core/model"
	"github.com/ecomodal/footprint/internal/eventbus"
	"github.com/ecomodal/footprint/render"
)

// NewTripHandler returns the computation endpoint: GET /api/trip.
// Missing query parameters fall back to the control defaults, out-of-range
// or malformed ones produce 400.
func NewTripHandler(rec calc.Recalculator, bus eventbus.EventBus) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		req, err := parseTripQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}
		start := time.Now()
		res, err := rec.Compute(req)
		if err != nil {
			writeError(w, err)
			return
		}
		publish(bus, events.ComputeEvent{Request: req, Result: res, Source: "http", Duration: time.Since(start), Time: time.Now()})

		renderStart := time.Now()
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		publish(bus, events.RenderEvent{Format: "json", Bytes: buf.Len(), Duration: time.Since(renderStart), Time: time.Now()})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(buf.Bytes())
	})
}

// NewChartHandler returns the chart endpoint: GET /api/chart. It accepts the
// same query parameters as the trip endpoint and answers with a PNG.
func NewChartHandler(rec calc.Recalculator, bus eventbus.EventBus, width, height int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		req, err := parseTripQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}
		start := time.Now()
		res, err := rec.Compute(req)
		if err != nil {
			writeError(w, err)
			return
		}
		publish(bus, events.ComputeEvent{Request: req, Result: res, Source: "http", Duration: time.Since(start), Time: time.Now()})

		renderStart := time.Now()
		var buf bytes.Buffer
		if err := render.ChartPNG(&buf, res, width, height); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		publish(bus, events.RenderEvent{Format: "png", Bytes: buf.Len(), Duration: time.Since(renderStart), Time: time.Now()})
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	})
}

// NewCatalogHandler exposes the emission table via GET /api/catalog. Factors
// both carry their value and whether the dataset knows the mode at all.
func NewCatalogHandler(cat *catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cat.Entries()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// NewHealthHandler reports liveness.
func NewHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}

func parseTripQuery(r *http.Request) (model.TripRequest, error) {
	q := r.URL.Query()
	dataset := controls.DefaultDataset
	if s := q.Get("dataset"); s != "" {
		ds, err := model.ParseDataset(s)
		if err != nil {
			return model.TripRequest{}, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
		}
		dataset = ds
	}
	distance := controls.DefaultDistanceKm
	if s := q.Get("distance"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return model.TripRequest{}, fmt.Errorf("%w: distance %q is not an integer", model.ErrInvalidInput, s)
		}
		if err := controls.ValidateDistance(n); err != nil {
			return model.TripRequest{}, err
		}
		distance = n
	}
	passengers := controls.DefaultPassengers
	if s := q.Get("passengers"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return model.TripRequest{}, fmt.Errorf("%w: passengers %q is not an integer", model.ErrInvalidInput, s)
		}
		if err := controls.ValidatePassengers(n); err != nil {
			return model.TripRequest{}, err
		}
		passengers = n
	}
	return model.TripRequest{Dataset: dataset, DistanceKm: float64(distance), Passengers: passengers}, nil
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func publish(bus eventbus.EventBus, ev eventbus.Event) {
	if bus != nil {
		bus.Publish(ev)
	}
}
