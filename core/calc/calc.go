// Package calc turns catalog factors and trip parameters into per-passenger
// emission totals. Computation is pure: same request, same result.
package calc

import (
	"fmt"

	"github.com/ecomodal/footprint/core/catalog"
	"github.com/ecomodal/footprint/core/model"
)

// Recalculator computes trip emissions against a fixed catalog.
type Recalculator struct {
	Catalog *catalog.Catalog
}

// New returns a Recalculator. A nil catalog falls back to the built-in table.
func New(c *catalog.Catalog) Recalculator {
	if c == nil {
		c = catalog.Builtin()
	}
	return Recalculator{Catalog: c}
}

// Compute validates the request and returns one emission per requested mode,
// in request order. An empty mode list means the default comparison set.
// Per mode: kg = factor * distance, divided by passengers for car modes only.
// Values are full precision; rounding is a display concern. Modes without a
// factor in the requested dataset come back flagged NoData instead of zero.
func (r Recalculator) Compute(req model.TripRequest) (model.TripResult, error) {
	if err := req.Validate(); err != nil {
		return model.TripResult{}, err
	}
	modes := req.Modes
	if len(modes) == 0 {
		modes = model.DefaultComparison
	}
	res := model.TripResult{
		Dataset:    req.Dataset,
		DistanceKm: req.DistanceKm,
		Passengers: req.Passengers,
		Emissions:  make([]model.Emission, 0, len(modes)),
	}
	for _, m := range modes {
		entry, ok := r.Catalog.Lookup(m)
		if !ok {
			return model.TripResult{}, fmt.Errorf("%w: mode %d not in catalog", model.ErrInvalidInput, int(m))
		}
		f := entry.Factor(req.Dataset)
		if !f.Known {
			res.Emissions = append(res.Emissions, model.Emission{Mode: m, NoData: true})
			continue
		}
		kg := f.KgPerKm * req.DistanceKm
		if m.IsCar() {
			kg /= float64(req.Passengers)
		}
		res.Emissions = append(res.Emissions, model.Emission{Mode: m, KgCO2e: kg})
	}
	return res, nil
}
