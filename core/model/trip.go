package model

import (
	"fmt"
	"math"
)

// TripRequest describes one trip computation: which dataset to read, how far
// the trip goes and how many people share a car.
type TripRequest struct {
	Dataset    Dataset `json:"dataset"`
	DistanceKm float64 `json:"distance_km"`
	Passengers int     `json:"passengers"`

	// Modes optionally overrides the rendered subset. Empty means
	// DefaultComparison.
	Modes []Mode `json:"modes,omitempty"`
}

// Validate checks the request against the calculator's input contract.
// Passengers below one would make the car division meaningless, so the check
// happens here rather than letting NaN or Inf propagate into results.
func (r TripRequest) Validate() error {
	if !r.Dataset.Valid() {
		return fmt.Errorf("%w: dataset %d", ErrInvalidInput, int(r.Dataset))
	}
	if math.IsNaN(r.DistanceKm) || math.IsInf(r.DistanceKm, 0) {
		return fmt.Errorf("%w: distance must be finite", ErrInvalidInput)
	}
	if r.DistanceKm < 0 {
		return fmt.Errorf("%w: distance %v km is negative", ErrInvalidInput, r.DistanceKm)
	}
	if r.Passengers < 1 {
		return fmt.Errorf("%w: passengers %d, need at least 1", ErrInvalidInput, r.Passengers)
	}
	for _, m := range r.Modes {
		if !m.Valid() {
			return fmt.Errorf("%w: mode %d", ErrInvalidInput, int(m))
		}
	}
	return nil
}

// Emission is the computed total for one mode over the requested trip.
type Emission struct {
	Mode   Mode    `json:"mode"`
	KgCO2e float64 `json:"kg_co2e"`
	// NoData marks modes whose factor is missing from the selected dataset.
	// KgCO2e is zero then, but the zero must not be read as "no emissions".
	NoData bool `json:"no_data,omitempty"`
}

// TripResult is the ephemeral outcome of one computation, ordered the way it
// is rendered. It is recomputed from scratch on every input change.
type TripResult struct {
	Dataset    Dataset    `json:"dataset"`
	DistanceKm float64    `json:"distance_km"`
	Passengers int        `json:"passengers"`
	Emissions  []Emission `json:"emissions"`
}
