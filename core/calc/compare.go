package calc

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ecomodal/footprint/core/catalog"
	"github.com/ecomodal/footprint/core/model"
)

// ModeComparison pairs both dataset totals for one mode over the same trip.
// Comparable is false when either dataset lacks a factor; DeltaKg is zero in
// that case and must not be aggregated.
type ModeComparison struct {
	Mode       model.Mode     `json:"mode"`
	OWID       model.Emission `json:"owid"`
	PSI        model.Emission `json:"psi"`
	DeltaKg    float64        `json:"delta_kg"` // PSI minus OWID
	Comparable bool           `json:"comparable"`
}

// CompareDatasets computes the full catalog under both datasets and returns
// one comparison per mode in canonical order.
func CompareDatasets(cat *catalog.Catalog, distanceKm float64, passengers int) ([]ModeComparison, error) {
	r := New(cat)
	modes := r.Catalog.Modes()
	owid, err := r.Compute(model.TripRequest{
		Dataset:    model.DatasetOWID,
		DistanceKm: distanceKm,
		Passengers: passengers,
		Modes:      modes,
	})
	if err != nil {
		return nil, err
	}
	psi, err := r.Compute(model.TripRequest{
		Dataset:    model.DatasetPSI,
		DistanceKm: distanceKm,
		Passengers: passengers,
		Modes:      modes,
	})
	if err != nil {
		return nil, err
	}
	comps := make([]ModeComparison, len(modes))
	for i, m := range modes {
		c := ModeComparison{Mode: m, OWID: owid.Emissions[i], PSI: psi.Emissions[i]}
		if !c.OWID.NoData && !c.PSI.NoData {
			c.Comparable = true
			c.DeltaKg = c.PSI.KgCO2e - c.OWID.KgCO2e
		}
		comps[i] = c
	}
	return comps, nil
}

// MaxDivergence returns the comparable mode with the largest absolute delta.
// The second return is false when no mode is comparable.
func MaxDivergence(comps []ModeComparison) (ModeComparison, bool) {
	gaps := make([]float64, 0, len(comps))
	at := make([]int, 0, len(comps))
	for i, c := range comps {
		if !c.Comparable {
			continue
		}
		gaps = append(gaps, math.Abs(c.DeltaKg))
		at = append(at, i)
	}
	if len(gaps) == 0 {
		return ModeComparison{}, false
	}
	return comps[at[floats.MaxIdx(gaps)]], true
}
