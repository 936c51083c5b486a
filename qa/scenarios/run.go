package scenarios

import (
	"strconv"
	"testing"

	"github.com/ecomodal/footprint/core/calc"
	"github.com/ecomodal/footprint/core/catalog"
	"github.com/ecomodal/footprint/core/model"
)

// RunScenario computes every trip of the scenario and compares each pinned
// mode at display precision.
func RunScenario(t *testing.T, sc *Scenario) {
	cat := catalog.Builtin()
	if sc.Catalog != "" {
		loaded, err := catalog.LoadFile(sc.Catalog)
		if err != nil {
			t.Fatalf("scenario %s: catalog: %v", sc.Name, err)
		}
		cat = loaded
	}
	rec := calc.New(cat)

	for _, trip := range sc.Trips {
		req, err := trip.ToRequest()
		if err != nil {
			t.Fatalf("scenario %s: %v", sc.Name, err)
		}
		res, err := rec.Compute(req)
		if err != nil {
			t.Fatalf("scenario %s: compute: %v", sc.Name, err)
		}
		for _, want := range trip.Expected {
			mode, err := model.ParseMode(want.Mode)
			if err != nil {
				t.Fatalf("scenario %s: %v", sc.Name, err)
			}
			em, ok := findEmission(res, mode)
			if !ok {
				t.Errorf("scenario %s: mode %s missing from result", sc.Name, want.Mode)
				continue
			}
			if em.NoData != want.NoData {
				t.Errorf("scenario %s: mode %s no-data %v, want %v", sc.Name, want.Mode, em.NoData, want.NoData)
				continue
			}
			if want.NoData {
				continue
			}
			if got, exp := displayKg(em.KgCO2e), displayKg(want.Kg); got != exp {
				t.Errorf("scenario %s: %s at %v km for %d: got %s kg, want %s kg",
					sc.Name, want.Mode, req.DistanceKm, req.Passengers, got, exp)
			}
		}
	}
}

func findEmission(res model.TripResult, m model.Mode) (model.Emission, bool) {
	for _, e := range res.Emissions {
		if e.Mode == m {
			return e, true
		}
	}
	return model.Emission{}, false
}

// displayKg renders a value the way every display surface does, one decimal.
func displayKg(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
