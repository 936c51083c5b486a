package calc

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ecomodal/footprint/core/catalog"
	"github.com/ecomodal/footprint/core/model"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func compute(t *testing.T, req model.TripRequest) model.TripResult {
	t.Helper()
	res, err := New(nil).Compute(req)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return res
}

func emissionFor(t *testing.T, res model.TripResult, m model.Mode) model.Emission {
	t.Helper()
	for _, e := range res.Emissions {
		if e.Mode == m {
			return e
		}
	}
	t.Fatalf("mode %v missing from result", m)
	return model.Emission{}
}

func TestComputePinnedValues(t *testing.T) {
	cases := []struct {
		name       string
		dataset    model.Dataset
		distance   float64
		passengers int
		mode       model.Mode
		want       float64
	}{
		{"psi gasoline 200km", model.DatasetPSI, 200, 1, model.ModeGasolineCar, 48.4},
		{"owid gasoline 200km", model.DatasetOWID, 200, 1, model.ModeGasolineCar, 34.0},
		{"psi bicycle 100km", model.DatasetPSI, 100, 1, model.ModeBicycle, 0.6},
		{"psi rail CH 100km", model.DatasetPSI, 100, 1, model.ModeRailCH, 0.7},
		{"psi electric 100km solo", model.DatasetPSI, 100, 1, model.ModeElectricCar, 11.0},
		{"psi electric 100km four up", model.DatasetPSI, 100, 4, model.ModeElectricCar, 2.75},
	}
	for _, c := range cases {
		res := compute(t, model.TripRequest{Dataset: c.dataset, DistanceKm: c.distance, Passengers: c.passengers})
		got := emissionFor(t, res, c.mode)
		if got.NoData {
			t.Fatalf("%s: unexpected no data", c.name)
		}
		if !almostEqual(got.KgCO2e, c.want) {
			t.Errorf("%s: got %v want %v", c.name, got.KgCO2e, c.want)
		}
	}
}

func TestComputeDefaultModeSet(t *testing.T) {
	res := compute(t, model.TripRequest{Dataset: model.DatasetOWID, DistanceKm: 50, Passengers: 2})
	if len(res.Emissions) != len(model.DefaultComparison) {
		t.Fatalf("got %d emissions want %d", len(res.Emissions), len(model.DefaultComparison))
	}
	for i, m := range model.DefaultComparison {
		if res.Emissions[i].Mode != m {
			t.Fatalf("emissions[%d] = %v want %v", i, res.Emissions[i].Mode, m)
		}
	}
}

func TestComputeZeroDistance(t *testing.T) {
	for _, ds := range model.Datasets() {
		res := compute(t, model.TripRequest{Dataset: ds, DistanceKm: 0, Passengers: 3, Modes: model.AllModes()})
		for _, e := range res.Emissions {
			if e.NoData {
				continue
			}
			if e.KgCO2e != 0 {
				t.Errorf("%v/%v: zero distance gave %v", ds, e.Mode, e.KgCO2e)
			}
		}
	}
}

func TestComputeNonNegative(t *testing.T) {
	for _, ds := range model.Datasets() {
		for p := 1; p <= 5; p++ {
			res := compute(t, model.TripRequest{Dataset: ds, DistanceKm: 400, Passengers: p, Modes: model.AllModes()})
			for _, e := range res.Emissions {
				if e.KgCO2e < 0 {
					t.Errorf("%v/%v p=%d: negative emission %v", ds, e.Mode, p, e.KgCO2e)
				}
			}
		}
	}
}

func TestComputeOccupancyDividesCarsOnly(t *testing.T) {
	prev := map[model.Mode]float64{}
	for p := 1; p <= 5; p++ {
		res := compute(t, model.TripRequest{Dataset: model.DatasetPSI, DistanceKm: 120, Passengers: p})
		for _, e := range res.Emissions {
			if e.NoData {
				continue
			}
			last, seen := prev[e.Mode]
			if seen {
				if e.Mode.IsCar() {
					if e.KgCO2e >= last {
						t.Errorf("%v: not strictly decreasing at p=%d (%v -> %v)", e.Mode, p, last, e.KgCO2e)
					}
				} else if !almostEqual(e.KgCO2e, last) {
					t.Errorf("%v: changed with occupancy at p=%d (%v -> %v)", e.Mode, p, last, e.KgCO2e)
				}
			}
			prev[e.Mode] = e.KgCO2e
		}
	}
}

func TestComputeCarShareMatchesDivision(t *testing.T) {
	solo := compute(t, model.TripRequest{Dataset: model.DatasetOWID, DistanceKm: 300, Passengers: 1})
	four := compute(t, model.TripRequest{Dataset: model.DatasetOWID, DistanceKm: 300, Passengers: 4})
	for _, m := range []model.Mode{model.ModeGasolineCar, model.ModeElectricCar} {
		a := emissionFor(t, solo, m)
		b := emissionFor(t, four, m)
		if !almostEqual(b.KgCO2e, a.KgCO2e/4) {
			t.Errorf("%v: %v not a quarter of %v", m, b.KgCO2e, a.KgCO2e)
		}
	}
}

func TestComputeNoDataPropagates(t *testing.T) {
	res := compute(t, model.TripRequest{Dataset: model.DatasetPSI, DistanceKm: 100, Passengers: 1, Modes: []model.Mode{model.ModeRailUK}})
	e := res.Emissions[0]
	if !e.NoData || e.KgCO2e != 0 {
		t.Fatalf("rail UK under PSI should be no data, got %+v", e)
	}
	res = compute(t, model.TripRequest{Dataset: model.DatasetOWID, DistanceKm: 100, Passengers: 1, Modes: []model.Mode{model.ModeRailCH}})
	e = res.Emissions[0]
	if !e.NoData {
		t.Fatalf("rail CH under OWID should be no data, got %+v", e)
	}
}

func TestComputeIdempotent(t *testing.T) {
	req := model.TripRequest{Dataset: model.DatasetPSI, DistanceKm: 250, Passengers: 2, Modes: model.AllModes()}
	r := New(nil)
	first, err := r.Compute(req)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	second, err := r.Compute(req)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recompute diverged:\n%+v\n%+v", first, second)
	}
}

func TestComputeDatasetSwitchKeepsShape(t *testing.T) {
	owid := compute(t, model.TripRequest{Dataset: model.DatasetOWID, DistanceKm: 80, Passengers: 2})
	psi := compute(t, model.TripRequest{Dataset: model.DatasetPSI, DistanceKm: 80, Passengers: 2})
	if len(owid.Emissions) != len(psi.Emissions) {
		t.Fatalf("mode sets differ: %d vs %d", len(owid.Emissions), len(psi.Emissions))
	}
	for i := range owid.Emissions {
		if owid.Emissions[i].Mode != psi.Emissions[i].Mode {
			t.Fatalf("mode order differs at %d", i)
		}
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	bad := []model.TripRequest{
		{Dataset: model.DatasetOWID, DistanceKm: -5, Passengers: 1},
		{Dataset: model.DatasetOWID, DistanceKm: 10, Passengers: 0},
		{Dataset: model.Dataset(9), DistanceKm: 10, Passengers: 1},
		{Dataset: model.DatasetOWID, DistanceKm: math.Inf(1), Passengers: 1},
	}
	r := New(nil)
	for i, req := range bad {
		if _, err := r.Compute(req); !errors.Is(err, model.ErrInvalidInput) {
			t.Errorf("case %d: got %v", i, err)
		}
	}
}

func TestComputeCustomCatalog(t *testing.T) {
	cat := catalog.Builtin()
	r := New(cat)
	if r.Catalog != cat {
		t.Fatalf("catalog not retained")
	}
}
