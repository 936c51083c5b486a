package controls

import (
	"errors"
	"testing"

	"github.com/ecomodal/footprint/core/model"
)

func TestNewPanelDefaults(t *testing.T) {
	v := NewPanel().Values()
	if v.Dataset != model.DatasetOWID || v.DistanceKm != 100 || v.Passengers != 1 {
		t.Fatalf("unexpected defaults: %+v", v)
	}
}

func TestSetNotifiesHandlers(t *testing.T) {
	p := NewPanel()
	var events []ChangeEvent
	p.OnChange(func(ev ChangeEvent) { events = append(events, ev) })
	p.OnChange(func(ev ChangeEvent) { events = append(events, ev) })

	if err := p.SetDistance(200); err != nil {
		t.Fatalf("set distance: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected both handlers to fire, got %d events", len(events))
	}
	for _, ev := range events {
		if ev.Control != ControlDistance {
			t.Fatalf("control = %v", ev.Control)
		}
		if ev.Values.DistanceKm != 200 {
			t.Fatalf("event carries stale values: %+v", ev.Values)
		}
	}
}

func TestSetUnchangedValueFiresNothing(t *testing.T) {
	p := NewPanel()
	fired := 0
	p.OnChange(func(ChangeEvent) { fired++ })

	if err := p.SetDistance(DefaultDistanceKm); err != nil {
		t.Fatalf("set distance: %v", err)
	}
	if err := p.SetDataset(model.DatasetOWID); err != nil {
		t.Fatalf("set dataset: %v", err)
	}
	if err := p.SetPassengers(DefaultPassengers); err != nil {
		t.Fatalf("set passengers: %v", err)
	}
	if fired != 0 {
		t.Fatalf("no-op sets fired %d events", fired)
	}
}

func TestSetRangeChecks(t *testing.T) {
	p := NewPanel()
	cases := []error{
		p.SetDistance(-10),
		p.SetDistance(401),
		p.SetPassengers(0),
		p.SetPassengers(6),
		p.SetDataset(model.Dataset(5)),
	}
	for i, err := range cases {
		if !errors.Is(err, model.ErrInvalidInput) {
			t.Errorf("case %d: got %v", i, err)
		}
	}
	if v := p.Values(); v != NewPanel().Values() {
		t.Fatalf("rejected sets mutated the panel: %+v", v)
	}
}

func TestSetAcceptsOffStepDistance(t *testing.T) {
	p := NewPanel()
	if err := p.SetDistance(37); err != nil {
		t.Fatalf("off-step distance rejected: %v", err)
	}
	if v := p.Values(); v.DistanceKm != 37 {
		t.Fatalf("distance = %d", v.DistanceKm)
	}
}

func TestStepDistanceClamps(t *testing.T) {
	p := NewPanel()
	p.StepDistance(2)
	if v := p.Values(); v.DistanceKm != 120 {
		t.Fatalf("after +2 steps: %d", v.DistanceKm)
	}
	p.StepDistance(100)
	if v := p.Values(); v.DistanceKm != DistanceMax {
		t.Fatalf("upper clamp: %d", v.DistanceKm)
	}
	p.StepDistance(-100)
	if v := p.Values(); v.DistanceKm != DistanceMin {
		t.Fatalf("lower clamp: %d", v.DistanceKm)
	}
}

func TestStepAtEdgeFiresNothing(t *testing.T) {
	p := NewPanel()
	if err := p.SetDistance(DistanceMax); err != nil {
		t.Fatalf("set distance: %v", err)
	}
	fired := 0
	p.OnChange(func(ChangeEvent) { fired++ })
	p.StepDistance(1)
	if fired != 0 {
		t.Fatalf("step at edge fired %d events", fired)
	}
}

func TestStepPassengersClamps(t *testing.T) {
	p := NewPanel()
	p.StepPassengers(3)
	if v := p.Values(); v.Passengers != 4 {
		t.Fatalf("after +3: %d", v.Passengers)
	}
	p.StepPassengers(10)
	if v := p.Values(); v.Passengers != PassengersMax {
		t.Fatalf("upper clamp: %d", v.Passengers)
	}
	p.StepPassengers(-10)
	if v := p.Values(); v.Passengers != PassengersMin {
		t.Fatalf("lower clamp: %d", v.Passengers)
	}
}

func TestHandlerSeesConsistentSnapshot(t *testing.T) {
	p := NewPanel()
	var got Values
	p.OnChange(func(ev ChangeEvent) { got = p.Values() })
	if err := p.SetPassengers(3); err != nil {
		t.Fatalf("set passengers: %v", err)
	}
	if got.Passengers != 3 {
		t.Fatalf("handler read stale panel: %+v", got)
	}
}

func TestValuesTripRequest(t *testing.T) {
	v := Values{Dataset: model.DatasetPSI, DistanceKm: 200, Passengers: 2}
	req := v.TripRequest()
	if req.Dataset != model.DatasetPSI || req.DistanceKm != 200 || req.Passengers != 2 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("request invalid: %v", err)
	}
	if len(req.Modes) != 0 {
		t.Fatalf("expected default mode set, got %v", req.Modes)
	}
}
