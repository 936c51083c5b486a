// Package controls models the three interactive trip controls: emission
// dataset, trip distance and car occupancy. The Panel owns the current
// values and notifies registered handlers on every accepted change, the
// event wiring the interactive surfaces hang their recompute-and-render
// cycle on.
package controls

import (
	"fmt"
	"sync"

	"github.com/ecomodal/footprint/core/model"
)

// Control value domains. Distance and passengers are integers; the step is
// the increment the spinner-style commands move by, any integer inside the
// range is a legal value.
const (
	DistanceMin  = 0
	DistanceMax  = 400
	DistanceStep = 10

	PassengersMin = 1
	PassengersMax = 5

	DefaultDistanceKm = 100
	DefaultPassengers = 1
)

// DefaultDataset is the dataset a fresh panel starts on.
const DefaultDataset = model.DatasetOWID

// Control identifies which panel value a change event refers to.
type Control int

const (
	ControlDataset Control = iota
	ControlDistance
	ControlPassengers
)

func (c Control) String() string {
	switch c {
	case ControlDataset:
		return "dataset"
	case ControlDistance:
		return "distance"
	case ControlPassengers:
		return "passengers"
	default:
		return "unknown"
	}
}

// Values is a snapshot of the panel state.
type Values struct {
	Dataset    model.Dataset `json:"dataset"`
	DistanceKm int           `json:"distance_km"`
	Passengers int           `json:"passengers"`
}

// TripRequest converts the snapshot into a computation request over the
// default comparison set.
func (v Values) TripRequest() model.TripRequest {
	return model.TripRequest{
		Dataset:    v.Dataset,
		DistanceKm: float64(v.DistanceKm),
		Passengers: v.Passengers,
	}
}

// ChangeEvent is delivered to handlers after a control value changed.
type ChangeEvent struct {
	Control Control
	Values  Values
}

// Handler receives change events synchronously on the goroutine that mutated
// the panel.
type Handler func(ChangeEvent)

// ValidateDistance range-checks a distance value in kilometres.
func ValidateDistance(km int) error {
	if km < DistanceMin || km > DistanceMax {
		return fmt.Errorf("%w: distance %d km outside [%d, %d]", model.ErrInvalidInput, km, DistanceMin, DistanceMax)
	}
	return nil
}

// ValidatePassengers range-checks a car occupancy value.
func ValidatePassengers(n int) error {
	if n < PassengersMin || n > PassengersMax {
		return fmt.Errorf("%w: passengers %d outside [%d, %d]", model.ErrInvalidInput, n, PassengersMin, PassengersMax)
	}
	return nil
}

// Panel holds the three control values. Setters validate, apply and then
// invoke every registered handler in registration order; setting a value
// equal to the current one fires nothing.
type Panel struct {
	mu       sync.Mutex
	values   Values
	handlers []Handler
}

// NewPanel returns a panel on the default values: OWID, 100 km, one passenger.
func NewPanel() *Panel {
	return &Panel{values: Values{
		Dataset:    DefaultDataset,
		DistanceKm: DefaultDistanceKm,
		Passengers: DefaultPassengers,
	}}
}

// Values returns the current snapshot.
func (p *Panel) Values() Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values
}

// OnChange registers a handler for subsequent changes.
func (p *Panel) OnChange(h Handler) {
	if h == nil {
		return
	}
	p.mu.Lock()
	p.handlers = append(p.handlers, h)
	p.mu.Unlock()
}

// SetDataset switches the emission dataset.
func (p *Panel) SetDataset(ds model.Dataset) error {
	if !ds.Valid() {
		return fmt.Errorf("%w: dataset %d", model.ErrInvalidInput, int(ds))
	}
	p.apply(ControlDataset, func(v *Values) bool {
		if v.Dataset == ds {
			return false
		}
		v.Dataset = ds
		return true
	})
	return nil
}

// SetDistance sets the trip distance in kilometres.
func (p *Panel) SetDistance(km int) error {
	if err := ValidateDistance(km); err != nil {
		return err
	}
	p.apply(ControlDistance, func(v *Values) bool {
		if v.DistanceKm == km {
			return false
		}
		v.DistanceKm = km
		return true
	})
	return nil
}

// SetPassengers sets the car occupancy.
func (p *Panel) SetPassengers(n int) error {
	if err := ValidatePassengers(n); err != nil {
		return err
	}
	p.apply(ControlPassengers, func(v *Values) bool {
		if v.Passengers == n {
			return false
		}
		v.Passengers = n
		return true
	})
	return nil
}

// StepDistance moves the distance by n steps of DistanceStep kilometres and
// clamps to the domain. Spinner semantics: stepping past an edge stays on it.
func (p *Panel) StepDistance(n int) {
	p.apply(ControlDistance, func(v *Values) bool {
		km := clamp(v.DistanceKm+n*DistanceStep, DistanceMin, DistanceMax)
		if v.DistanceKm == km {
			return false
		}
		v.DistanceKm = km
		return true
	})
}

// StepPassengers moves the occupancy by n and clamps to the domain.
func (p *Panel) StepPassengers(n int) {
	p.apply(ControlPassengers, func(v *Values) bool {
		count := clamp(v.Passengers+n, PassengersMin, PassengersMax)
		if v.Passengers == count {
			return false
		}
		v.Passengers = count
		return true
	})
}

// apply runs the mutation under the lock, then delivers the event outside it
// so handlers may read the panel.
func (p *Panel) apply(c Control, mutate func(*Values) bool) {
	p.mu.Lock()
	changed := mutate(&p.values)
	vals := p.values
	handlers := append([]Handler(nil), p.handlers...)
	p.mu.Unlock()
	if !changed {
		return
	}
	ev := ChangeEvent{Control: c, Values: vals}
	for _, h := range handlers {
		h(ev)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
