// Package catalog holds the per-mode emission factor table. Factors are
// expressed in kg CO2e per passenger-kilometre and exist once per dataset.
package catalog

import (
	"fmt"

	"github.com/ecomodal/footprint/core/model"
)

// Factor is a single emission factor. Known distinguishes "no data" from a
// genuine zero: a factor with Known=false must never enter an aggregate.
type Factor struct {
	KgPerKm float64 `json:"kg_per_km"`
	Known   bool    `json:"known"`
}

// Entry carries both dataset factors for one transport mode.
type Entry struct {
	Mode model.Mode `json:"mode"`
	OWID Factor     `json:"owid"`
	PSI  Factor     `json:"psi"`
}

// Factor returns the factor for the given dataset.
func (e Entry) Factor(ds model.Dataset) Factor {
	if ds == model.DatasetPSI {
		return e.PSI
	}
	return e.OWID
}

// Catalog is a read-only mode-to-factor lookup in canonical mode order.
type Catalog struct {
	entries [model.NumModes]Entry
}

// Lookup returns the entry for a mode. The second return is false for modes
// outside the catalog.
func (c *Catalog) Lookup(m model.Mode) (Entry, bool) {
	if !m.Valid() {
		return Entry{}, false
	}
	return c.entries[m], true
}

// Modes lists the catalog modes in canonical order.
func (c *Catalog) Modes() []model.Mode {
	modes := make([]model.Mode, 0, len(c.entries))
	for _, e := range c.entries {
		modes = append(modes, e.Mode)
	}
	return modes
}

// Entries returns a copy of all entries in canonical order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out[:], c.entries[:])
	return out
}

// Len reports the number of catalogued modes.
func (c *Catalog) Len() int { return len(c.entries) }

func known(v float64) Factor { return Factor{KgPerKm: v, Known: true} }

func noData() Factor { return Factor{} }

// Builtin returns the built-in factor table. Rail UK has no PSI figure and
// rail CH has no OWID figure; both are encoded as unknown factors rather
// than zeros.
func Builtin() *Catalog {
	c := &Catalog{}
	set := func(m model.Mode, owid, psi Factor) {
		c.entries[m] = Entry{Mode: m, OWID: owid, PSI: psi}
	}
	set(model.ModeBicycle, known(0.016), known(0.006))
	set(model.ModeCoachBus, known(0.027), known(0.038))
	set(model.ModeGasolineCar, known(0.17), known(0.242))
	set(model.ModeElectricCar, known(0.047), known(0.11))
	set(model.ModeMotorbike, known(0.103), known(0.135))
	set(model.ModeTGV, known(0.006), known(0.015))
	set(model.ModeRailUK, known(0.035), noData())
	set(model.ModeRailCH, noData(), known(0.007))
	set(model.ModeTram, known(0.029), known(0.022))
	set(model.ModeFlightShort, known(0.156), known(0.19))
	set(model.ModeFlightLong, known(0.15), known(0.23))
	return c
}

func (c *Catalog) override(m model.Mode, e Entry) error {
	if !m.Valid() {
		return fmt.Errorf("catalog: invalid mode %d", int(m))
	}
	e.Mode = m
	c.entries[m] = e
	return nil
}
