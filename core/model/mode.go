package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode identifies a transport mode known to the emission catalog.
type Mode int

const (
	ModeBicycle Mode = iota
	ModeCoachBus
	ModeGasolineCar
	ModeElectricCar
	ModeMotorbike
	ModeTGV
	ModeRailUK
	ModeRailCH
	ModeTram
	ModeFlightShort
	ModeFlightLong

	numModes
)

// NumModes is the number of catalog modes.
const NumModes = int(numModes)

// AllModes returns every catalog mode in canonical display order.
func AllModes() []Mode {
	modes := make([]Mode, NumModes)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// DefaultComparison is the fixed subset of modes the calculator renders for a
// trip: the short-distance alternatives a traveller actually chooses between.
var DefaultComparison = []Mode{
	ModeBicycle,
	ModeCoachBus,
	ModeGasolineCar,
	ModeElectricCar,
	ModeMotorbike,
	ModeRailCH,
}

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBicycle:
		return "bicycle"
	case ModeCoachBus:
		return "coach bus"
	case ModeGasolineCar:
		return "gasoline car"
	case ModeElectricCar:
		return "electric car"
	case ModeMotorbike:
		return "motorbike"
	case ModeTGV:
		return "tgv"
	case ModeRailUK:
		return "rail UK"
	case ModeRailCH:
		return "rail CH"
	case ModeTram:
		return "tram"
	case ModeFlightShort:
		return "flight short"
	case ModeFlightLong:
		return "flight long"
	default:
		return "unknown"
	}
}

// Slug returns the mode name in identifier form, suitable for metric field
// names and CSV headers.
func (m Mode) Slug() string {
	return strings.ReplaceAll(strings.ToLower(m.String()), " ", "_")
}

// Valid reports whether the mode is one of the catalog modes.
func (m Mode) Valid() bool { return m >= 0 && m < numModes }

// IsCar reports whether trip emissions for the mode are shared between the
// car occupants and therefore divided by the passenger count.
func (m Mode) IsCar() bool {
	return m == ModeGasolineCar || m == ModeElectricCar
}

// ParseMode resolves a mode from its name. Matching is case-insensitive and
// treats '-' and '_' as spaces so CLI flags and URL values round-trip.
func ParseMode(s string) (Mode, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", " ")
	norm = strings.ReplaceAll(norm, "_", " ")
	for i := 0; i < NumModes; i++ {
		m := Mode(i)
		if strings.ToLower(m.String()) == norm {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown transport mode %q", s)
}

// MarshalJSON encodes the mode as its display name.
func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid mode %d", int(m))
	}
	return []byte(strconv.Quote(m.String())), nil
}

// UnmarshalJSON decodes a mode from its display name.
func (m *Mode) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
