package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Dataset selects which emission factor source a computation uses.
type Dataset int

const (
	// DatasetOWID selects the Our World in Data operational factors.
	DatasetOWID Dataset = iota
	// DatasetPSI selects the Paul Scherrer Institut lifecycle factors.
	DatasetPSI
)

// Datasets returns both datasets in selector order.
func Datasets() []Dataset { return []Dataset{DatasetOWID, DatasetPSI} }

// String returns the dataset acronym.
func (d Dataset) String() string {
	switch d {
	case DatasetOWID:
		return "OWID"
	case DatasetPSI:
		return "PSI"
	default:
		return "unknown"
	}
}

// Valid reports whether the dataset is one of the two known sources.
func (d Dataset) Valid() bool { return d == DatasetOWID || d == DatasetPSI }

// ParseDataset resolves a dataset from its acronym, case-insensitively.
func ParseDataset(s string) (Dataset, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OWID":
		return DatasetOWID, nil
	case "PSI":
		return DatasetPSI, nil
	default:
		return 0, fmt.Errorf("unknown dataset %q", s)
	}
}

// MarshalJSON encodes the dataset as its acronym.
func (d Dataset) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid dataset %d", int(d))
	}
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON decodes a dataset from its acronym.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	parsed, err := ParseDataset(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
