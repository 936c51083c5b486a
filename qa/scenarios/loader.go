// Package scenarios runs YAML-described calculator scenarios: every *.yaml
// file in this directory is computed and checked against its pinned display
// values. Drop a file in to pin a new behaviour.
package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecomodal/footprint/core/model"
)

// TripDef describes one computed trip of a scenario. Modes defaults to the
// comparison subset when empty.
type TripDef struct {
	Dataset    string             `yaml:"dataset"`
	DistanceKm float64            `yaml:"distance_km"`
	Passengers int                `yaml:"passengers"`
	Modes      []string           `yaml:"modes,omitempty"`
	Expected   []ExpectedEmission `yaml:"expected"`
}

// ToRequest converts the YAML shape into a trip request.
func (d TripDef) ToRequest() (model.TripRequest, error) {
	ds, err := model.ParseDataset(d.Dataset)
	if err != nil {
		return model.TripRequest{}, err
	}
	req := model.TripRequest{
		Dataset:    ds,
		DistanceKm: d.DistanceKm,
		Passengers: d.Passengers,
	}
	for _, name := range d.Modes {
		m, err := model.ParseMode(name)
		if err != nil {
			return model.TripRequest{}, err
		}
		req.Modes = append(req.Modes, m)
	}
	return req, nil
}

// ExpectedEmission pins one mode of a trip, at display precision. NoData
// entries assert the mode has no factor in the chosen dataset.
type ExpectedEmission struct {
	Mode   string  `yaml:"mode"`
	Kg     float64 `yaml:"kg"`
	NoData bool    `yaml:"no_data,omitempty"`
}

type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Catalog     string    `yaml:"catalog,omitempty"`
	Trips       []TripDef `yaml:"trips"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
