package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ecomodal/footprint/core/model"
)

// WriteJSON writes the trip result to w in JSON format.
func WriteJSON(w io.Writer, res model.TripResult) error {
	enc := json.NewEncoder(w)
	return enc.Encode(res)
}

// WriteCSV writes the trip result to w in CSV format, one row per mode.
// Values keep full precision; no_data marks modes without a factor.
func WriteCSV(w io.Writer, res model.TripResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mode", "kg_co2e", "no_data"}); err != nil {
		return err
	}
	for _, e := range res.Emissions {
		rec := []string{
			e.Mode.String(),
			strconv.FormatFloat(e.KgCO2e, 'f', -1, 64),
			strconv.FormatBool(e.NoData),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSweepJSON writes a distance sweep, one result per distance, to w.
func WriteSweepJSON(w io.Writer, results []model.TripResult) error {
	enc := json.NewEncoder(w)
	return enc.Encode(results)
}

// WriteSweepCSV writes a distance sweep to w, one row per distance and mode.
func WriteSweepCSV(w io.Writer, results []model.TripResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"dataset", "distance_km", "passengers", "mode", "kg_co2e", "no_data"}); err != nil {
		return err
	}
	for _, res := range results {
		for _, e := range res.Emissions {
			rec := []string{
				res.Dataset.String(),
				strconv.FormatFloat(res.DistanceKm, 'f', -1, 64),
				strconv.Itoa(res.Passengers),
				e.Mode.String(),
				strconv.FormatFloat(e.KgCO2e, 'f', -1, 64),
				strconv.FormatBool(e.NoData),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
