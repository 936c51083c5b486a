package metrics

import "github.com/ecomodal/footprint/core/events"

// FromComputeEvent flattens a compute event into the sink record shape.
func FromComputeEvent(e events.ComputeEvent) ComputeRecord {
	rec := ComputeRecord{
		Dataset:    e.Result.Dataset,
		DistanceKm: e.Result.DistanceKm,
		Passengers: e.Result.Passengers,
		Source:     e.Source,
		Duration:   e.Duration,
		Time:       e.Time,
		Emissions:  make([]EmissionValue, 0, len(e.Result.Emissions)),
	}
	for _, em := range e.Result.Emissions {
		rec.Emissions = append(rec.Emissions, EmissionValue{
			Mode:   em.Mode,
			KgCO2e: em.KgCO2e,
			NoData: em.NoData,
		})
	}
	return rec
}

// FromRenderEvent flattens a render event into the sink record shape.
func FromRenderEvent(e events.RenderEvent) RenderRecord {
	return RenderRecord{
		Format:   e.Format,
		Bytes:    e.Bytes,
		Duration: e.Duration,
		Time:     e.Time,
	}
}
