package plan

import "github.com/gridshed/gridshed/core/model"

// Distribution is the daily supplied energy per hierarchy level after
// applying the current plan's cut hours. Recomputed on demand, never
// cached.
type Distribution struct {
	FeederKWh     map[int]float64 `json:"feeder_kwh"`
	SubstationKWh map[int]float64 `json:"substation_kwh"`
	PlantKWh      float64         `json:"plant_kwh"`
}

// ComputeDistribution rolls up (24 - cutHours) * loadKW per area into
// feeder, substation and plant totals. cutHours may be nil when no plan
// has been generated yet, in which case every area counts as fully
// supplied.
func ComputeDistribution(areas []model.Area, feeders map[int]model.Feeder, cutHours map[int]float64) Distribution {
	d := Distribution{
		FeederKWh:     map[int]float64{},
		SubstationKWh: map[int]float64{},
	}
	for _, a := range areas {
		onHours := 24 - cutHours[a.ID]
		if onHours < 0 {
			onHours = 0
		}
		d.FeederKWh[a.FeederID] += onHours * a.LoadKW
	}
	for fid, e := range d.FeederKWh {
		if f, ok := feeders[fid]; ok {
			d.SubstationKWh[f.SubstationID] += e
		}
	}
	for _, e := range d.SubstationKWh {
		d.PlantKWh += e
	}
	return d
}
