package plan

import (
	"math"
	"testing"

	"github.com/gridshed/gridshed/core/model"
)

func TestComputeDistributionNoPlan(t *testing.T) {
	areas := []model.Area{
		{ID: 1, FeederID: 1, LoadKW: 100},
		{ID: 2, FeederID: 2, LoadKW: 50},
	}
	feeders := map[int]model.Feeder{
		1: {ID: 1, SubstationID: 1},
		2: {ID: 2, SubstationID: 1},
	}
	d := ComputeDistribution(areas, feeders, nil)
	if d.FeederKWh[1] != 2400 || d.FeederKWh[2] != 1200 {
		t.Fatalf("unexpected feeder energy: %+v", d.FeederKWh)
	}
	if d.SubstationKWh[1] != 3600 || d.PlantKWh != 3600 {
		t.Fatalf("roll-up mismatch: %+v", d)
	}
}

func TestComputeDistributionMultipleSubstations(t *testing.T) {
	areas := []model.Area{
		{ID: 1, FeederID: 1, LoadKW: 100},
		{ID: 2, FeederID: 2, LoadKW: 50},
	}
	feeders := map[int]model.Feeder{
		1: {ID: 1, SubstationID: 1},
		2: {ID: 2, SubstationID: 2},
	}
	d := ComputeDistribution(areas, feeders, nil)
	if d.SubstationKWh[1] != 2400 || d.SubstationKWh[2] != 1200 {
		t.Fatalf("per-substation roll-up wrong: %+v", d.SubstationKWh)
	}
	if d.PlantKWh != 3600 {
		t.Fatalf("plant total wrong: %.1f", d.PlantKWh)
	}
}

func TestComputeDistributionWithCutHours(t *testing.T) {
	areas := []model.Area{
		{ID: 1, FeederID: 1, LoadKW: 100},
		{ID: 2, FeederID: 1, LoadKW: 50},
	}
	feeders := map[int]model.Feeder{1: {ID: 1, SubstationID: 1}}
	cut := map[int]float64{1: 12}
	d := ComputeDistribution(areas, feeders, cut)
	want := (24-12)*100.0 + 24*50.0
	if math.Abs(d.PlantKWh-want) > 1e-9 {
		t.Fatalf("expected %.1f kWh got %.1f", want, d.PlantKWh)
	}
	// Plant total equals the sum over areas of (24 - cut) * load.
	sum := 0.0
	for _, a := range areas {
		sum += (24 - cut[a.ID]) * a.LoadKW
	}
	if math.Abs(d.PlantKWh-sum) > 1e-9 {
		t.Fatalf("round-trip mismatch: %.1f vs %.1f", d.PlantKWh, sum)
	}
}
