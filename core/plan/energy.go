package plan

import "fmt"

// EnergyPlan is the verdict of the day-energy model: one daily energy
// budget converted into a flat hourly available-power ceiling applied
// identically to every slot.
type EnergyPlan struct {
	BudgetKWh         float64 `json:"budget_kwh"`
	RequiredKWh       float64 `json:"required_kwh"`
	HourlyDemandKW    float64 `json:"hourly_demand_kw"`
	AvailableHourlyKW float64 `json:"available_hourly_kw"`
	ScalingFactor     float64 `json:"scaling_factor"`
	NoDemand          bool    `json:"no_demand"`
	Shortage          bool    `json:"shortage"`
	Verdict           string  `json:"verdict"`
}

// PlanEnergy derives the uniform hourly available power from the daily
// budget and the current total hourly demand. Zero demand is a defined
// successful outcome, not an error. A negative budget is the caller's
// concern and is passed through untouched.
func PlanEnergy(budgetKWh, hourlyDemandKW float64) EnergyPlan {
	ep := EnergyPlan{
		BudgetKWh:      budgetKWh,
		RequiredKWh:    24 * hourlyDemandKW,
		HourlyDemandKW: hourlyDemandKW,
		ScalingFactor:  1,
	}
	if hourlyDemandKW == 0 {
		ep.NoDemand = true
		ep.Verdict = "No demand (no areas)."
		return ep
	}
	if budgetKWh >= ep.RequiredKWh {
		ep.AvailableHourlyKW = hourlyDemandKW
		ep.Verdict = fmt.Sprintf("No shortage. Daily available energy %.1f kWh >= required %.1f kWh.",
			budgetKWh, ep.RequiredKWh)
		return ep
	}
	ep.Shortage = true
	ep.ScalingFactor = budgetKWh / ep.RequiredKWh
	ep.AvailableHourlyKW = ep.ScalingFactor * hourlyDemandKW
	ep.Verdict = fmt.Sprintf("Shortage exists. Daily required energy = %.1f kWh, available = %.1f kWh. "+
		"Uniform hourly available power used = %.1f kW (scaling factor f = %.3f).",
		ep.RequiredKWh, budgetKWh, ep.AvailableHourlyKW, ep.ScalingFactor)
	return ep
}
