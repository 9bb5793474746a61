package plan

import "time"

// CutRecord is one scheduled de-energization of one area for one slot.
type CutRecord struct {
	Slot          int     `json:"slot"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	AreaID        int     `json:"area_id"`
	AreaName      string  `json:"area_name"`
	FeederID      int     `json:"feeder_id"`
	FeederName    string  `json:"feeder_name"`
	PriorityLevel int     `json:"priority_level"`
	PriorityScore float64 `json:"priority_score"`
	LoadKW        float64 `json:"load_kw"`
	EnergyShedKWh float64 `json:"energy_shed_kwh"`
}

// SlotSummary describes one slot of the daily plan, cut or not.
type SlotSummary struct {
	Slot       int     `json:"slot"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	DemandKW   float64 `json:"demand_kw"`
	ShedKW     float64 `json:"shed_kw"`
	UnservedKW float64 `json:"unserved_kw"`
	Cut        bool    `json:"cut"`
}

// DayPlan is the authoritative 24-hour plan produced by one scheduling
// run. It replaces any prior plan atomically.
type DayPlan struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Energy      EnergyPlan    `json:"energy"`
	Cuts        []CutRecord   `json:"cuts"`
	Slots       []SlotSummary `json:"slots"`
	// UnservedKWh is the daily energy the scheduler could not shed
	// because fairness and priority limits exhausted all eligible areas.
	UnservedKWh float64 `json:"unserved_kwh"`
	// CutHours maps area id to cumulative cut hours in this plan. Areas
	// never cut are absent.
	CutHours map[int]float64 `json:"cut_hours"`
}

// Clone returns a deep copy of the plan. Callers may mutate the result
// without affecting the plan it was copied from.
func (p DayPlan) Clone() DayPlan {
	out := p
	if p.Cuts != nil {
		out.Cuts = make([]CutRecord, len(p.Cuts))
		copy(out.Cuts, p.Cuts)
	}
	if p.Slots != nil {
		out.Slots = make([]SlotSummary, len(p.Slots))
		copy(out.Slots, p.Slots)
	}
	if p.CutHours != nil {
		out.CutHours = make(map[int]float64, len(p.CutHours))
		for id, h := range p.CutHours {
			out.CutHours[id] = h
		}
	}
	return out
}

// TotalShedKWh sums the energy shed across all cut records.
func (p DayPlan) TotalShedKWh() float64 {
	total := 0.0
	for _, c := range p.Cuts {
		total += c.EnergyShedKWh
	}
	return total
}
