package model

// Substation is the root of the distribution hierarchy. The plant feeds
// substations, substations feed feeders, feeders feed demand areas.
type Substation struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Feeder distributes power from one substation to a set of demand areas.
// CapacityKW is advisory only; no flow limits are enforced on it.
type Feeder struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	SubstationID int     `json:"substation_id"`
	CapacityKW   float64 `json:"capacity_kw"`
}

// Area is a demand area served by exactly one feeder. PriorityScore and
// PriorityLevel are computed once when the area is created and never
// recomputed, even if the inputs they were derived from are edited later.
type Area struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	FeederID         int     `json:"feeder_id"`
	LoadKW           float64 `json:"load_kw"`
	Population       int     `json:"population"`
	Hospitals        int     `json:"hospitals"`
	EmergencyCenters int     `json:"emergency_centers"`
	ResearchCenters  int     `json:"research_centers"`
	Schools          int     `json:"schools"`
	PriorityScore    float64 `json:"priority_score"`
	PriorityLevel    int     `json:"priority_level"`
}

// Sheddable reports whether the area may ever be selected for a cut.
// Priority-1 areas are protected unconditionally.
func (a Area) Sheddable() bool {
	return a.PriorityLevel != PriorityCritical
}
