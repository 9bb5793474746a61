package model

// Priority levels for demand areas. Level 1 is the most critical and is
// never shed; level 4 is the least critical.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Weighted criticality model for area importance. Counts of critical
// facilities dominate; population contributes half a point per thousand
// inhabitants. Inputs are not validated here; callers reject negatives
// before scoring.
func Score(hospitals, emergencyCenters, researchCenters, schools, population int) float64 {
	return 5*float64(hospitals) +
		4*float64(emergencyCenters) +
		3*float64(researchCenters) +
		2*float64(schools) +
		0.5*(float64(population)/1000)
}

// PriorityForScore maps a criticality score to a discrete priority level.
// Band thresholds are fixed; a boundary score lands in the stricter band.
func PriorityForScore(score float64) int {
	switch {
	case score >= 20:
		return PriorityCritical
	case score >= 10:
		return PriorityHigh
	case score >= 5:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// MaxCutHours returns the maximum cumulative hours an area of the given
// priority level may be cut within one daily plan.
func MaxCutHours(priorityLevel int) float64 {
	switch priorityLevel {
	case PriorityLow:
		return 12
	case PriorityMedium:
		return 6
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}
