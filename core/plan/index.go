package plan

import (
	"sort"

	"github.com/gridshed/gridshed/core/model"
)

// ShedIndex orders areas from most shed-worthy to most protected:
// descending priority level (P4 before P1), then descending priority
// score, then ascending id as a stable tiebreak. It is rebuilt in full
// after every area or feeder mutation; at this entity count a sort beats
// maintaining a tree.
type ShedIndex struct {
	order []int
}

// BuildShedIndex sorts the given areas into shed-priority order. All
// areas are indexed, including Priority-1 ones; protection of critical
// areas is enforced at selection time, not here.
func BuildShedIndex(areas []model.Area) *ShedIndex {
	sorted := make([]model.Area, len(areas))
	copy(sorted, areas)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.PriorityLevel != b.PriorityLevel {
			return a.PriorityLevel > b.PriorityLevel
		}
		if a.PriorityScore != b.PriorityScore {
			return a.PriorityScore > b.PriorityScore
		}
		return a.ID < b.ID
	})
	ix := &ShedIndex{order: make([]int, len(sorted))}
	for i, a := range sorted {
		ix.order[i] = a.ID
	}
	return ix
}

// Order returns the area ids in shed-priority order, most shed-worthy
// first. The returned slice is a copy.
func (ix *ShedIndex) Order() []int {
	out := make([]int, len(ix.order))
	copy(out, ix.order)
	return out
}

// Len returns the number of indexed areas.
func (ix *ShedIndex) Len() int { return len(ix.order) }
