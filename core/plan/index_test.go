package plan

import (
	"reflect"
	"testing"

	"github.com/gridshed/gridshed/core/model"
)

func TestShedIndexOrdering(t *testing.T) {
	areas := []model.Area{
		{ID: 1, PriorityLevel: 1, PriorityScore: 30},
		{ID: 2, PriorityLevel: 4, PriorityScore: 2},
		{ID: 3, PriorityLevel: 4, PriorityScore: 4},
		{ID: 4, PriorityLevel: 2, PriorityScore: 12},
		{ID: 5, PriorityLevel: 3, PriorityScore: 7},
	}
	ix := BuildShedIndex(areas)
	want := []int{3, 2, 5, 4, 1}
	if got := ix.Order(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v got %v", want, got)
	}
}

func TestShedIndexStableTiebreak(t *testing.T) {
	areas := []model.Area{
		{ID: 9, PriorityLevel: 4, PriorityScore: 3},
		{ID: 2, PriorityLevel: 4, PriorityScore: 3},
		{ID: 5, PriorityLevel: 4, PriorityScore: 3},
	}
	ix := BuildShedIndex(areas)
	want := []int{2, 5, 9}
	if got := ix.Order(); !reflect.DeepEqual(got, want) {
		t.Fatalf("equal keys must order by id: got %v", got)
	}
}

func TestShedIndexIncludesCriticalAreas(t *testing.T) {
	ix := BuildShedIndex([]model.Area{{ID: 1, PriorityLevel: 1, PriorityScore: 30}})
	if ix.Len() != 1 {
		t.Fatalf("critical areas are indexed, excluded only at selection time")
	}
}

func TestShedIndexOrderReturnsCopy(t *testing.T) {
	ix := BuildShedIndex([]model.Area{{ID: 1, PriorityLevel: 4}, {ID: 2, PriorityLevel: 4}})
	o := ix.Order()
	o[0] = 99
	if got := ix.Order()[0]; got == 99 {
		t.Fatalf("Order must not expose internal state")
	}
}
