package maintenance

import (
	"errors"
	"testing"
	"time"

	"github.com/gridshed/gridshed/core/grid"
)

func TestListPriorityOrdering(t *testing.T) {
	tr := NewTracker(ModePriority)
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	tr.Add(1, "Low", 4, "pole down", base)
	tr.Add(2, "Crit", 1, "transformer smoke", base.Add(time.Minute))
	tr.Add(3, "Crit2", 1, "line sag", base.Add(2*time.Minute))
	tr.Add(4, "Mid", 3, "fuse blown", base.Add(3*time.Minute))

	got := tr.List()
	wantAreas := []int{2, 3, 4, 1}
	for i, task := range got {
		if task.AreaID != wantAreas[i] {
			t.Fatalf("position %d: expected area %d got %d", i, wantAreas[i], task.AreaID)
		}
	}
}

func TestListFIFOOrdering(t *testing.T) {
	tr := NewTracker(ModeFIFO)
	now := time.Now()
	tr.Add(1, "Low", 4, "first", now)
	tr.Add(2, "Crit", 1, "second", now)
	got := tr.List()
	if got[0].Issue != "first" || got[1].Issue != "second" {
		t.Fatalf("fifo mode must keep creation order: %+v", got)
	}
}

func TestListIsNonDestructive(t *testing.T) {
	tr := NewTracker(ModePriority)
	tr.Add(1, "A", 4, "x", time.Now())
	if len(tr.List()) != 1 || len(tr.List()) != 1 {
		t.Fatalf("listing must not drain tasks")
	}
}

func TestResolveRemovesPermanently(t *testing.T) {
	tr := NewTracker(ModePriority)
	task := tr.Add(1, "A", 4, "x", time.Now())
	if err := tr.Resolve(task.ID); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := tr.Resolve(task.ID); !errors.Is(err, grid.ErrNotFound) {
		t.Fatalf("resolving twice must be not found, got %v", err)
	}
	if len(tr.List()) != 0 {
		t.Fatalf("resolved task still listed")
	}
}

func TestDropArea(t *testing.T) {
	tr := NewTracker(ModePriority)
	tr.Add(1, "A", 4, "x", time.Now())
	tr.Add(2, "B", 4, "y", time.Now())
	tr.DropArea(1)
	got := tr.List()
	if len(got) != 1 || got[0].AreaID != 2 {
		t.Fatalf("expected only area 2 tasks to remain: %+v", got)
	}
}
