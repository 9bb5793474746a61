// Package maintenance tracks free-text maintenance issues raised against
// demand areas until they are resolved.
package maintenance

import (
	"fmt"
	"sort"
	"time"

	"github.com/gridshed/gridshed/core/grid"
)

// Mode selects the ordering of the task list.
type Mode string

const (
	// ModePriority drains tasks most-critical area first, ties broken by
	// submission time. This matches the criticality-first policy of the
	// scheduler and is the default.
	ModePriority Mode = "priority"
	// ModeFIFO drains tasks in strict creation order regardless of area
	// priority.
	ModeFIFO Mode = "fifo"
)

// Task is one open maintenance issue. AreaPriority is the area's
// priority level at creation time and does not track later changes.
type Task struct {
	ID           int       `json:"id"`
	AreaID       int       `json:"area_id"`
	AreaName     string    `json:"area_name"`
	AreaPriority int       `json:"area_priority"`
	Issue        string    `json:"issue"`
	CreatedAt    time.Time `json:"created_at"`
}

// Tracker holds open tasks. Resolved tasks are removed permanently; no
// archive is kept. The tracker performs no locking; callers serialize
// access.
type Tracker struct {
	mode   Mode
	tasks  map[int]Task
	nextID int
}

// NewTracker creates a tracker with the given listing mode. An empty
// mode defaults to priority ordering.
func NewTracker(mode Mode) *Tracker {
	if mode == "" {
		mode = ModePriority
	}
	return &Tracker{mode: mode, tasks: map[int]Task{}, nextID: 1}
}

// Add records a new task. Area fields are supplied by the caller, which
// has already resolved the area against the registry.
func (t *Tracker) Add(areaID int, areaName string, areaPriority int, issue string, now time.Time) Task {
	task := Task{
		ID:           t.nextID,
		AreaID:       areaID,
		AreaName:     areaName,
		AreaPriority: areaPriority,
		Issue:        issue,
		CreatedAt:    now,
	}
	t.tasks[task.ID] = task
	t.nextID++
	return task
}

// List returns a snapshot of the open tasks in the tracker's mode.
// Listing never mutates state.
func (t *Tracker) List() []Task {
	out := make([]Task, 0, len(t.tasks))
	for _, task := range t.tasks {
		out = append(out, task)
	}
	switch t.mode {
	case ModeFIFO:
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	default:
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.AreaPriority != b.AreaPriority {
				return a.AreaPriority < b.AreaPriority
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		})
	}
	return out
}

// Resolve removes the task permanently.
func (t *Tracker) Resolve(id int) error {
	if _, ok := t.tasks[id]; !ok {
		return fmt.Errorf("task %d: %w", id, grid.ErrNotFound)
	}
	delete(t.tasks, id)
	return nil
}

// DropArea removes all tasks referencing the given area. Used when an
// area is deleted so no task points at a missing entity.
func (t *Tracker) DropArea(areaID int) {
	for id, task := range t.tasks {
		if task.AreaID == areaID {
			delete(t.tasks, id)
		}
	}
}
