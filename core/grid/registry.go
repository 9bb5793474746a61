package grid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gridshed/gridshed/core/model"
)

// AreaInput carries the caller-supplied fields for a new area. The priority
// score and level are derived by the registry at creation time.
type AreaInput struct {
	Name             string  `json:"name"`
	FeederID         int     `json:"feeder_id"`
	LoadKW           float64 `json:"load_kw"`
	Population       int     `json:"population"`
	Hospitals        int     `json:"hospitals"`
	EmergencyCenters int     `json:"emergency_centers"`
	ResearchCenters  int     `json:"research_centers"`
	Schools          int     `json:"schools"`
}

// Registry owns all grid entities and their id counters. Identifiers are
// monotonically increasing and never reused. The registry performs no
// locking; callers serialize access.
type Registry struct {
	substations map[int]model.Substation
	feeders     map[int]model.Feeder
	areas       map[int]model.Area

	nextSubstationID int
	nextFeederID     int
	nextAreaID       int
}

// NewRegistry creates a registry seeded with the main substation (id 1).
func NewRegistry() *Registry {
	return &Registry{
		substations:      map[int]model.Substation{1: {ID: 1, Name: "Main Substation"}},
		feeders:          map[int]model.Feeder{},
		areas:            map[int]model.Area{},
		nextSubstationID: 2,
		nextFeederID:     1,
		nextAreaID:       1,
	}
}

// AddSubstation registers a new substation.
func (r *Registry) AddSubstation(name string) (model.Substation, error) {
	if strings.TrimSpace(name) == "" {
		return model.Substation{}, fmt.Errorf("substation name is required: %w", ErrValidation)
	}
	s := model.Substation{ID: r.nextSubstationID, Name: name}
	r.substations[s.ID] = s
	r.nextSubstationID++
	return s, nil
}

// AddFeeder registers a feeder under the given substation.
func (r *Registry) AddFeeder(name string, substationID int, capacityKW float64) (model.Feeder, error) {
	if strings.TrimSpace(name) == "" {
		return model.Feeder{}, fmt.Errorf("feeder name is required: %w", ErrValidation)
	}
	if capacityKW < 0 {
		return model.Feeder{}, fmt.Errorf("feeder capacity must be non-negative: %w", ErrValidation)
	}
	if _, ok := r.substations[substationID]; !ok {
		return model.Feeder{}, fmt.Errorf("substation %d: %w", substationID, ErrValidation)
	}
	f := model.Feeder{ID: r.nextFeederID, Name: name, SubstationID: substationID, CapacityKW: capacityKW}
	r.feeders[f.ID] = f
	r.nextFeederID++
	return f, nil
}

// DeleteFeeder removes the feeder and cascades to every area it serves.
// The ids of the cascaded areas are returned so callers can drop any
// per-area state of their own.
func (r *Registry) DeleteFeeder(id int) ([]int, error) {
	if _, ok := r.feeders[id]; !ok {
		return nil, fmt.Errorf("feeder %d: %w", id, ErrNotFound)
	}
	delete(r.feeders, id)
	var cascaded []int
	for aid, a := range r.areas {
		if a.FeederID == id {
			cascaded = append(cascaded, aid)
			delete(r.areas, aid)
		}
	}
	sort.Ints(cascaded)
	return cascaded, nil
}

// AddArea validates the input, scores the area once and registers it.
// Validation happens before the id counter is touched so a rejected
// request leaves the registry exactly as it was.
func (r *Registry) AddArea(in AreaInput) (model.Area, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Area{}, fmt.Errorf("area name is required: %w", ErrValidation)
	}
	if in.LoadKW < 0 {
		return model.Area{}, fmt.Errorf("area load must be non-negative: %w", ErrValidation)
	}
	if in.Population < 0 || in.Hospitals < 0 || in.EmergencyCenters < 0 || in.ResearchCenters < 0 || in.Schools < 0 {
		return model.Area{}, fmt.Errorf("area counts must be non-negative: %w", ErrValidation)
	}
	if _, ok := r.feeders[in.FeederID]; !ok {
		return model.Area{}, fmt.Errorf("feeder %d: %w", in.FeederID, ErrValidation)
	}
	score := model.Score(in.Hospitals, in.EmergencyCenters, in.ResearchCenters, in.Schools, in.Population)
	a := model.Area{
		ID:               r.nextAreaID,
		Name:             in.Name,
		FeederID:         in.FeederID,
		LoadKW:           in.LoadKW,
		Population:       in.Population,
		Hospitals:        in.Hospitals,
		EmergencyCenters: in.EmergencyCenters,
		ResearchCenters:  in.ResearchCenters,
		Schools:          in.Schools,
		PriorityScore:    score,
		PriorityLevel:    model.PriorityForScore(score),
	}
	r.areas[a.ID] = a
	r.nextAreaID++
	return a, nil
}

// DeleteArea removes the area.
func (r *Registry) DeleteArea(id int) error {
	if _, ok := r.areas[id]; !ok {
		return fmt.Errorf("area %d: %w", id, ErrNotFound)
	}
	delete(r.areas, id)
	return nil
}

// Area returns the area with the given id.
func (r *Registry) Area(id int) (model.Area, bool) {
	a, ok := r.areas[id]
	return a, ok
}

// Feeder returns the feeder with the given id.
func (r *Registry) Feeder(id int) (model.Feeder, bool) {
	f, ok := r.feeders[id]
	return f, ok
}

// Areas returns all areas ordered by id.
func (r *Registry) Areas() []model.Area {
	out := make([]model.Area, 0, len(r.areas))
	for _, a := range r.areas {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Feeders returns all feeders ordered by id.
func (r *Registry) Feeders() []model.Feeder {
	out := make([]model.Feeder, 0, len(r.feeders))
	for _, f := range r.feeders {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Substations returns all substations ordered by id.
func (r *Registry) Substations() []model.Substation {
	out := make([]model.Substation, 0, len(r.substations))
	for _, s := range r.substations {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FeederMap returns a copy of the feeder table keyed by id.
func (r *Registry) FeederMap() map[int]model.Feeder {
	out := make(map[int]model.Feeder, len(r.feeders))
	for id, f := range r.feeders {
		out[id] = f
	}
	return out
}

// TotalDemandKW sums the hourly load of every area, the demand if all
// areas are energized.
func (r *Registry) TotalDemandKW() float64 {
	total := 0.0
	for _, a := range r.areas {
		total += a.LoadKW
	}
	return total
}
