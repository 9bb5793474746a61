// Package engine is the single-writer façade over the scheduling core.
// All entity state lives behind one mutex; mutations are short and
// synchronous, reads observe a consistent snapshot.
package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gridshed/gridshed/core/grid"
	"github.com/gridshed/gridshed/core/logger"
	"github.com/gridshed/gridshed/core/maintenance"
	"github.com/gridshed/gridshed/core/metrics"
	"github.com/gridshed/gridshed/core/model"
	"github.com/gridshed/gridshed/core/plan"
	"github.com/gridshed/gridshed/internal/eventbus"
)

// Config groups the engine's tunables.
type Config struct {
	Scheduler   plan.Config      `json:"scheduler"`
	Maintenance maintenance.Mode `json:"maintenance_mode"`
}

// Engine owns the registry, the shedding index, the current daily plan
// and the maintenance tracker.
type Engine struct {
	mu      sync.RWMutex
	reg     *grid.Registry
	index   *plan.ShedIndex
	sched   *plan.Scheduler
	tracker *maintenance.Tracker
	current plan.DayPlan
	hasPlan bool

	log  logger.Logger
	sink metrics.PlanSink
	bus  *eventbus.Bus

	// now is swapped in tests for deterministic timestamps.
	now func() time.Time
}

// New creates an engine seeded with the main substation and an empty
// index. sink and bus may be nil.
func New(cfg Config, log logger.Logger, sink metrics.PlanSink, bus *eventbus.Bus) *Engine {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	reg := grid.NewRegistry()
	return &Engine{
		reg:     reg,
		index:   plan.BuildShedIndex(nil),
		sched:   plan.NewScheduler(cfg.Scheduler, log),
		tracker: maintenance.NewTracker(cfg.Maintenance),
		log:     log,
		sink:    sink,
		bus:     bus,
		now:     time.Now,
	}
}

func (e *Engine) publish(ev eventbus.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}

// rebuildIndex recomputes the shedding order from the current areas.
// Called under the write lock after every area or feeder mutation.
func (e *Engine) rebuildIndex() {
	e.index = plan.BuildShedIndex(e.reg.Areas())
}

// CreateFeeder registers a feeder under the main substation.
func (e *Engine) CreateFeeder(name string, capacityKW float64) (model.Feeder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, err := e.reg.AddFeeder(name, 1, capacityKW)
	if err != nil {
		return model.Feeder{}, err
	}
	if e.log != nil {
		e.log.Infof("feeder %d (%s) created", f.ID, f.Name)
	}
	return f, nil
}

// DeleteFeeder removes the feeder, cascades to its areas, drops their
// maintenance tasks and rebuilds the index.
func (e *Engine) DeleteFeeder(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	cascaded, err := e.reg.DeleteFeeder(id)
	if err != nil {
		return err
	}
	for _, aid := range cascaded {
		e.tracker.DropArea(aid)
	}
	e.rebuildIndex()
	e.publish(eventbus.FeederDeleted{FeederID: id, CascadedAreas: cascaded})
	if e.log != nil {
		e.log.Infof("feeder %d deleted, %d areas cascaded", id, len(cascaded))
	}
	return nil
}

// CreateArea validates, scores and registers an area, then rebuilds the
// shedding index. The priority score is fixed for the area's lifetime.
func (e *Engine) CreateArea(in grid.AreaInput) (model.Area, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.reg.AddArea(in)
	if err != nil {
		return model.Area{}, err
	}
	e.rebuildIndex()
	e.publish(eventbus.AreaCreated{AreaID: a.ID, PriorityLevel: a.PriorityLevel})
	if e.log != nil {
		e.log.Infof("area %d (%s) created with score %.2f (P%d)", a.ID, a.Name, a.PriorityScore, a.PriorityLevel)
	}
	return a, nil
}

// DeleteArea removes the area, its maintenance tasks and rebuilds the
// index.
func (e *Engine) DeleteArea(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.reg.DeleteArea(id); err != nil {
		return err
	}
	e.tracker.DropArea(id)
	e.rebuildIndex()
	e.publish(eventbus.AreaDeleted{AreaID: id})
	return nil
}

// GenerateDailySchedule runs the 24-slot scheduler against the current
// grid and atomically replaces the authoritative plan. The mutex is held
// for the full run; the new plan is never visible half-written.
func (e *Engine) GenerateDailySchedule(budgetKWh float64) (plan.DayPlan, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	started := e.now()
	ep := plan.PlanEnergy(budgetKWh, e.reg.TotalDemandKW())
	dp := e.sched.Run(e.reg.Areas(), e.reg.FeederMap(), ep, started)
	e.current = dp
	e.hasPlan = true

	rec := metrics.PlanRunRecord{
		RunID:         dp.RunID,
		GeneratedAt:   dp.GeneratedAt,
		BudgetKWh:     ep.BudgetKWh,
		RequiredKWh:   ep.RequiredKWh,
		ScalingFactor: ep.ScalingFactor,
		ShedKWh:       dp.TotalShedKWh(),
		UnservedKWh:   dp.UnservedKWh,
		Cuts:          len(dp.Cuts),
		Shortage:      ep.Shortage,
		NoDemand:      ep.NoDemand,
		Duration:      e.now().Sub(started),
	}
	if err := e.sink.RecordPlanRun(rec); err != nil && e.log != nil {
		e.log.Warnf("record plan run: %v", err)
	}
	e.publish(eventbus.PlanGenerated{
		RunID:       dp.RunID,
		Cuts:        len(dp.Cuts),
		ShedKWh:     rec.ShedKWh,
		UnservedKWh: dp.UnservedKWh,
		Shortage:    ep.Shortage,
	})
	return dp.Clone(), nil
}

// CurrentPlan returns a copy of the authoritative daily plan. Before the
// first generation the second return is false.
func (e *Engine) CurrentPlan() (plan.DayPlan, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current.Clone(), e.hasPlan
}

// CreateMaintenanceTask records an issue against an existing area.
func (e *Engine) CreateMaintenanceTask(areaID int, issue string) (maintenance.Task, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if strings.TrimSpace(issue) == "" {
		return maintenance.Task{}, fmt.Errorf("issue text is required: %w", grid.ErrValidation)
	}
	a, ok := e.reg.Area(areaID)
	if !ok {
		return maintenance.Task{}, fmt.Errorf("area %d: %w", areaID, grid.ErrValidation)
	}
	task := e.tracker.Add(a.ID, a.Name, a.PriorityLevel, strings.TrimSpace(issue), e.now())
	e.publish(eventbus.TaskCreated{TaskID: task.ID, AreaID: a.ID})
	return task, nil
}

// ListMaintenanceTasks returns the open tasks in the configured order.
func (e *Engine) ListMaintenanceTasks() []maintenance.Task {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tracker.List()
}

// ResolveMaintenanceTask removes the task permanently.
func (e *Engine) ResolveMaintenanceTask(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.tracker.Resolve(id); err != nil {
		return err
	}
	e.publish(eventbus.TaskResolved{TaskID: id})
	return nil
}

// EnergyDistribution rolls up the daily supplied energy per feeder,
// substation and plant under the current plan's cut hours.
func (e *Engine) EnergyDistribution() plan.Distribution {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var cutHours map[int]float64
	if e.hasPlan {
		cutHours = e.current.CutHours
	}
	return plan.ComputeDistribution(e.reg.Areas(), e.reg.FeederMap(), cutHours)
}

// Areas returns all areas ordered by id.
func (e *Engine) Areas() []model.Area {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Areas()
}

// Feeders returns all feeders ordered by id.
func (e *Engine) Feeders() []model.Feeder {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Feeders()
}

// Substations returns all substations ordered by id.
func (e *Engine) Substations() []model.Substation {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Substations()
}

// FeederLoads returns per-feeder aggregate load and area counts.
func (e *Engine) FeederLoads() (map[int]float64, map[int]int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	load := map[int]float64{}
	count := map[int]int{}
	for _, a := range e.reg.Areas() {
		load[a.FeederID] += a.LoadKW
		count[a.FeederID]++
	}
	return load, count
}

// Dashboard summarizes the grid for display.
type Dashboard struct {
	TotalDemandKW     float64            `json:"total_demand_kw"`
	AvailableHourlyKW float64            `json:"available_hourly_kw"`
	PriorityCounts    [4]int             `json:"priority_counts"`
	Substations       []model.Substation `json:"substations"`
	HasPlan           bool               `json:"has_plan"`
}

// DashboardView computes the dashboard summary from current state.
func (e *Engine) DashboardView() Dashboard {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var d Dashboard
	d.TotalDemandKW = e.reg.TotalDemandKW()
	if e.hasPlan {
		d.AvailableHourlyKW = e.current.Energy.AvailableHourlyKW
		d.HasPlan = true
	}
	for _, a := range e.reg.Areas() {
		if a.PriorityLevel >= 1 && a.PriorityLevel <= 4 {
			d.PriorityCounts[a.PriorityLevel-1]++
		}
	}
	d.Substations = e.reg.Substations()
	return d
}

// ShedOrder exposes the current shedding order, most shed-worthy first.
func (e *Engine) ShedOrder() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index.Order()
}
