package metrics

import "time"

// PlanRunRecord summarizes one scheduling run for observability purposes.
type PlanRunRecord struct {
	RunID         string
	GeneratedAt   time.Time
	BudgetKWh     float64
	RequiredKWh   float64
	ScalingFactor float64
	ShedKWh       float64
	UnservedKWh   float64
	Cuts          int
	Shortage      bool
	NoDemand      bool
	Duration      time.Duration
}

// PlanSink records scheduling runs.
type PlanSink interface {
	RecordPlanRun(rec PlanRunRecord) error
}

// NopSink discards all records.
type NopSink struct{}

// RecordPlanRun implements PlanSink.
func (NopSink) RecordPlanRun(PlanRunRecord) error { return nil }
