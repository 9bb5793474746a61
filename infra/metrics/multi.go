package metrics

import (
	"errors"

	coremetrics "github.com/gridshed/gridshed/core/metrics"
)

// MultiSink fans records out to several sinks. All sinks are attempted;
// their errors are joined.
type MultiSink struct {
	sinks []coremetrics.PlanSink
}

// NewMultiSink creates a MultiSink from the given sinks.
func NewMultiSink(sinks ...coremetrics.PlanSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordPlanRun implements coremetrics.PlanSink.
func (m *MultiSink) RecordPlanRun(rec coremetrics.PlanRunRecord) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPlanRun(rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
