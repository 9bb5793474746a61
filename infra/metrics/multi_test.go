package metrics

import (
	"errors"
	"testing"

	coremetrics "github.com/gridshed/gridshed/core/metrics"
)

type recordingSink struct {
	records int
	err     error
}

func (r *recordingSink) RecordPlanRun(coremetrics.PlanRunRecord) error {
	r.records++
	return r.err
}

func TestMultiSinkFansOut(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{err: errors.New("boom")}
	m := NewMultiSink(a, b)
	err := m.RecordPlanRun(coremetrics.PlanRunRecord{})
	if a.records != 1 || b.records != 1 {
		t.Fatalf("all sinks must be attempted")
	}
	if err == nil {
		t.Fatalf("error from a sink must propagate")
	}
}
