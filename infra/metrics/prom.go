package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/gridshed/gridshed/core/metrics"
)

// PromSink records scheduling runs in Prometheus metrics.
type PromSink struct {
	runs     *prometheus.CounterVec
	shed     prometheus.Counter
	unserved prometheus.Gauge
	duration prometheus.Histogram
}

// NewPromSink registers plan metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_runs_total",
		Help: "Total number of daily schedule generations",
	}, []string{"shortage"})
	shed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plan_energy_shed_kwh_total",
		Help: "Total energy shed across all generated plans",
	})
	unserved := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_unserved_kwh",
		Help: "Unserved energy of the most recent plan",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_run_duration_seconds",
		Help:    "Time spent computing a daily plan",
		Buckets: prometheus.DefBuckets,
	})

	s := &PromSink{runs: runs, shed: shed, unserved: unserved, duration: duration}
	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(shed); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.shed = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(unserved); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.unserved = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			s.duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	return s, nil
}

// RecordPlanRun implements coremetrics.PlanSink.
func (s *PromSink) RecordPlanRun(rec coremetrics.PlanRunRecord) error {
	s.runs.WithLabelValues(strconv.FormatBool(rec.Shortage)).Inc()
	s.shed.Add(rec.ShedKWh)
	s.unserved.Set(rec.UnservedKWh)
	s.duration.Observe(rec.Duration.Seconds())
	return nil
}
