package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/hfrick/leaveplan/core/metrics"
)

// PromSink records optimization runs in Prometheus metrics.
type PromSink struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	daysOff  prometheus.Gauge
	utility  prometheus.Gauge
}

// NewPromSink registers planner metrics on the default Prometheus registerer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_runs_total",
		Help: "Total number of optimization runs",
	}, []string{"feasible"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_solve_duration_seconds",
		Help:    "Time spent in the plan optimizer",
		Buckets: prometheus.DefBuckets,
	})
	daysOff := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_days_off",
		Help: "Number of days off in the latest plan",
	})
	utility := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_total_utility",
		Help: "Total utility of the latest plan",
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(daysOff); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			daysOff = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(utility); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			utility = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, duration: duration, daysOff: daysOff, utility: utility}, nil
}

// RecordPlan updates the counters and gauges for one optimization run.
func (s *PromSink) RecordPlan(res coremetrics.PlanResult) error {
	s.runs.WithLabelValues(strconv.FormatBool(res.Feasible)).Inc()
	s.duration.Observe(res.SolveTime.Seconds())
	if res.Feasible {
		s.daysOff.Set(float64(res.DaysOff))
		s.utility.Set(res.TotalUtility)
	}
	return nil
}
