package metrics

import "time"

// PlanResult captures one optimization run for observability sinks.
type PlanResult struct {
	Horizon      string
	Budget       int
	Periods      int
	DaysOff      int
	TotalCost    int
	TotalUtility float64
	SolveTime    time.Duration
	Feasible     bool
}

// Sink records plan results. Implementations must be safe for concurrent
// use; the planner calls RecordPlan once per optimization.
type Sink interface {
	RecordPlan(res PlanResult) error
}

// NopSink discards all results.
type NopSink struct{}

func (NopSink) RecordPlan(PlanResult) error { return nil }
