package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hfrick/leaveplan/core/logger"
	"github.com/hfrick/leaveplan/core/model"
)

// Constraints are the hard requirements a plan must satisfy on top of the
// budget. A zero value disables each of them.
type Constraints struct {
	// MustHaveDates must each be covered by a selected period. They are
	// expected to be cost-free in the cost table (the service forces this
	// before building the table).
	MustHaveDates []time.Time
	// MinOnePeriodLength requires at least one selected period of this
	// length or more.
	MinOnePeriodLength int
}

// InfeasibleError reports a hard constraint no selection can satisfy. Best
// carries the optimal plan without that constraint so callers can decide
// whether to relax it.
type InfeasibleError struct {
	Constraint string
	Best       *model.Plan
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no feasible plan satisfies constraint %q", e.Constraint)
}

// ScoredPeriod pairs a candidate period with its precomputed budget cost and
// utility. Both are pure functions of the period and the tables, computed
// once per candidate.
type ScoredPeriod struct {
	Period  model.Period
	Cost    int
	Utility float64
}

// Optimizer selects the utility-maximising set of pairwise non-overlapping
// periods whose total cost stays within the budget. It is a pure in-memory
// batch computation: no I/O, no shared state between calls, safe to run
// concurrently with different inputs.
type Optimizer struct {
	MaxPeriodLength int
	Costs           *CostTable
	Utility         UtilityModel
	Log             logger.Logger
}

// NewOptimizer wires an optimizer over prebuilt cost and utility models.
func NewOptimizer(costs *CostTable, utility UtilityModel, maxPeriodLength int, log logger.Logger) *Optimizer {
	if log == nil {
		log = logger.Nop{}
	}
	return &Optimizer{MaxPeriodLength: maxPeriodLength, Costs: costs, Utility: utility, Log: log}
}

// ScorePeriods generates and scores the complete candidate universe for the
// horizon. No period outside this set can ever be optimal because the
// optimizer only composes from it.
func (o *Optimizer) ScorePeriods(h model.Horizon) []ScoredPeriod {
	periods := GeneratePeriods(h, o.MaxPeriodLength)
	scored := make([]ScoredPeriod, len(periods))
	for i, p := range periods {
		scored[i] = ScoredPeriod{Period: p, Cost: o.Costs.PeriodCost(p), Utility: o.Utility.PeriodUtility(p)}
	}
	return scored
}

// scoreByStart arranges the scored universe by start-day index; byStart[i][k-1]
// is the candidate of duration k starting on horizon day i.
func (o *Optimizer) scoreByStart(h model.Horizon) [][]ScoredPeriod {
	byStart := make([][]ScoredPeriod, h.Length())
	for _, sp := range o.ScorePeriods(h) {
		i := h.DayIndex(sp.Period.StartDate())
		byStart[i] = append(byStart[i], sp)
	}
	return byStart
}

// FindOptimalPlan runs the exact dynamic program over the horizon and
// returns the optimal plan. When a hard constraint cannot be met it returns
// an *InfeasibleError carrying the best unconstrained plan.
//
// The recurrence walks the horizon backwards: best(day, b) is the maximum
// utility achievable from day onward with b budget units left, either
// skipping the day or starting one of the feasible periods on it. The
// min-one-long-period constraint adds a boolean "already satisfied"
// dimension to the state. Ties are broken toward lower total cost, then
// toward the lexicographically earliest sequence of start dates.
func (o *Optimizer) FindOptimalPlan(ctx context.Context, h model.Horizon, budget int, cons Constraints) (*model.Plan, error) {
	if budget < 0 {
		return nil, fmt.Errorf("budget must be non-negative, got %d", budget)
	}
	for _, d := range cons.MustHaveDates {
		if !h.Contains(d) {
			// The caller's violation is the date outside the horizon; a
			// further infeasibility in the fallback solve must not mask it.
			plan, err := o.FindOptimalPlan(ctx, h, budget, Constraints{MinOnePeriodLength: cons.MinOnePeriodLength})
			if err != nil {
				var inner *InfeasibleError
				if !errors.As(err, &inner) {
					return nil, err
				}
				plan = inner.Best
			}
			return nil, &InfeasibleError{Constraint: "must_have_dates", Best: plan}
		}
	}

	byStart := o.scoreByStart(h)

	start := time.Now()
	periods, ok, err := o.solve(ctx, h, byStart, budget, cons.MinOnePeriodLength)
	if err != nil {
		return nil, err
	}
	if !ok {
		// No state satisfies the long-period requirement; surface the
		// unconstrained optimum alongside the failure.
		best, _, berr := o.solve(ctx, h, byStart, budget, 0)
		if berr != nil {
			return nil, berr
		}
		return nil, &InfeasibleError{Constraint: "min_one_period_length", Best: o.buildPlan(h, best)}
	}

	periods = o.coverMustHaves(h, periods, cons.MustHaveDates)
	plan := o.buildPlan(h, periods)

	o.Log.Debugw("optimization finished", map[string]any{
		"horizon":       h.String(),
		"budget":        budget,
		"periods":       len(plan.Periods),
		"total_cost":    plan.TotalCost,
		"total_utility": plan.TotalUtility,
		"elapsed":       time.Since(start).String(),
	})
	return plan, nil
}

// solve runs the DP and reconstructs the chosen periods. ok is false when the
// long-period requirement makes every terminal state infeasible.
func (o *Optimizer) solve(ctx context.Context, h model.Horizon, byStart [][]ScoredPeriod, budget, minLong int) ([]ScoredPeriod, bool, error) {
	n := h.Length()
	flags := 1
	if minLong > 0 {
		flags = 2
	}
	negInf := math.Inf(-1)

	size := (n + 1) * (budget + 1) * flags
	util := make([]float64, size)
	cost := make([]int, size)
	choice := make([]int, size)
	// first holds the index of the earliest selected start in the optimal
	// suffix, or n for the empty selection.
	first := make([]int, size)
	idx := func(day, b, f int) int { return (day*(budget+1)+b)*flags + f }

	// seqBefore orders start sequences by their leading two elements, with n
	// marking the end of a sequence. A sequence precedes its extensions, so
	// n sorts before every real start.
	seqBefore := func(f1, s1, f2, s2 int) bool {
		if f1 != f2 {
			return f1 == n || (f2 != n && f1 < f2)
		}
		if s1 == s2 {
			return false
		}
		return s1 == n || (s2 != n && s1 < s2)
	}

	// Base case: past the horizon end nothing more can be gained. With the
	// long-period requirement active, the flag must already be set.
	for b := 0; b <= budget; b++ {
		for f := 0; f < flags; f++ {
			first[idx(n, b, f)] = n
		}
		if minLong > 0 {
			util[idx(n, b, 0)] = negInf
		}
	}

	for day := n - 1; day >= 0; day-- {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		for b := 0; b <= budget; b++ {
			for f := 0; f < flags; f++ {
				skip := idx(day+1, b, f)
				bestU := util[skip]
				bestC := cost[skip]
				bestF := first[skip]
				bestNext := n
				bestK := 0
				for _, sp := range byStart[day] {
					if sp.Cost > b {
						break
					}
					k := sp.Period.Duration()
					nf := f
					if minLong > 0 && k >= minLong {
						nf = 1
					}
					rest := idx(day+k, b-sp.Cost, nf)
					if math.IsInf(util[rest], -1) {
						continue
					}
					u := sp.Utility + util[rest]
					c := sp.Cost + cost[rest]
					// A take's sequence is day followed by the suffix
					// starting at first[rest]. The skip branch never ties
					// on the leading start (its first is past day or n), so
					// the second element only decides between takes.
					if u > bestU || (u == bestU && (c < bestC || (c == bestC && seqBefore(day, first[rest], bestF, bestNext)))) {
						bestU, bestC, bestF, bestNext, bestK = u, c, day, first[rest], k
					}
				}
				util[idx(day, b, f)] = bestU
				cost[idx(day, b, f)] = bestC
				first[idx(day, b, f)] = bestF
				choice[idx(day, b, f)] = bestK
			}
		}
	}

	if math.IsInf(util[idx(0, budget, 0)], -1) {
		return nil, false, nil
	}

	// Replay the arg-max choices to reconstruct the selection.
	var selected []ScoredPeriod
	day, b, f := 0, budget, 0
	for day < n {
		k := choice[idx(day, b, f)]
		if k == 0 {
			day++
			continue
		}
		sp := byStart[day][k-1]
		selected = append(selected, sp)
		if minLong > 0 && k >= minLong {
			f = 1
		}
		b -= sp.Cost
		day += k
	}
	return selected, true, nil
}

// coverMustHaves adds a standalone single-day period for every protected
// date the DP left uncovered. Protected dates are cost-free and, being
// uncovered, cannot overlap a selected period, so the insertion never
// breaks budget or disjointness.
func (o *Optimizer) coverMustHaves(h model.Horizon, selected []ScoredPeriod, mustHave []time.Time) []ScoredPeriod {
	for _, d := range mustHave {
		covered := false
		for _, sp := range selected {
			if sp.Period.Contains(d) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		p, err := model.NewPeriod(d, 1)
		if err != nil {
			continue
		}
		selected = append(selected, ScoredPeriod{Period: p, Cost: o.Costs.PeriodCost(p), Utility: o.Utility.PeriodUtility(p)})
	}
	return selected
}

func (o *Optimizer) buildPlan(h model.Horizon, selected []ScoredPeriod) *model.Plan {
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Period.StartDate().Before(selected[j].Period.StartDate())
	})
	plan := &model.Plan{ID: uuid.NewString(), Horizon: h, Periods: make([]model.Period, 0, len(selected))}
	for _, sp := range selected {
		plan.Periods = append(plan.Periods, sp.Period)
		plan.TotalCost += sp.Cost
		plan.TotalUtility += sp.Utility
	}
	return plan
}
