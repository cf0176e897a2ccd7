package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hfrick/leaveplan/core/model"
)

// plainModel is a utility model without preferences: every day is worth 1.
func plainModel() UtilityModel {
	return UtilityModel{
		Baseline:        1,
		MinValuedLength: 3,
		GainStart:       4,
		GainCutoff:      20,
		Scaler:          1.1,
	}
}

// tenDayHorizon starts on Monday 2026-01-05 and spans one weekend.
func tenDayHorizon(t *testing.T) model.Horizon {
	t.Helper()
	h, err := model.HorizonFrom(model.Date(2026, time.January, 5), 10)
	require.NoError(t, err)
	return h
}

func TestFindOptimalPlanBridgesWeekend(t *testing.T) {
	h := tenDayHorizon(t)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 10, nil)

	plan, err := opt.FindOptimalPlan(context.Background(), h, 4, Constraints{})
	require.NoError(t, err)

	// Four budget days buy a six-day block wrapped around the weekend:
	// Tue 06 Jan through Sun 11 Jan, utility 6*1 + 3*1.1.
	require.Len(t, plan.Periods, 1)
	p := plan.Periods[0]
	require.True(t, p.StartDate().Equal(model.Date(2026, time.January, 6)), "got %s", p)
	require.Equal(t, 6, p.Duration())
	require.Equal(t, 4, plan.TotalCost)
	require.InDelta(t, 6+3*1.1, plan.TotalUtility, 1e-9)
}

func TestFindOptimalPlanZeroBudget(t *testing.T) {
	h := tenDayHorizon(t)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 10, nil)

	plan, err := opt.FindOptimalPlan(context.Background(), h, 0, Constraints{})
	require.NoError(t, err)
	require.Empty(t, plan.Periods)
	require.Equal(t, 0, plan.TotalCost)
	require.Equal(t, 0.0, plan.TotalUtility)
}

func TestFindOptimalPlanMustHaveSunday(t *testing.T) {
	h := tenDayHorizon(t)
	sunday := model.Date(2026, time.January, 11)
	cons := Constraints{MustHaveDates: []time.Time{sunday}}
	costs := NewCostTable(h, cons.MustHaveDates)
	opt := NewOptimizer(costs, plainModel(), 10, nil)

	plan, err := opt.FindOptimalPlan(context.Background(), h, 4, cons)
	require.NoError(t, err)
	require.True(t, plan.Covers(sunday))
	// The Sunday is already free; no budget is charged for it.
	require.Equal(t, 4, plan.TotalCost)
}

func TestFindOptimalPlanMustHaveStandalone(t *testing.T) {
	h := tenDayHorizon(t)
	wednesday := model.Date(2026, time.January, 7)
	cons := Constraints{MustHaveDates: []time.Time{wednesday}}
	// The protected date is forced cost-free before the table is built.
	costs := NewCostTable(h, cons.MustHaveDates)
	opt := NewOptimizer(costs, plainModel(), 10, nil)

	plan, err := opt.FindOptimalPlan(context.Background(), h, 0, cons)
	require.NoError(t, err)
	require.True(t, plan.Covers(wednesday))
	require.Equal(t, 0, plan.TotalCost)
}

func TestFindOptimalPlanMustHaveOutsideHorizon(t *testing.T) {
	h := tenDayHorizon(t)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 10, nil)

	_, err := opt.FindOptimalPlan(context.Background(), h, 4,
		Constraints{MustHaveDates: []time.Time{model.Date(2027, time.January, 1)}})
	var inf *InfeasibleError
	require.ErrorAs(t, err, &inf)
	require.Equal(t, "must_have_dates", inf.Constraint)
	require.NotNil(t, inf.Best)
}

func TestFindOptimalPlanLongPeriodInfeasible(t *testing.T) {
	h, err := model.HorizonFrom(model.Date(2026, time.January, 5), 60)
	require.NoError(t, err)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 20, nil)

	_, err = opt.FindOptimalPlan(context.Background(), h, 2, Constraints{MinOnePeriodLength: 20})
	var inf *InfeasibleError
	require.ErrorAs(t, err, &inf)
	require.Equal(t, "min_one_period_length", inf.Constraint)
	require.NotNil(t, inf.Best, "the unconstrained best plan must be attached")
	require.LessOrEqual(t, inf.Best.TotalCost, 2)
}

func TestFindOptimalPlanLongPeriodSatisfied(t *testing.T) {
	h, err := model.HorizonFrom(model.Date(2026, time.January, 5), 30)
	require.NoError(t, err)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 14, nil)

	plan, err := opt.FindOptimalPlan(context.Background(), h, 10, Constraints{MinOnePeriodLength: 10})
	require.NoError(t, err)
	longest := 0
	for _, p := range plan.Periods {
		if p.Duration() > longest {
			longest = p.Duration()
		}
	}
	require.GreaterOrEqual(t, longest, 10)
	require.LessOrEqual(t, plan.TotalCost, 10)
}

func TestFindOptimalPlanTieBreakPrefersLowerCost(t *testing.T) {
	h := tenDayHorizon(t)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 3, nil)

	// Every three-day block is worth 3.0; with budget 2 the affordable
	// candidates start Thu 08 (cost 2), Fri 09 (cost 1) and Sat 10
	// (cost 1). Lower cost outranks the earlier start.
	plan, err := opt.FindOptimalPlan(context.Background(), h, 2, Constraints{})
	require.NoError(t, err)
	require.Len(t, plan.Periods, 1)
	require.True(t, plan.Periods[0].StartDate().Equal(model.Date(2026, time.January, 9)),
		"got %s", plan.Periods[0])
	require.Equal(t, 1, plan.TotalCost)
}

func TestFindOptimalPlanTieBreakPrefersSinglePeriod(t *testing.T) {
	// Five workdays, every day worth exactly 1, no duration bonus. Spending
	// the budget of 3 yields utility 3 whichever days are taken; the
	// earliest start sequence is the lone Mon-Wed period, not three
	// singletons starting Mon, Tue and Wed.
	h, err := model.HorizonFrom(model.Date(2026, time.January, 5), 5)
	require.NoError(t, err)
	um := UtilityModel{Baseline: 1, MinValuedLength: 1, GainStart: 6, GainCutoff: 6}
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, um, 3, nil)

	plan, err := opt.FindOptimalPlan(context.Background(), h, 3, Constraints{})
	require.NoError(t, err)
	require.Len(t, plan.Periods, 1)
	p := plan.Periods[0]
	require.True(t, p.StartDate().Equal(model.Date(2026, time.January, 5)), "got %s", p)
	require.Equal(t, 3, p.Duration())
	require.Equal(t, 3, plan.TotalCost)
	require.InDelta(t, 3, plan.TotalUtility, 1e-9)
}

func TestFindOptimalPlanMustHaveOutsideHorizonWithInfeasibleLongPeriod(t *testing.T) {
	h := tenDayHorizon(t)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 10, nil)

	// Both constraints fail: the protected date is outside the horizon and
	// the only ten-day period costs more than budget 2. The caller's
	// violation is the date, so that is the constraint reported.
	_, err := opt.FindOptimalPlan(context.Background(), h, 2, Constraints{
		MustHaveDates:      []time.Time{model.Date(2027, time.January, 1)},
		MinOnePeriodLength: 10,
	})
	var inf *InfeasibleError
	require.ErrorAs(t, err, &inf)
	require.Equal(t, "must_have_dates", inf.Constraint)
	require.NotNil(t, inf.Best)
	require.LessOrEqual(t, inf.Best.TotalCost, 2)
}

func TestFindOptimalPlanBudgetMonotonicity(t *testing.T) {
	h, err := model.HorizonFrom(model.Date(2026, time.January, 5), 21)
	require.NoError(t, err)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 10, nil)

	prev := -1.0
	for budget := 0; budget <= 8; budget++ {
		plan, err := opt.FindOptimalPlan(context.Background(), h, budget, Constraints{})
		require.NoError(t, err)
		require.GreaterOrEqual(t, plan.TotalUtility, prev, "budget %d", budget)
		prev = plan.TotalUtility
	}
}

func TestFindOptimalPlanDeterministic(t *testing.T) {
	h, err := model.HorizonFrom(model.Date(2026, time.January, 5), 35)
	require.NoError(t, err)
	um := plainModel()
	um.Bonus = 0.5
	um.PreferredWeekdays = []time.Weekday{time.Friday}
	costs := NewCostTable(h, []time.Time{model.Date(2026, time.January, 19)})
	opt := NewOptimizer(costs, um, 10, nil)

	a, err := opt.FindOptimalPlan(context.Background(), h, 6, Constraints{})
	require.NoError(t, err)
	b, err := opt.FindOptimalPlan(context.Background(), h, 6, Constraints{})
	require.NoError(t, err)

	require.Equal(t, len(a.Periods), len(b.Periods))
	for i := range a.Periods {
		require.Equal(t, a.Periods[i], b.Periods[i])
	}
	require.Equal(t, a.TotalCost, b.TotalCost)
	require.Equal(t, a.TotalUtility, b.TotalUtility)
}

func TestFindOptimalPlanInvariants(t *testing.T) {
	h, err := model.HorizonFrom(model.Date(2026, time.March, 2), 56)
	require.NoError(t, err)
	um := plainModel()
	um.Bonus = 0.5
	um.PreferredWeekdays = []time.Weekday{time.Friday}
	holidays := []time.Time{
		model.Date(2026, time.April, 3), // Good Friday
		model.Date(2026, time.April, 6), // Easter Monday
	}
	costs := NewCostTable(h, holidays)
	opt := NewOptimizer(costs, um, 15, nil)

	plan, err := opt.FindOptimalPlan(context.Background(), h, 8, Constraints{})
	require.NoError(t, err)

	require.LessOrEqual(t, plan.TotalCost, 8)
	sumCost, sumUtil := 0, 0.0
	for i, p := range plan.Periods {
		sumCost += costs.PeriodCost(p)
		sumUtil += um.PeriodUtility(p)
		for j := i + 1; j < len(plan.Periods); j++ {
			require.False(t, p.Overlaps(plan.Periods[j]), "periods %s and %s overlap", p, plan.Periods[j])
		}
	}
	require.Equal(t, sumCost, plan.TotalCost)
	require.InDelta(t, sumUtil, plan.TotalUtility, 1e-9)
}

func TestFindOptimalPlanHonorsContext(t *testing.T) {
	h, err := model.HorizonFrom(model.Date(2026, time.January, 1), 365)
	require.NoError(t, err)
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, plainModel(), 20, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = opt.FindOptimalPlan(ctx, h, 30, Constraints{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestScorePeriodsMatchesModels(t *testing.T) {
	h := tenDayHorizon(t)
	um := plainModel()
	costs := NewCostTable(h, nil)
	opt := NewOptimizer(costs, um, 5, nil)

	scored := opt.ScorePeriods(h)
	require.NotEmpty(t, scored)
	for _, sp := range scored {
		require.Equal(t, costs.PeriodCost(sp.Period), sp.Cost)
		require.InDelta(t, um.PeriodUtility(sp.Period), sp.Utility, 1e-12)
	}
}
