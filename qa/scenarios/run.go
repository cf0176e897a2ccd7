package scenarios

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hfrick/leaveplan/core/planner"
	"github.com/hfrick/leaveplan/infra/logger"
)

// RunScenario executes one scenario against the optimizer and checks the
// expected outcome.
func RunScenario(t *testing.T, sc *Scenario) {
	t.Helper()

	horizon, err := sc.ToHorizon()
	require.NoError(t, err)
	utility, err := sc.ToUtilityModel()
	require.NoError(t, err)
	cons, err := sc.ToConstraints()
	require.NoError(t, err)
	free, err := sc.FreeDates()
	require.NoError(t, err)

	costs := planner.NewCostTable(horizon, free)
	opt := planner.NewOptimizer(costs, utility, sc.MaxPeriodLength, logger.NopLogger{})

	plan, err := opt.FindOptimalPlan(context.Background(), horizon, sc.Budget, cons)
	if !sc.Expected.Feasible {
		var inf *planner.InfeasibleError
		require.ErrorAs(t, err, &inf)
		require.Equal(t, sc.Expected.Infeasible, inf.Constraint)
		require.NotNil(t, inf.Best, "infeasible result must carry the unconstrained best")
		return
	}
	require.NoError(t, err)

	require.Len(t, plan.Periods, sc.Expected.Periods)
	require.Equal(t, sc.Expected.TotalCost, plan.TotalCost)
	require.InDelta(t, sc.Expected.TotalUtility, plan.TotalUtility, 1e-9)
	require.LessOrEqual(t, plan.TotalCost, sc.Budget)
	for i := 1; i < len(plan.Periods); i++ {
		require.False(t, plan.Periods[i-1].Overlaps(plan.Periods[i]),
			"periods %s and %s overlap", plan.Periods[i-1], plan.Periods[i])
	}
}
