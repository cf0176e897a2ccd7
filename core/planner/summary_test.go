package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hfrick/leaveplan/core/model"
)

func TestSummarizeEmptyPlan(t *testing.T) {
	h, _ := model.HorizonFrom(model.Date(2026, time.January, 5), 10)
	costs := NewCostTable(h, nil)
	s := Summarize(&model.Plan{Horizon: h}, costs, plainModel())
	require.Equal(t, 0, s.Periods)
	require.Equal(t, 0.0, s.TotalUtility)
}

func TestSummarizeStatistics(t *testing.T) {
	h, _ := model.HorizonFrom(model.Date(2026, time.January, 5), 10)
	costs := NewCostTable(h, nil)
	um := plainModel()
	opt := NewOptimizer(costs, um, 10, nil)

	plan, err := opt.FindOptimalPlan(context.Background(), h, 4, Constraints{})
	require.NoError(t, err)
	s := Summarize(plan, costs, um)

	require.Equal(t, 1, s.Periods)
	require.Equal(t, plan.TotalCost, s.TotalCost)
	require.InDelta(t, plan.TotalUtility, s.TotalUtility, 1e-9)
	require.Equal(t, 6, s.LongestPeriod)
	// The six-day block spans exactly one weekend.
	require.Equal(t, 2, s.FreeDaysSpanned)
	require.InDelta(t, 4.0, s.MeanPeriodCost, 1e-9)
	require.InDelta(t, plan.TotalUtility, s.MaxPeriodUtility, 1e-9)
}
