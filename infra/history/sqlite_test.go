package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hfrick/leaveplan/core/model"
)

func testPlan(t *testing.T, id string) *model.Plan {
	t.Helper()
	h, err := model.HorizonFrom(model.Date(2026, time.January, 5), 10)
	require.NoError(t, err)
	p, err := model.NewPeriod(model.Date(2026, time.January, 6), 6)
	require.NoError(t, err)
	return &model.Plan{ID: id, Horizon: h, Periods: []model.Period{p}, TotalCost: 4, TotalUtility: 9.3}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Add(testPlan(t, "p1"), 4, ""))
	require.NoError(t, store.Add(testPlan(t, "p2"), 4, "min_one_period_length"))

	recs, err := store.List(10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, r := range recs {
		require.Equal(t, 4, r.Budget)
		require.Equal(t, 4, r.TotalCost)
		require.InDelta(t, 9.3, r.TotalUtility, 1e-9)
		require.Len(t, r.Periods, 1)
		require.Equal(t, "2026-01-06 - 2026-01-11", r.Periods[0])
	}
}

func TestSQLiteStoreUpsert(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Add(testPlan(t, "p1"), 4, ""))
	require.NoError(t, store.Add(testPlan(t, "p1"), 4, ""))

	recs, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
}
