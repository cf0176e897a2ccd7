package planner

import (
	"testing"
	"time"

	"github.com/hfrick/leaveplan/core/model"
)

func TestCostTableWeekendsAndFreeDates(t *testing.T) {
	// 2025-01-06 is a Monday.
	h, _ := model.HorizonFrom(model.Date(2025, time.January, 6), 14)
	free := []time.Time{model.Date(2025, time.January, 8)} // a Wednesday holiday
	table := NewCostTable(h, free)

	if got := table.DayCost(model.Date(2025, time.January, 6)); got != 1 {
		t.Fatalf("weekday cost: expected 1 got %d", got)
	}
	if got := table.DayCost(model.Date(2025, time.January, 11)); got != 0 {
		t.Fatalf("Saturday cost: expected 0 got %d", got)
	}
	if got := table.DayCost(model.Date(2025, time.January, 8)); got != 0 {
		t.Fatalf("holiday cost: expected 0 got %d", got)
	}
}

func TestPeriodCostEqualsCostlyDayCount(t *testing.T) {
	h, _ := model.HorizonFrom(model.Date(2025, time.January, 6), 28)
	table := NewCostTable(h, nil)
	for _, p := range GeneratePeriods(h, 10) {
		count := 0
		for _, d := range p.AllDays() {
			if table.DayCost(d) == 1 {
				count++
			}
		}
		if got := table.PeriodCost(p); got != count {
			t.Fatalf("period %s: expected cost %d got %d", p, count, got)
		}
	}
}

func TestNineDayPeriodSpanningTwoWeekendsCostsFive(t *testing.T) {
	// Saturday 2025-01-11 through Sunday 2025-01-19.
	h, _ := model.HorizonFrom(model.Date(2025, time.January, 6), 28)
	table := NewCostTable(h, nil)
	p, _ := model.NewPeriod(model.Date(2025, time.January, 11), 9)
	if got := table.PeriodCost(p); got != 5 {
		t.Fatalf("expected cost 5 got %d", got)
	}
}
