package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hfrick/leaveplan/config"
	coremetrics "github.com/hfrick/leaveplan/core/metrics"
	"github.com/hfrick/leaveplan/core/model"
	"github.com/hfrick/leaveplan/core/planner"
	"github.com/hfrick/leaveplan/infra/history"
	"github.com/hfrick/leaveplan/infra/holidays"
	"github.com/hfrick/leaveplan/infra/logger"
	"github.com/hfrick/leaveplan/infra/render"
)

// Overrides adjusts selected planner settings for a single run, leaving the
// loaded configuration untouched.
type Overrides struct {
	Budget             *int
	MustHaveDates      []string
	MinOnePeriodLength *int
}

// Result bundles one optimization outcome for callers.
type Result struct {
	Plan     *model.Plan
	Summary  planner.Summary
	Holidays []holidays.Holiday
	// Infeasible names the violated constraint when the plan is the best
	// unconstrained fallback rather than a feasible answer.
	Infeasible string
}

// Service orchestrates the holiday loader, the scoring tables and the
// optimizer. It holds no mutable state between runs; concurrent Plan calls
// are safe.
type Service struct {
	cfg   *config.Config
	log   logger.Logger
	sink  coremetrics.Sink
	store *history.SQLiteStore
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	svc := &Service{cfg: cfg, log: logger.New("service"), sink: coremetrics.NopSink{}}
	if cfg.History.Enabled {
		store, err := history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
		svc.store = store
	}
	return svc, nil
}

// Close releases the history store if one is open.
func (s *Service) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// History lists the most recent recorded plans, newest first.
func (s *Service) History(limit int) ([]history.Record, error) {
	if s.store == nil {
		return nil, fmt.Errorf("plan history is not enabled")
	}
	return s.store.List(limit)
}

// SetSink installs a metrics sink; the default discards results.
func (s *Service) SetSink(sink coremetrics.Sink) {
	if sink != nil {
		s.sink = sink
	}
}

// LoadHolidays reads the public-holiday table for the configured location
// and the horizon's starting year.
func (s *Service) LoadHolidays() ([]holidays.Holiday, error) {
	horizon, err := s.cfg.Planner.Horizon()
	if err != nil {
		return nil, err
	}
	year := s.cfg.Holidays.Year
	if year == 0 {
		year = horizon.Start.Year()
	}
	loader := holidays.NewLoader(s.cfg.Holidays.Dir)
	return loader.LoadPublicHolidays(year, holidays.Location(s.cfg.Holidays.Location))
}

// Plan runs one optimization with the loaded configuration.
func (s *Service) Plan(ctx context.Context) (*Result, error) {
	return s.PlanWith(ctx, Overrides{})
}

// PlanWith runs one optimization with per-run overrides applied. When a hard
// constraint is infeasible the result carries the violated constraint and the
// best unconstrained plan instead of failing outright.
func (s *Service) PlanWith(ctx context.Context, ov Overrides) (*Result, error) {
	pc := s.cfg.Planner
	if ov.Budget != nil {
		pc.Budget = *ov.Budget
	}
	if ov.MustHaveDates != nil {
		pc.MustHaveDates = ov.MustHaveDates
	}
	if ov.MinOnePeriodLength != nil {
		pc.MinOnePeriodLength = *ov.MinOnePeriodLength
	}
	if err := pc.Validate(); err != nil {
		return nil, fmt.Errorf("planner overrides: %w", err)
	}

	horizon, err := pc.Horizon()
	if err != nil {
		return nil, err
	}
	hols, err := s.LoadHolidays()
	if err != nil {
		return nil, err
	}
	utility, err := pc.UtilityModel()
	if err != nil {
		return nil, err
	}
	cons, err := pc.Constraints()
	if err != nil {
		return nil, err
	}

	// Protected dates are forced cost-free before the table is built.
	free := append(holidays.Dates(hols), cons.MustHaveDates...)
	costs := planner.NewCostTable(horizon, free)
	opt := planner.NewOptimizer(costs, utility, pc.MaxPeriodLength, logger.New("optimizer"))

	start := time.Now()
	plan, err := opt.FindOptimalPlan(ctx, horizon, pc.Budget, cons)
	res := &Result{Holidays: hols}
	if err != nil {
		var inf *planner.InfeasibleError
		if !errors.As(err, &inf) {
			return nil, err
		}
		res.Infeasible = inf.Constraint
		plan = inf.Best
		s.log.Warnf("constraint %s infeasible, returning best unconstrained plan", inf.Constraint)
	}
	res.Plan = plan
	res.Summary = planner.Summarize(plan, costs, utility)

	if err := s.sink.RecordPlan(coremetrics.PlanResult{
		Horizon:      horizon.String(),
		Budget:       pc.Budget,
		Periods:      len(plan.Periods),
		DaysOff:      len(plan.Days()),
		TotalCost:    plan.TotalCost,
		TotalUtility: plan.TotalUtility,
		SolveTime:    time.Since(start),
		Feasible:     res.Infeasible == "",
	}); err != nil {
		s.log.Warnf("record plan metrics: %v", err)
	}
	if s.store != nil {
		if err := s.store.Add(plan, pc.Budget, res.Infeasible); err != nil {
			s.log.Warnf("record plan history: %v", err)
		}
	}
	return res, nil
}

// RenderCalendar draws the plan over the horizon as styled month grids.
func (s *Service) RenderCalendar(res *Result) (string, error) {
	horizon, err := s.cfg.Planner.Horizon()
	if err != nil {
		return "", err
	}
	kinds := render.Classify(horizon, res.Plan, holidays.Dates(res.Holidays))
	return render.Calendar(horizon, kinds), nil
}
