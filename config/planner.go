package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hfrick/leaveplan/core/model"
	"github.com/hfrick/leaveplan/core/planner"
)

// PlannerConfig holds the planning horizon, the budget and the preference
// parameters of the cost/utility models. Dates use YYYY-MM-DD.
type PlannerConfig struct {
	StartDate   string `json:"start_date"`
	HorizonDays int    `json:"horizon_days"`

	Budget          int `json:"budget"`
	MaxPeriodLength int `json:"max_period_length"`

	// Date-level utility parameters and preferences.
	PreferredWeekdays []string `json:"preferred_weekdays"`
	PreferredDates    []string `json:"preferred_dates"`

	// Period-level utility parameters.
	MinValuedLength int     `json:"min_valued_length"`
	GainStart       int     `json:"gain_start"`
	GainCutoff      int     `json:"gain_cutoff"`
	Scaler          float64 `json:"scaler"`
	BaselineValue   float64 `json:"baseline_value"`
	BonusValue      float64 `json:"bonus_value"`

	// Hard constraints.
	MustHaveDates      []string `json:"must_have_dates"`
	MinOnePeriodLength int      `json:"min_one_period_length"`
}

// SetDefaults applies the reference model parameters.
func (c *PlannerConfig) SetDefaults() {
	if c.StartDate == "" {
		c.StartDate = "2025-01-01"
	}
	if c.HorizonDays == 0 {
		c.HorizonDays = 365
	}
	if c.Budget == 0 {
		c.Budget = 30
	}
	if c.MaxPeriodLength == 0 {
		c.MaxPeriodLength = 20
	}
	if c.MinValuedLength == 0 {
		c.MinValuedLength = 3
	}
	if c.GainStart == 0 {
		c.GainStart = 4
	}
	if c.GainCutoff == 0 {
		c.GainCutoff = 20
	}
	if c.Scaler == 0 {
		c.Scaler = 1.1
	}
	if c.BaselineValue == 0 {
		c.BaselineValue = 1
	}
	if c.BonusValue == 0 {
		c.BonusValue = 0.5
	}
}

// Validate checks the planning parameters once at load time; downstream
// components trust them.
func (c PlannerConfig) Validate() error {
	if _, err := model.ParseDate(c.StartDate); err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	if c.HorizonDays < 1 {
		return fmt.Errorf("horizon_days must be positive, got %d", c.HorizonDays)
	}
	if c.Budget < 0 {
		return fmt.Errorf("budget must be non-negative, got %d", c.Budget)
	}
	if c.MaxPeriodLength < 1 {
		return fmt.Errorf("max_period_length must be positive, got %d", c.MaxPeriodLength)
	}
	if c.GainCutoff < c.GainStart {
		return fmt.Errorf("gain_cutoff %d below gain_start %d", c.GainCutoff, c.GainStart)
	}
	if _, err := c.weekdays(); err != nil {
		return err
	}
	for _, field := range [][]string{c.PreferredDates, c.MustHaveDates} {
		for _, s := range field {
			if _, err := model.ParseDate(s); err != nil {
				return fmt.Errorf("date %q: %w", s, err)
			}
		}
	}
	return nil
}

// Horizon returns the configured planning horizon.
func (c PlannerConfig) Horizon() (model.Horizon, error) {
	start, err := model.ParseDate(c.StartDate)
	if err != nil {
		return model.Horizon{}, err
	}
	return model.HorizonFrom(start, c.HorizonDays)
}

// UtilityModel builds the utility model from the configured parameters.
func (c PlannerConfig) UtilityModel() (planner.UtilityModel, error) {
	weekdays, err := c.weekdays()
	if err != nil {
		return planner.UtilityModel{}, err
	}
	dates, err := parseDates(c.PreferredDates)
	if err != nil {
		return planner.UtilityModel{}, err
	}
	return planner.UtilityModel{
		Baseline:          c.BaselineValue,
		Bonus:             c.BonusValue,
		MinValuedLength:   c.MinValuedLength,
		GainStart:         c.GainStart,
		GainCutoff:        c.GainCutoff,
		Scaler:            c.Scaler,
		PreferredWeekdays: weekdays,
		PreferredDates:    dates,
	}, nil
}

// Constraints builds the hard-constraint set.
func (c PlannerConfig) Constraints() (planner.Constraints, error) {
	dates, err := parseDates(c.MustHaveDates)
	if err != nil {
		return planner.Constraints{}, err
	}
	return planner.Constraints{MustHaveDates: dates, MinOnePeriodLength: c.MinOnePeriodLength}, nil
}

func (c PlannerConfig) weekdays() ([]time.Weekday, error) {
	names := map[string]time.Weekday{
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
		"sunday": time.Sunday,
	}
	var out []time.Weekday
	for _, s := range c.PreferredWeekdays {
		wd, ok := names[strings.ToLower(s)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", s)
		}
		out = append(out, wd)
	}
	return out, nil
}

func parseDates(ss []string) ([]time.Time, error) {
	var out []time.Time
	for _, s := range ss {
		d, err := model.ParseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
