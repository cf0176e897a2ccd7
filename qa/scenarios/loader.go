package scenarios

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hfrick/leaveplan/core/model"
	"github.com/hfrick/leaveplan/core/planner"
)

type HorizonDef struct {
	Start string `yaml:"start"`
	Days  int    `yaml:"days"`
}

type UtilityDef struct {
	Baseline        float64 `yaml:"baseline"`
	Bonus           float64 `yaml:"bonus"`
	MinValuedLength int     `yaml:"min_valued_length"`
	GainStart       int     `yaml:"gain_start"`
	GainCutoff      int     `yaml:"gain_cutoff"`
	Scaler          float64 `yaml:"scaler"`
}

type Expected struct {
	Feasible     bool    `yaml:"feasible"`
	Infeasible   string  `yaml:"infeasible,omitempty"`
	Periods      int     `yaml:"periods"`
	TotalCost    int     `yaml:"total_cost"`
	TotalUtility float64 `yaml:"total_utility"`
}

type Scenario struct {
	Name               string     `yaml:"name"`
	Description        string     `yaml:"description,omitempty"`
	Horizon            HorizonDef `yaml:"horizon"`
	Budget             int        `yaml:"budget"`
	MaxPeriodLength    int        `yaml:"max_period_length"`
	Utility            UtilityDef `yaml:"utility"`
	PreferredWeekdays  []string   `yaml:"preferred_weekdays,omitempty"`
	PreferredDates     []string   `yaml:"preferred_dates,omitempty"`
	Holidays           []string   `yaml:"holidays,omitempty"`
	MustHaveDates      []string   `yaml:"must_have_dates,omitempty"`
	MinOnePeriodLength int        `yaml:"min_one_period_length,omitempty"`
	Expected           Expected   `yaml:"expected"`
}

// Load reads one scenario definition from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// ToHorizon builds the scenario's planning horizon.
func (s *Scenario) ToHorizon() (model.Horizon, error) {
	start, err := model.ParseDate(s.Horizon.Start)
	if err != nil {
		return model.Horizon{}, err
	}
	return model.HorizonFrom(start, s.Horizon.Days)
}

// ToUtilityModel builds the scenario's utility model.
func (s *Scenario) ToUtilityModel() (planner.UtilityModel, error) {
	weekdays, err := parseWeekdays(s.PreferredWeekdays)
	if err != nil {
		return planner.UtilityModel{}, err
	}
	dates, err := parseDates(s.PreferredDates)
	if err != nil {
		return planner.UtilityModel{}, err
	}
	return planner.UtilityModel{
		Baseline:          s.Utility.Baseline,
		Bonus:             s.Utility.Bonus,
		MinValuedLength:   s.Utility.MinValuedLength,
		GainStart:         s.Utility.GainStart,
		GainCutoff:        s.Utility.GainCutoff,
		Scaler:            s.Utility.Scaler,
		PreferredWeekdays: weekdays,
		PreferredDates:    dates,
	}, nil
}

// ToConstraints builds the scenario's hard constraints.
func (s *Scenario) ToConstraints() (planner.Constraints, error) {
	dates, err := parseDates(s.MustHaveDates)
	if err != nil {
		return planner.Constraints{}, err
	}
	return planner.Constraints{MustHaveDates: dates, MinOnePeriodLength: s.MinOnePeriodLength}, nil
}

// FreeDates returns the scenario's cost-free dates: holidays plus protected
// must-have dates.
func (s *Scenario) FreeDates() ([]time.Time, error) {
	free, err := parseDates(s.Holidays)
	if err != nil {
		return nil, err
	}
	musts, err := parseDates(s.MustHaveDates)
	if err != nil {
		return nil, err
	}
	return append(free, musts...), nil
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	byName := map[string]time.Weekday{
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
		"sunday": time.Sunday,
	}
	var out []time.Weekday
	for _, n := range names {
		wd, ok := byName[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", n)
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
