package plan

import (
	"encoding/json"
	"net/http"

	"github.com/hfrick/leaveplan/app"
	"github.com/hfrick/leaveplan/core/model"
	"github.com/hfrick/leaveplan/core/planner"
)

// Request is the JSON body of POST /api/plan. Absent fields fall back to
// the loaded configuration.
type Request struct {
	Budget             *int     `json:"budget,omitempty"`
	MustHaveDates      []string `json:"must_have_dates,omitempty"`
	MinOnePeriodLength *int     `json:"min_one_period_length,omitempty"`
}

// PeriodView is one selected period in the response.
type PeriodView struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Duration  int    `json:"duration"`
}

// Response is the JSON answer of POST /api/plan.
type Response struct {
	PlanID       string          `json:"plan_id"`
	Horizon      string          `json:"horizon"`
	Periods      []PeriodView    `json:"periods"`
	TotalCost    int             `json:"total_cost"`
	TotalUtility float64         `json:"total_utility"`
	Summary      planner.Summary `json:"summary"`
	Infeasible   string          `json:"infeasible,omitempty"`
}

// NewHandler returns an HTTP handler computing a leave plan via POST /api/plan.
func NewHandler(svc *app.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req Request
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		res, err := svc.PlanWith(r.Context(), app.Overrides{
			Budget:             req.Budget,
			MustHaveDates:      req.MustHaveDates,
			MinOnePeriodLength: req.MinOnePeriodLength,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(toResponse(res)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func toResponse(res *app.Result) Response {
	out := Response{
		PlanID:       res.Plan.ID,
		Horizon:      res.Plan.Horizon.String(),
		Periods:      make([]PeriodView, 0, len(res.Plan.Periods)),
		TotalCost:    res.Plan.TotalCost,
		TotalUtility: res.Plan.TotalUtility,
		Summary:      res.Summary,
		Infeasible:   res.Infeasible,
	}
	for _, p := range res.Plan.Periods {
		out.Periods = append(out.Periods, PeriodView{
			StartDate: p.StartDate().Format(model.DateFormat),
			EndDate:   p.EndDate().Format(model.DateFormat),
			Duration:  p.Duration(),
		})
	}
	return out
}
