package history

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hfrick/leaveplan/core/model"
)

// Record is one stored optimization outcome.
type Record struct {
	PlanID       string
	CreatedAt    time.Time
	Horizon      string
	Budget       int
	Periods      []string
	TotalCost    int
	TotalUtility float64
	Infeasible   string
}

// SQLiteStore persists plan records in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS plan_history (
        plan_id TEXT PRIMARY KEY,
        created_at INTEGER,
        horizon TEXT,
        budget INTEGER,
        periods TEXT,
        total_cost INTEGER,
        total_utility REAL,
        infeasible TEXT
    );`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Add stores one plan outcome.
func (s *SQLiteStore) Add(plan *model.Plan, budget int, infeasible string) error {
	periods := make([]string, len(plan.Periods))
	for i, p := range plan.Periods {
		periods[i] = p.String()
	}
	blob, err := json.Marshal(periods)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO plan_history
        (plan_id, created_at, horizon, budget, periods, total_cost, total_utility, infeasible)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, time.Now().Unix(), plan.Horizon.String(), budget, string(blob),
		plan.TotalCost, plan.TotalUtility, infeasible)
	return err
}

// List returns the most recent records, newest first.
func (s *SQLiteStore) List(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT plan_id, created_at, horizon, budget, periods,
        total_cost, total_utility, infeasible
        FROM plan_history ORDER BY created_at DESC, plan_id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var created int64
		var blob string
		if err := rows.Scan(&r.PlanID, &created, &r.Horizon, &r.Budget, &blob,
			&r.TotalCost, &r.TotalUtility, &r.Infeasible); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(created, 0).UTC()
		if err := json.Unmarshal([]byte(blob), &r.Periods); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
