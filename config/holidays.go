package config

import "fmt"

// HolidaysConfig points at the public-holiday reference dataset.
type HolidaysConfig struct {
	// Dir is the directory holding <year>_public_holidays_<location>.csv files.
	Dir string `json:"dir"`
	// Location selects the holiday calendar, e.g. "Berlin" or "Munich".
	Location string `json:"location"`
	// Year of the dataset file; 0 uses the horizon start year.
	Year int `json:"year"`
}

// SetDefaults applies sane defaults.
func (c *HolidaysConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "datasets"
	}
	if c.Location == "" {
		c.Location = "Berlin"
	}
}

// Validate checks mandatory fields.
func (c HolidaysConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("holidays dir is required")
	}
	if c.Location == "" {
		return fmt.Errorf("holidays location is required")
	}
	return nil
}
