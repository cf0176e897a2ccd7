package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full static configuration surface. It is loaded once and
// passed around as an immutable value; there is no process-wide state.
type Config struct {
	Planner  PlannerConfig  `json:"planner"`
	Holidays HolidaysConfig `json:"holidays"`
	History  HistoryConfig  `json:"history"`
	Serve    ServeConfig    `json:"serve"`
	Logging  LoggingConfig  `json:"logging"`
}

// Load reads the configuration file (yaml or json by extension) and applies
// LP_-prefixed environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("LP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "lp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	// An explicit zero budget is a valid no-spend request and must survive
	// the zero-value defaulting.
	if k.Exists("planner.budget") {
		cfg.Planner.Budget = k.Int("planner.budget")
	}
	cfg.Holidays.SetDefaults()
	cfg.History.SetDefaults()
	cfg.Serve.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Holidays.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HistoryConfig controls the optional plan-history store.
type HistoryConfig struct {
	// Enabled turns on plan-history recording.
	Enabled bool `json:"enabled"`
	// Path is the SQLite database file.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *HistoryConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "leaveplan.db"
	}
}

// ServeConfig holds the HTTP planning endpoint settings.
type ServeConfig struct {
	// Addr is the listen address of the planning API.
	Addr string `json:"addr"`
	// PrometheusEnabled exposes /metrics on the same listener.
	PrometheusEnabled bool `json:"prometheus_enabled"`
}

// SetDefaults applies sane defaults.
func (c *ServeConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// LoggingConfig controls the global log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level is one zerolog understands.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "trace", "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}
