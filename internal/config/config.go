// Package config defines service configuration structures and loading hooks.
package config

import (
	"fmt"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite pitches database.
	DBPath string `koanf:"db_path"`

	// FetchWorkers bounds concurrent per-pitcher summary queries.
	FetchWorkers int `koanf:"fetch_workers"`

	// FetchTimeoutMS bounds the fetch step of one stuff score request.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// ShutdownTimeoutMS bounds graceful HTTP shutdown.
	ShutdownTimeoutMS int `koanf:"shutdown_timeout_ms"`

	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string `koanf:"allowed_origins"`

	// MainCohort backs GET /pitchers.
	MainCohort string `koanf:"main_cohort"`

	// ScoreCohort backs GET /free_agents and GET /free_agents/stuff_score.
	ScoreCohort string `koanf:"score_cohort"`

	// Cohorts maps a cohort name to the display names of its pitchers.
	Cohorts map[string][]string `koanf:"cohorts"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":8000",
		DBPath:            "pitches.db",
		FetchWorkers:      4,
		FetchTimeoutMS:    10_000,
		ShutdownTimeoutMS: 30_000,
		AllowedOrigins:    []string{"*"},
		MainCohort:        CohortMain,
		ScoreCohort:       CohortFreeAgents,
		Cohorts:           defaultCohorts(),
	}
}

// FetchTimeout returns FetchTimeoutMS as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}

// ShutdownTimeout returns ShutdownTimeoutMS as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DBPath == "":
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	case c.FetchWorkers <= 0:
		return fmt.Errorf("%w: fetch_workers must be positive, got %d", ErrInvalidConfig, c.FetchWorkers)
	case c.FetchTimeoutMS <= 0:
		return fmt.Errorf("%w: fetch_timeout_ms must be positive, got %d", ErrInvalidConfig, c.FetchTimeoutMS)
	case c.ShutdownTimeoutMS <= 0:
		return fmt.Errorf("%w: shutdown_timeout_ms must be positive, got %d", ErrInvalidConfig, c.ShutdownTimeoutMS)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	for _, ref := range []struct{ key, name string }{
		{"main_cohort", c.MainCohort},
		{"score_cohort", c.ScoreCohort},
	} {
		if _, ok := c.Cohorts[ref.name]; !ok {
			return fmt.Errorf("%w: %s %q is not a configured cohort", ErrInvalidConfig, ref.key, ref.name)
		}
	}
	return nil
}
