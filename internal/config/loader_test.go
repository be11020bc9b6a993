package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/stuffscore/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"STUFF_CONFIG",
	"STUFF_ADDR",
	"STUFF_DB_PATH",
	"STUFF_LOG_LEVEL",
	"STUFF_LOG_FORMAT",
	"STUFF_FETCH_WORKERS",
	"STUFF_FETCH_TIMEOUT_MS",
	"STUFF_ALLOWED_ORIGINS",
	"STUFF_SCORE_COHORT",
}

func clearConfigEnvVars() {
	for _, k := range configEnvVars {
		_ = os.Unsetenv(k)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load()

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
				convey.So(cfg.DBPath, convey.ShouldEqual, "pitches.db")
				convey.So(cfg.FetchWorkers, convey.ShouldEqual, 4)
				convey.So(cfg.Cohorts[config.CohortMain], convey.ShouldHaveLength, 10)
				convey.So(cfg.Cohorts[config.CohortFreeAgents], convey.ShouldHaveLength, 47)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("STUFF_ADDR", ":8080")
			_ = os.Setenv("STUFF_DB_PATH", "/data/pitches.db")
			_ = os.Setenv("STUFF_FETCH_WORKERS", "16")
			_ = os.Setenv("STUFF_FETCH_TIMEOUT_MS", "2500")
			_ = os.Setenv("STUFF_LOG_FORMAT", "json")
			_ = os.Setenv("STUFF_ALLOWED_ORIGINS", "http://localhost:5173, https://scout.example")

			cfg, err := config.Load()

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DBPath, convey.ShouldEqual, "/data/pitches.db")
				convey.So(cfg.FetchWorkers, convey.ShouldEqual, 16)
				convey.So(cfg.FetchTimeout().Milliseconds(), convey.ShouldEqual, 2500)
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.AllowedOrigins, convey.ShouldResemble, []string{"http://localhost:5173", "https://scout.example"})
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := createTempConfigFile(t, `
addr: ":9090"
fetch_workers: 8
score_cohort: bullpen
cohorts:
  bullpen:
    - Logan Webb
    - Zac Gallen
`)
			_ = os.Setenv("STUFF_CONFIG", path)

			cfg, err := config.Load()

			convey.Convey("Then file values should merge with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.FetchWorkers, convey.ShouldEqual, 8)
				convey.So(cfg.ScoreCohort, convey.ShouldEqual, "bullpen")
				convey.So(cfg.Cohorts["bullpen"], convey.ShouldResemble, []string{"Logan Webb", "Zac Gallen"})
				convey.So(cfg.Cohorts, convey.ShouldContainKey, config.CohortMain)
				convey.So(cfg.DBPath, convey.ShouldEqual, "pitches.db")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			path := createTempConfigFile(t, "addr: \":9090\"\nfetch_workers: 8\n")
			_ = os.Setenv("STUFF_CONFIG", path)
			_ = os.Setenv("STUFF_FETCH_WORKERS", "32")

			cfg, err := config.Load()

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.FetchWorkers, convey.ShouldEqual, 32)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			path := createTempConfigFile(t, `invalid: yaml: content: [`)
			_ = os.Setenv("STUFF_CONFIG", path)

			cfg, err := config.Load()

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("STUFF_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load()

			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			convey.So(cfg, convey.ShouldBeNil)
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("STUFF_ADDR", "")

			cfg, err := config.Load()

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the score cohort is not defined", func() {
			_ = os.Setenv("STUFF_SCORE_COHORT", "bullpen")

			_, err := config.Load()

			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "score_cohort")
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("STUFF_FETCH_WORKERS", "not_a_number")

			cfg, err := config.Load()

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}
