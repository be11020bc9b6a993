package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"

	"github.com/okian/stuffscore/internal/adapters/http/api"
	"github.com/okian/stuffscore/internal/config"
	"github.com/okian/stuffscore/internal/domain/pitch"
	"github.com/okian/stuffscore/internal/domain/types"
	"github.com/okian/stuffscore/internal/seed"
	"github.com/okian/stuffscore/pkg/logger"
)

func setEnv(t *testing.T, kv map[string]string) {
	for k, v := range kv {
		_ = os.Setenv(k, v)
	}
	t.Cleanup(func() {
		for k := range kv {
			_ = os.Unsetenv(k)
		}
	})
}

func seededConfig(t *testing.T) *config.Config {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger: %v", err)
	}
	cfg := config.New()
	cfg.DBPath = filepath.Join(t.TempDir(), "pitches.db")
	_, err := seed.Run(context.Background(), &seed.Config{
		DBPath:            cfg.DBPath,
		Seed:              11,
		PitchesPerPitcher: 40,
		ContactRate:       0.3,
		Cohorts:           cfg.Cohorts,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return cfg
}

func TestLoadConfig(t *testing.T) {
	convey.Convey("Given configuration in the environment", t, func() {
		setEnv(t, map[string]string{
			"STUFF_ADDR":          ":9090",
			"STUFF_FETCH_WORKERS": "6",
			"STUFF_LOG_LEVEL":     "debug",
		})

		convey.Convey("Then it should be loaded with logging applied", func() {
			cfg, err := loadConfig()
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
			convey.So(cfg.FetchWorkers, convey.ShouldEqual, 6)
		})
	})

	convey.Convey("Given an invalid configuration", t, func() {
		setEnv(t, map[string]string{"STUFF_FETCH_WORKERS": "0"})

		convey.Convey("Then loading should fail", func() {
			cfg, err := loadConfig()
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}

func TestHandlerIntegration(t *testing.T) {
	convey.Convey("Given a server over a seeded database", t, func() {
		cfg := seededConfig(t)
		_, err := loadConfig()
		convey.So(err, convey.ShouldBeNil)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		svc := newService(cfg)
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		srv := httptest.NewServer(newHandler(ctx, cfg, svc))
		defer srv.Close()

		get := func(path string, header map[string]string) *http.Response {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+path, http.NoBody)
			convey.So(err, convey.ShouldBeNil)
			for k, v := range header {
				req.Header.Set(k, v)
			}
			resp, err := http.DefaultClient.Do(req)
			convey.So(err, convey.ShouldBeNil)
			return resp
		}

		convey.Convey("When requesting the free agent stuff scores", func() {
			resp := get("/free_agents/stuff_score", map[string]string{"Origin": "http://localhost:3000"})
			defer resp.Body.Close()

			var lb types.Leaderboard
			convey.So(json.NewDecoder(resp.Body).Decode(&lb), convey.ShouldBeNil)

			convey.Convey("Then every free agent should be ranked", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(len(lb.Entries), convey.ShouldEqual, len(cfg.Cohorts[config.CohortFreeAgents]))
				for i := 1; i < len(lb.Entries); i++ {
					convey.So(lb.Entries[i-1].StuffScore, convey.ShouldBeGreaterThanOrEqualTo, lb.Entries[i].StuffScore)
				}
				convey.So(lb.LeagueStats.StdSpeed, convey.ShouldBeGreaterThan, 0)
			})

			convey.Convey("Then the middleware headers should be set", func() {
				convey.So(resp.Header.Get(api.RequestIDHeader), convey.ShouldNotBeBlank)
				convey.So(resp.Header.Get("Access-Control-Allow-Origin"), convey.ShouldEqual, "*")
			})
		})

		convey.Convey("When requesting the main roster", func() {
			resp := get("/pitchers", nil)
			defer resp.Body.Close()

			var roster []pitch.Pitcher
			convey.So(json.NewDecoder(resp.Body).Decode(&roster), convey.ShouldBeNil)
			convey.So(roster, convey.ShouldHaveLength, len(cfg.Cohorts[config.CohortMain]))
		})

		convey.Convey("When requesting the API docs", func() {
			resp := get("/openapi.yaml", nil)
			defer resp.Body.Close()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
		})
	})
}

var sampleLeaderboard = types.Leaderboard{
	Entries: []types.ScoreEntry{
		{PitcherID: 2, Name: "Dylan Cease", StuffScore: 0.306, ZSpeed: 1.225},
		{PitcherID: 1, Name: "Nick Martinez", StuffScore: -0.306, ZSpeed: -1.225},
	},
	LeagueStats: types.LeagueStats{MeanSpeed: 95, StdSpeed: 4.08, MeanSpin: 2301, StdSpin: 120},
}

func TestRenderLeaderboard(t *testing.T) {
	convey.Convey("Given a leaderboard", t, func() {
		var buf bytes.Buffer

		convey.Convey("When rendering a table", func() {
			convey.So(renderLeaderboard(&buf, formatTable, sampleLeaderboard), convey.ShouldBeNil)
			out := buf.String()
			convey.So(out, convey.ShouldContainSubstring, "PITCHER")
			convey.So(out, convey.ShouldContainSubstring, "Dylan Cease")
			convey.So(out, convey.ShouldContainSubstring, "-0.306")
			convey.So(out, convey.ShouldContainSubstring, "league: speed 95.00±4.08")
		})

		convey.Convey("When rendering JSON", func() {
			convey.So(renderLeaderboard(&buf, formatJSON, sampleLeaderboard), convey.ShouldBeNil)
			var got types.Leaderboard
			convey.So(json.Unmarshal(buf.Bytes(), &got), convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, sampleLeaderboard)
		})

		convey.Convey("When rendering YAML", func() {
			convey.So(renderLeaderboard(&buf, formatYAML, sampleLeaderboard), convey.ShouldBeNil)
			convey.So(buf.String(), convey.ShouldContainSubstring, "stuff_score: 0.306")
			var got types.Leaderboard
			convey.So(yaml.Unmarshal(buf.Bytes(), &got), convey.ShouldBeNil)
			convey.So(got.Entries, convey.ShouldHaveLength, 2)
		})

		convey.Convey("When rendering an unknown format", func() {
			err := renderLeaderboard(&buf, "xml", sampleLeaderboard)
			convey.So(errors.Is(err, errUnknownFormat), convey.ShouldBeTrue)
		})
	})
}

func TestRenderSummary(t *testing.T) {
	convey.Convey("Given summary rows with missing contact data", t, func() {
		rows := []pitch.PitchTypeRow{{
			PitchType:  "FF",
			PitchCount: 30,
			UsagePct:   pitch.Float(75),
			AvgSpeed:   pitch.Float(95.2),
		}}
		var buf bytes.Buffer

		convey.Convey("Then the table should show placeholders", func() {
			convey.So(renderSummary(&buf, formatTable, rows), convey.ShouldBeNil)
			convey.So(buf.String(), convey.ShouldContainSubstring, "95.2")
			convey.So(buf.String(), convey.ShouldContainSubstring, "-")
		})

		convey.Convey("Then YAML should use the API field names", func() {
			convey.So(renderSummary(&buf, formatYAML, rows), convey.ShouldBeNil)
			convey.So(buf.String(), convey.ShouldContainSubstring, "pitch_type: FF")
			convey.So(buf.String(), convey.ShouldContainSubstring, "avg_hit_exit_speed: null")
		})

		convey.Convey("Then an empty summary should say so", func() {
			convey.So(renderSummary(&buf, formatTable, nil), convey.ShouldBeNil)
			convey.So(buf.String(), convey.ShouldEqual, "no pitches\n")
		})
	})
}

func TestCell(t *testing.T) {
	convey.Convey("Given optional values", t, func() {
		convey.So(cell(nil, 1), convey.ShouldEqual, "-")
		convey.So(cell(pitch.Float(2301.4), 0), convey.ShouldEqual, "2301")
		convey.So(cell(pitch.Float(7.456), 2), convey.ShouldEqual, "7.46")
	})
}

func TestRootCommand(t *testing.T) {
	convey.Convey("Given the root command", t, func() {
		root := rootCmd()

		convey.Convey("Then it should expose every subcommand", func() {
			names := []string{}
			for _, c := range root.Commands() {
				names = append(names, c.Name())
			}
			convey.So(names, convey.ShouldContain, "serve")
			convey.So(names, convey.ShouldContain, "score")
			convey.So(names, convey.ShouldContain, "summary")
		})

		convey.Convey("When summary is called without a pitcher", func() {
			root.SetArgs([]string{"summary"})
			root.SetOut(&bytes.Buffer{})
			err := root.Execute()
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "--pitcher")
		})

		convey.Convey("When score runs against a seeded database", func() {
			cfg := seededConfig(t)
			setEnv(t, map[string]string{"STUFF_DB_PATH": cfg.DBPath})

			var out bytes.Buffer
			root.SetArgs([]string{"score", "--format", "json"})
			root.SetOut(&out)
			convey.So(root.Execute(), convey.ShouldBeNil)

			var lb types.Leaderboard
			convey.So(json.Unmarshal(out.Bytes(), &lb), convey.ShouldBeNil)
			convey.So(lb.Entries, convey.ShouldNotBeEmpty)
		})
	})
}

func TestSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("Then a single update should not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})

		convey.Convey("Then the loop should stop with its context", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
		})
	})
}
