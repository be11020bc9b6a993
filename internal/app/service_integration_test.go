package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	service "github.com/okian/stuffscore/internal/app"
	"github.com/okian/stuffscore/internal/domain/scoring"
	"github.com/okian/stuffscore/internal/seed"
	. "github.com/smartystreets/goconvey/convey"
)

var integrationCohorts = map[string][]string{
	"rotation": {"Logan Webb", "Max Fried", "Zac Gallen", "Garrett Crochet", "Nobody Real"},
	"pair":     {"Dylan Cease", "Zac Gallen"},
	"ghosts":   {"Nobody Real", "Also Fictional"},
}

func TestService_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping SQLite integration test in short mode")
	}

	Convey("Given a service over a seeded SQLite database", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		dbPath := filepath.Join(t.TempDir(), "pitches.db")
		_, err := seed.Run(ctx, &seed.Config{
			DBPath:            dbPath,
			Seed:              3,
			PitchesPerPitcher: 80,
			ContactRate:       0.3,
			Cohorts: map[string][]string{
				"seeded": {"Logan Webb", "Max Fried", "Zac Gallen", "Garrett Crochet", "Dylan Cease"},
			},
		})
		So(err, ShouldBeNil)

		svc := service.New(
			service.WithDBPath(dbPath),
			service.WithFetchWorkers(3),
			service.WithCohorts(integrationCohorts),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When scoring a rotation with an unknown name", func() {
			lb, err := svc.StuffScore(ctx, "rotation")

			Convey("Then only pitchers with data should be ranked", func() {
				So(err, ShouldBeNil)
				So(lb.Entries, ShouldHaveLength, 4)
				for i := 1; i < len(lb.Entries); i++ {
					So(lb.Entries[i-1].StuffScore, ShouldBeGreaterThanOrEqualTo, lb.Entries[i].StuffScore)
				}
			})

			Convey("Then scoring again should give the same leaderboard", func() {
				again, err := svc.StuffScore(ctx, "rotation")
				So(err, ShouldBeNil)
				So(again, ShouldResemble, lb)
			})
		})

		Convey("When scoring the same pitcher in different cohorts", func() {
			rotation, err := svc.StuffScore(ctx, "rotation")
			So(err, ShouldBeNil)
			pair, err := svc.StuffScore(ctx, "pair")
			So(err, ShouldBeNil)

			Convey("Then the league stats should differ per cohort", func() {
				So(pair.Entries, ShouldHaveLength, 2)
				So(pair.LeagueStats, ShouldNotResemble, rotation.LeagueStats)
			})
		})

		Convey("When no roster name has data", func() {
			_, err := svc.StuffScore(ctx, "ghosts")
			So(errors.Is(err, scoring.ErrInsufficientCohort), ShouldBeTrue)
		})

		Convey("When reading one pitcher", func() {
			roster, err := svc.Roster(ctx, "pair")
			So(err, ShouldBeNil)
			So(roster, ShouldHaveLength, 2)
			So(roster[0].Name, ShouldEqual, "Dylan Cease")

			rows, err := svc.Summary(ctx, roster[0].ID)
			So(err, ShouldBeNil)
			So(rows, ShouldNotBeEmpty)

			var usage float64
			for i, r := range rows {
				if i > 0 {
					So(rows[i-1].PitchCount, ShouldBeGreaterThanOrEqualTo, r.PitchCount)
				}
				usage += *r.UsagePct
			}
			So(usage, ShouldAlmostEqual, 100, 0.5)

			h, err := svc.Highlights(ctx, roster[0].ID)
			So(err, ShouldBeNil)
			So(h.MostUsed.PitchType, ShouldEqual, rows[0].PitchType)
			So(h.Hardest, ShouldNotBeNil)
		})

		Convey("Then stats should count seeded pitchers", func() {
			So(svc.GetStats()["pitchersWithData"], ShouldEqual, 5)
		})
	})
}
