package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/stuffscore/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLeaderboard_JSONShape(t *testing.T) {
	Convey("Given a leaderboard", t, func() {
		lb := types.Leaderboard{
			Entries: []types.ScoreEntry{
				{PitcherID: 7, Name: "Dylan Cease", StuffScore: 0.306, ZSpeed: 1.225},
			},
			LeagueStats: types.LeagueStats{MeanSpeed: 95, StdSpeed: 4.08, MeanSpin: 2301},
		}

		Convey("When encoding to JSON", func() {
			raw, err := json.Marshal(lb)
			So(err, ShouldBeNil)

			var generic map[string]any
			So(json.Unmarshal(raw, &generic), ShouldBeNil)

			Convey("Then the top-level keys should match the API contract", func() {
				So(generic, ShouldContainKey, "leaderboard")
				So(generic, ShouldContainKey, "league_stats")
			})

			Convey("And entries should use snake_case z-score keys", func() {
				entry := generic["leaderboard"].([]any)[0].(map[string]any)
				for _, key := range []string{"pitcher_id", "name", "stuff_score", "z_speed", "z_spin", "z_ivb", "z_hb", "z_ev", "z_la"} {
					So(entry, ShouldContainKey, key)
				}
			})

			Convey("And league stats should expose every mean and std", func() {
				stats := generic["league_stats"].(map[string]any)
				So(stats, ShouldHaveLength, 12)
				So(stats["mean_spin"], ShouldEqual, 2301)
			})
		})
	})

	Convey("Given an insufficient cohort payload", t, func() {
		raw, err := json.Marshal(types.ErrorPayload{Error: "Insufficient data for Stuff Score calculation"})
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, `{"error":"Insufficient data for Stuff Score calculation"}`)
	})
}
