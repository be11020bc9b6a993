// Package types contains the output records shared by the engine and the API.
package types

// ScoreEntry is one leaderboard row. All values are rounded to 3 decimals.
type ScoreEntry struct {
	PitcherID  int64   `json:"pitcher_id" yaml:"pitcher_id"`
	Name       string  `json:"name" yaml:"name"`
	StuffScore float64 `json:"stuff_score" yaml:"stuff_score"`
	ZSpeed     float64 `json:"z_speed" yaml:"z_speed"`
	ZSpin      float64 `json:"z_spin" yaml:"z_spin"`
	ZIVB       float64 `json:"z_ivb" yaml:"z_ivb"`
	ZHB        float64 `json:"z_hb" yaml:"z_hb"`
	ZEV        float64 `json:"z_ev" yaml:"z_ev"`
	ZLA        float64 `json:"z_la" yaml:"z_la"`
}

// LeagueStats are the rounded cohort statistics a leaderboard was built from.
// Spin is rounded to whole rpm, everything else to 2 decimals.
type LeagueStats struct {
	MeanSpeed float64 `json:"mean_speed" yaml:"mean_speed"`
	StdSpeed  float64 `json:"std_speed" yaml:"std_speed"`
	MeanHB    float64 `json:"mean_hb" yaml:"mean_hb"`
	StdHB     float64 `json:"std_hb" yaml:"std_hb"`
	MeanIVB   float64 `json:"mean_ivb" yaml:"mean_ivb"`
	StdIVB    float64 `json:"std_ivb" yaml:"std_ivb"`
	MeanSpin  float64 `json:"mean_spin" yaml:"mean_spin"`
	StdSpin   float64 `json:"std_spin" yaml:"std_spin"`
	MeanEV    float64 `json:"mean_ev" yaml:"mean_ev"`
	StdEV     float64 `json:"std_ev" yaml:"std_ev"`
	MeanLA    float64 `json:"mean_la" yaml:"mean_la"`
	StdLA     float64 `json:"std_la" yaml:"std_la"`
}

// Leaderboard is the ranked result of one scoring request.
type Leaderboard struct {
	Entries     []ScoreEntry `json:"leaderboard" yaml:"leaderboard"`
	LeagueStats LeagueStats  `json:"league_stats" yaml:"league_stats"`
}

// ErrorPayload is returned with HTTP 200 when a cohort cannot be scored.
type ErrorPayload struct {
	Error string `json:"error"`
}
