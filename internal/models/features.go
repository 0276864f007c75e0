package models

// PlayerGameFeatures holds one model-ready feature row per player, built from
// that player's historical game logs only. Rows are immutable once built.
type PlayerGameFeatures struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamAbbr   string `json:"team_abbr"`

	// Minutes model inputs
	MinLast5    float64 `json:"min_last5"`
	MinLast10   float64 `json:"min_last10"`
	MinStdLast10 float64 `json:"min_std_last10"`
	PtsLast10   float64 `json:"pts_last10"`
	FGALast10   float64 `json:"fga_last10"`
	FTALast10   float64 `json:"fta_last10"`
	FG3ALast10  float64 `json:"fg3a_last10"`
	TOVLast10   float64 `json:"tov_last10"`
	REBLast10   float64 `json:"reb_last10"`
	RestDays    float64 `json:"rest_days"`
	BackToBack  bool    `json:"is_b2b"`
	Home        bool    `json:"is_home"`
	Starter     bool    `json:"is_starter"`

	// Per-minute production over the last-10 window (rolling sums, not
	// mean-of-ratios) and the matching volatility, keyed by stat type.
	RatePerMinute map[StatType]float64 `json:"rate_per_minute"`
	StatStdLast10 map[StatType]float64 `json:"stat_std_last10"`

	// Games contributing to the window; callers treat short histories as a
	// data gap.
	WindowGames int `json:"window_games"`
}

// MinutesFeatureNames lists the minutes model inputs in artifact order.
// The order must match the feature order the booster was trained with.
var MinutesFeatureNames = []string{
	"min_last5", "min_last10", "min_std_last10",
	"pts_last10", "fga_last10", "fta_last10", "fg3a_last10",
	"tov_last10", "reb_last10",
	"rest_days", "is_b2b", "is_home",
	"is_starter",
}

// MinutesVector returns the minutes model input vector in artifact order
func (f *PlayerGameFeatures) MinutesVector() []float64 {
	return []float64{
		f.MinLast5, f.MinLast10, f.MinStdLast10,
		f.PtsLast10, f.FGALast10, f.FTALast10, f.FG3ALast10,
		f.TOVLast10, f.REBLast10,
		f.RestDays, boolToFloat(f.BackToBack), boolToFloat(f.Home),
		boolToFloat(f.Starter),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// MinutesPrediction is the minutes model output for one player
type MinutesPrediction struct {
	PlayerID int64   `json:"player_id"`
	Minutes  float64 `json:"minutes" validate:"gte=0"`
}

// ScoringRate is a player's per-minute production for one stat over the
// rolling window
type ScoringRate struct {
	PlayerID  int64    `json:"player_id"`
	Stat      StatType `json:"stat"`
	PerMinute float64  `json:"per_minute" validate:"gte=0"`
}

// ExpectedStat is the composed point estimate: predicted minutes times
// per-minute rate
type ExpectedStat struct {
	PlayerID int64    `json:"player_id"`
	Stat     StatType `json:"stat"`
	Mean     float64  `json:"mean" validate:"gte=0"`
}
