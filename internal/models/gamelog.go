package models

import (
	"time"
)

// StatType identifies a player prop market
type StatType string

const (
	StatPoints   StatType = "points"
	StatAssists  StatType = "assists"
	StatRebounds StatType = "rebounds"
)

// MarketKey returns The Odds API market key for this stat
func (s StatType) MarketKey() string {
	switch s {
	case StatPoints:
		return "player_points"
	case StatAssists:
		return "player_assists"
	case StatRebounds:
		return "player_rebounds"
	default:
		return ""
	}
}

// Valid reports whether the stat type is one we model
func (s StatType) Valid() bool {
	switch s {
	case StatPoints, StatAssists, StatRebounds:
		return true
	default:
		return false
	}
}

// PlayerGameLog represents a single player's box score line for one game
type PlayerGameLog struct {
	PlayerID           int64     `db:"player_id" json:"player_id" validate:"required"`
	PlayerName         string    `db:"player_name" json:"player_name" validate:"required"`
	TeamAbbr           string    `db:"team_abbr" json:"team_abbr" validate:"required"`
	GameID             string    `db:"game_id" json:"game_id" validate:"required"`
	GameDate           time.Time `db:"game_date" json:"game_date" validate:"required"`
	Home               bool      `db:"home" json:"home"`
	Started            bool      `db:"started" json:"started"`
	Minutes            float64   `db:"minutes" json:"minutes" validate:"gte=0"`
	Points             float64   `db:"points" json:"points" validate:"gte=0"`
	Assists            float64   `db:"assists" json:"assists" validate:"gte=0"`
	Rebounds           float64   `db:"rebounds" json:"rebounds" validate:"gte=0"`
	FieldGoalAttempts  float64   `db:"fga" json:"fga" validate:"gte=0"`
	FreeThrowAttempts  float64   `db:"fta" json:"fta" validate:"gte=0"`
	ThreePointAttempts float64   `db:"fg3a" json:"fg3a" validate:"gte=0"`
	Turnovers          float64   `db:"tov" json:"tov" validate:"gte=0"`
}

// StatValue returns the box score value for the given stat type
func (g *PlayerGameLog) StatValue(stat StatType) float64 {
	switch stat {
	case StatPoints:
		return g.Points
	case StatAssists:
		return g.Assists
	case StatRebounds:
		return g.Rebounds
	default:
		return 0
	}
}

// RosterEntry maps a player to their current team, refreshed on ingestion.
// The team on a player's most recent game log can be stale after a trade.
type RosterEntry struct {
	PlayerID   int64     `db:"player_id" json:"player_id" validate:"required"`
	PlayerName string    `db:"player_name" json:"player_name" validate:"required"`
	TeamAbbr   string    `db:"team_abbr" json:"team_abbr" validate:"required"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
