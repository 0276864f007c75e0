package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/models"
)

// DataValidator validates game log and roster rows before persistence
type DataValidator struct {
	logger *logrus.Logger
}

// NewDataValidator creates a new data validator
func NewDataValidator(logger *logrus.Logger) *DataValidator {
	return &DataValidator{logger: logger}
}

// ValidateGameLog validates a game log row for required fields and constraints
func (v *DataValidator) ValidateGameLog(gameLog *models.PlayerGameLog) []string {
	var errors []string

	if gameLog.PlayerID <= 0 {
		errors = append(errors, "player_id is required")
	}
	if gameLog.PlayerName == "" {
		errors = append(errors, "player_name is required")
	}
	if gameLog.GameID == "" {
		errors = append(errors, "game_id is required")
	}
	if gameLog.GameDate.IsZero() {
		errors = append(errors, "game_date is required")
	}

	if gameLog.Minutes < 0 || gameLog.Minutes > 60 {
		errors = append(errors, fmt.Sprintf("minutes out of range (0-60), got %.1f", gameLog.Minutes))
	}

	for name, value := range map[string]float64{
		"points":   gameLog.Points,
		"assists":  gameLog.Assists,
		"rebounds": gameLog.Rebounds,
		"fga":      gameLog.FieldGoalAttempts,
		"fta":      gameLog.FreeThrowAttempts,
		"fg3a":     gameLog.ThreePointAttempts,
		"turnover": gameLog.Turnovers,
	} {
		if value < 0 {
			errors = append(errors, fmt.Sprintf("%s cannot be negative, got %.1f", name, value))
		}
	}

	// A box score line with production but no court time is feed corruption
	if gameLog.Minutes == 0 && gameLog.Points > 0 {
		errors = append(errors, fmt.Sprintf("%.0f points recorded with zero minutes", gameLog.Points))
	}

	if gameLog.GameDate.After(time.Now().Add(24 * time.Hour)) {
		errors = append(errors, "game_date is in the future")
	}

	return errors
}

// ValidateRosterEntry validates a roster row
func (v *DataValidator) ValidateRosterEntry(entry *models.RosterEntry) []string {
	var errors []string

	if entry.PlayerID <= 0 {
		errors = append(errors, "player_id is required")
	}
	if entry.PlayerName == "" {
		errors = append(errors, "player_name is required")
	}
	if len(entry.TeamAbbr) != 3 {
		errors = append(errors, fmt.Sprintf("team_abbr must be a 3-letter code, got %q", entry.TeamAbbr))
	}

	return errors
}
