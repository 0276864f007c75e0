package service

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/prop-edge/internal/models"
)

func testValidator() *DataValidator {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDataValidator(log)
}

func validGameLog() *models.PlayerGameLog {
	return &models.PlayerGameLog{
		PlayerID:   42,
		PlayerName: "Jayson Tatum",
		TeamAbbr:   "BOS",
		GameID:     "9001",
		GameDate:   time.Now().AddDate(0, 0, -1),
		Minutes:    34,
		Points:     28,
		Assists:    5,
		Rebounds:   8,
	}
}

func TestValidateGameLogValid(t *testing.T) {
	assert.Empty(t, testValidator().ValidateGameLog(validGameLog()))
}

func TestValidateGameLogInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.PlayerGameLog)
	}{
		{"missing player id", func(g *models.PlayerGameLog) { g.PlayerID = 0 }},
		{"missing name", func(g *models.PlayerGameLog) { g.PlayerName = "" }},
		{"missing game id", func(g *models.PlayerGameLog) { g.GameID = "" }},
		{"zero date", func(g *models.PlayerGameLog) { g.GameDate = time.Time{} }},
		{"negative minutes", func(g *models.PlayerGameLog) { g.Minutes = -5 }},
		{"absurd minutes", func(g *models.PlayerGameLog) { g.Minutes = 70 }},
		{"negative points", func(g *models.PlayerGameLog) { g.Points = -2 }},
		{"points without minutes", func(g *models.PlayerGameLog) { g.Minutes = 0; g.Points = 12 }},
		{"future game", func(g *models.PlayerGameLog) { g.GameDate = time.Now().AddDate(0, 0, 7) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gameLog := validGameLog()
			tt.mutate(gameLog)
			assert.NotEmpty(t, testValidator().ValidateGameLog(gameLog))
		})
	}
}

func TestValidateGameLogDNPIsValid(t *testing.T) {
	gameLog := validGameLog()
	gameLog.Minutes = 0
	gameLog.Points = 0
	gameLog.Assists = 0
	gameLog.Rebounds = 0
	assert.Empty(t, testValidator().ValidateGameLog(gameLog))
}

func TestValidateRosterEntry(t *testing.T) {
	valid := &models.RosterEntry{PlayerID: 42, PlayerName: "Jayson Tatum", TeamAbbr: "BOS"}
	assert.Empty(t, testValidator().ValidateRosterEntry(valid))

	assert.NotEmpty(t, testValidator().ValidateRosterEntry(&models.RosterEntry{
		PlayerID: 42, PlayerName: "Jayson Tatum", TeamAbbr: "BOSTON",
	}))
	assert.NotEmpty(t, testValidator().ValidateRosterEntry(&models.RosterEntry{
		PlayerName: "Jayson Tatum", TeamAbbr: "BOS",
	}))
}
