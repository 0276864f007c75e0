package nbastats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"", 0},
		{"0", 0},
		{"34", 34},
		{"34:30", 34.5},
		{"34:00", 34},
		{" 12 ", 12},
	}

	for _, tt := range tests {
		m, err := parseMinutes(tt.raw)
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.InDelta(t, tt.expected, m, 1e-9, "raw=%q", tt.raw)
	}
}

func TestParseMinutesRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "-5", "34:75", "34:xx"} {
		_, err := parseMinutes(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestToGameLog(t *testing.T) {
	row := statRow{Min: "31:30", Pts: 27, Ast: 5, Reb: 8, FGA: 19, FTA: 6, FG3A: 8, TOV: 3}
	row.Player.ID = 42
	row.Player.FirstName = "Jayson"
	row.Player.LastName = "Tatum"
	row.Team.ID = 2
	row.Team.Abbreviation = "BOS"
	row.Game.ID = 9001
	row.Game.Date = "2026-01-15"
	row.Game.HomeTeamID = 2

	gameLog, err := row.toGameLog()
	require.NoError(t, err)

	assert.Equal(t, int64(42), gameLog.PlayerID)
	assert.Equal(t, "Jayson Tatum", gameLog.PlayerName)
	assert.Equal(t, "BOS", gameLog.TeamAbbr)
	assert.Equal(t, "9001", gameLog.GameID)
	assert.True(t, gameLog.Home)
	assert.InDelta(t, 31.5, gameLog.Minutes, 1e-9)
	assert.Equal(t, 27.0, gameLog.Points)
}

func TestToGameLogKeepsDNP(t *testing.T) {
	row := statRow{Min: ""}
	row.Player.ID = 7
	row.Game.ID = 1
	row.Game.Date = "2026-01-15"

	gameLog, err := row.toGameLog()
	require.NoError(t, err)
	assert.Zero(t, gameLog.Minutes)
}
