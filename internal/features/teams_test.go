package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamAbbr(t *testing.T) {
	assert.Equal(t, "BOS", TeamAbbr("Boston Celtics"))
	assert.Equal(t, "LAC", TeamAbbr("LA Clippers"))
	assert.Equal(t, "LAC", TeamAbbr("Los Angeles Clippers"))
	// Already an abbreviation passes through
	assert.Equal(t, "BOS", TeamAbbr("BOS"))
}

func TestMatchup(t *testing.T) {
	opp, home, ok := Matchup("BOS", "Boston Celtics", "Miami Heat")
	require.True(t, ok)
	assert.Equal(t, "MIA", opp)
	assert.True(t, home)

	opp, home, ok = Matchup("MIA", "Boston Celtics", "Miami Heat")
	require.True(t, ok)
	assert.Equal(t, "BOS", opp)
	assert.False(t, home)

	_, _, ok = Matchup("LAL", "Boston Celtics", "Miami Heat")
	assert.False(t, ok, "player's team not in this game")
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Jayson Tatum", "jayson tatum"},
		{"Jaren Jackson Jr.", "jaren jackson"},
		{"Gary Trent Jr", "gary trent"},
		{"De'Aaron Fox", "deaaron fox"},
		{"Shai Gilgeous-Alexander", "shai gilgeous alexander"},
		{"Wendell Carter III", "wendell carter"},
		{"  P.J. Washington  ", "pj washington"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeName(tt.raw), "raw=%q", tt.raw)
	}
}
