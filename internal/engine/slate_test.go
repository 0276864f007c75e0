package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/prop-edge/internal/models"
)

func candidate(playerID int64, side models.Side, ratingScore float64) models.EdgeCandidate {
	return models.EdgeCandidate{
		PlayerID:    playerID,
		PlayerName:  "Player",
		Stat:        models.StatPoints,
		Side:        side,
		Edge:        ratingScore / 100,
		Rating:      ratingScore,
		ModelProb:   0.5 + ratingScore/200,
		ImpliedProb: 0.5,
	}
}

func TestSelectSlateSkipsSecondCandidateForPlayer(t *testing.T) {
	candidates := []models.EdgeCandidate{
		candidate(1, models.SideOver, 40),
		candidate(1, models.SideUnder, 38),
		candidate(2, models.SideOver, 35),
	}

	picks := SelectSlate(candidates, DefaultSlateRules())

	require.Len(t, picks, 2)
	assert.Equal(t, int64(1), picks[0].PlayerID)
	assert.Equal(t, models.SideOver, picks[0].Side)
	assert.Equal(t, 40.0, picks[0].Rating)
	assert.Equal(t, int64(2), picks[1].PlayerID)
	assert.Equal(t, 35.0, picks[1].Rating)
}

func TestSelectSlateCapsTotalAndUnders(t *testing.T) {
	var candidates []models.EdgeCandidate
	// 10 unders outranking 10 overs
	for i := int64(1); i <= 10; i++ {
		candidates = append(candidates, candidate(i, models.SideUnder, float64(50-i)))
	}
	for i := int64(11); i <= 20; i++ {
		candidates = append(candidates, candidate(i, models.SideOver, float64(30-i)))
	}

	picks := SelectSlate(candidates, DefaultSlateRules())

	require.Len(t, picks, 11)
	unders := 0
	for _, p := range picks {
		if p.Side == models.SideUnder {
			unders++
		}
	}
	assert.Equal(t, 5, unders, "unders cap")

	// The top 5 unders then the top 6 overs
	assert.Equal(t, models.SideUnder, picks[0].Side)
	assert.Equal(t, models.SideOver, picks[5].Side)
}

func TestSelectSlateInvariants(t *testing.T) {
	var candidates []models.EdgeCandidate
	for i := int64(1); i <= 40; i++ {
		side := models.SideOver
		if i%3 == 0 {
			side = models.SideUnder
		}
		candidates = append(candidates, candidate(i, side, float64(i%13)+1))
		candidates = append(candidates, candidate(i, models.SideUnder, float64(i%7)+1))
	}

	rules := DefaultSlateRules()
	picks := SelectSlate(candidates, rules)

	assert.LessOrEqual(t, len(picks), rules.MaxPicks)

	seen := make(map[int64]bool)
	unders := 0
	for _, p := range picks {
		assert.False(t, seen[p.PlayerID], "duplicate player %d", p.PlayerID)
		seen[p.PlayerID] = true
		if p.Side == models.SideUnder {
			unders++
		}
	}
	assert.LessOrEqual(t, unders, rules.MaxUnders)
}

func TestSelectSlateDeterministic(t *testing.T) {
	var candidates []models.EdgeCandidate
	for i := int64(1); i <= 30; i++ {
		candidates = append(candidates, candidate(i, models.SideOver, float64(i%5)+1))
	}

	first := SelectSlate(candidates, DefaultSlateRules())
	second := SelectSlate(candidates, DefaultSlateRules())

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i], "pick %d differs between runs", i)
	}
}

func TestSelectSlateTieBreaking(t *testing.T) {
	a := candidate(7, models.SideOver, 20)
	b := candidate(3, models.SideOver, 20)
	a.ModelProb = 0.6
	b.ModelProb = 0.6

	picks := SelectSlate([]models.EdgeCandidate{a, b}, DefaultSlateRules())

	// Equal rating and probability: lower player id ranks first
	require.Len(t, picks, 2)
	assert.Equal(t, int64(3), picks[0].PlayerID)
	assert.Equal(t, int64(7), picks[1].PlayerID)
}

func TestSelectSlateDoesNotMutateInput(t *testing.T) {
	candidates := []models.EdgeCandidate{
		candidate(1, models.SideOver, 10),
		candidate(2, models.SideOver, 30),
	}

	SelectSlate(candidates, DefaultSlateRules())

	assert.Equal(t, int64(1), candidates[0].PlayerID, "input order must be preserved")
	assert.Equal(t, int64(2), candidates[1].PlayerID)
}
