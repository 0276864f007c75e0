package engine

import (
	"sort"

	"github.com/yourusername/prop-edge/internal/models"
)

// SlateRules bounds slate selection. Passed explicitly so selection stays a
// pure function of its inputs.
type SlateRules struct {
	MaxPicks     int
	MaxUnders    int
	MaxPerPlayer int
}

// DefaultSlateRules returns the production constraints: 11 picks, at most 5
// unders, one pick per player.
func DefaultSlateRules() SlateRules {
	return SlateRules{MaxPicks: 11, MaxUnders: 5, MaxPerPlayer: 1}
}

// SelectSlate ranks candidates and greedily selects a bounded slate.
//
// Ordering: AI rating descending, ties broken by higher model probability,
// then by player id ascending so repeated runs over the same candidates
// produce identical slates. A single greedy pass enforces the total cap, the
// unders cap and the per-player cap; once a player reaches their cap all of
// their remaining candidates are skipped.
func SelectSlate(candidates []models.EdgeCandidate, rules SlateRules) []models.EdgeCandidate {
	ranked := make([]models.EdgeCandidate, len(candidates))
	copy(ranked, candidates)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		if ranked[i].ModelProb != ranked[j].ModelProb {
			return ranked[i].ModelProb > ranked[j].ModelProb
		}
		if ranked[i].PlayerID != ranked[j].PlayerID {
			return ranked[i].PlayerID < ranked[j].PlayerID
		}
		// Same player, same rating and probability on both sides: keep the
		// OVER first for a stable total order.
		return ranked[i].Side == models.SideOver && ranked[j].Side == models.SideUnder
	})

	picks := make([]models.EdgeCandidate, 0, rules.MaxPicks)
	perPlayer := make(map[int64]int)
	unders := 0

	for _, c := range ranked {
		if len(picks) >= rules.MaxPicks {
			break
		}
		if perPlayer[c.PlayerID] >= rules.MaxPerPlayer {
			continue
		}
		if c.Side == models.SideUnder && unders >= rules.MaxUnders {
			continue
		}

		picks = append(picks, c)
		perPlayer[c.PlayerID]++
		if c.Side == models.SideUnder {
			unders++
		}
	}

	return picks
}
