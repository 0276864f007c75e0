// Package engine implements the probability and edge scoring core: rolling
// scoring rates, expected values, line-clearing probabilities, market
// de-vigging and constrained slate selection.
package engine

import (
	"github.com/yourusername/prop-edge/internal/models"
)

// ScoringRate computes per-minute production over a window of games as
// sum(stat) / sum(minutes). The window must already be limited to the games
// of interest (nominally the last 10).
//
// A window with zero total minutes has no defined rate and returns
// models.ErrNoRate; callers exclude the player instead of dividing.
func ScoringRate(window []*models.PlayerGameLog, stat models.StatType) (float64, error) {
	if len(window) == 0 {
		return 0, models.ErrDataGap
	}

	var totalStat, totalMinutes float64
	for _, g := range window {
		totalStat += g.StatValue(stat)
		totalMinutes += g.Minutes
	}

	if totalMinutes <= 0 {
		return 0, models.ErrNoRate
	}

	return totalStat / totalMinutes, nil
}
