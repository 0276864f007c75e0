// Package features turns historical player game logs into model-ready
// feature rows for the minutes model and the scoring-rate estimator.
package features

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/engine"
	"github.com/yourusername/prop-edge/internal/models"
)

// Starter proxy when lineup data is missing: heavy-minute players
const starterMinutesProxy = 24.0

// Config controls the rolling windows used for feature rows
type Config struct {
	Window      int       // long rolling window, nominally 10
	ShortWindow int       // short rolling window, nominally 5
	MinGames    int       // minimum games required to emit a row
	AsOf        time.Time // the run date; rest days are measured against it
}

// Builder builds one feature row per player from historical logs
type Builder struct {
	cfg    Config
	stats  []models.StatType
	logger *logrus.Logger
}

// NewBuilder creates a feature builder for the given stat types
func NewBuilder(cfg Config, stats []models.StatType, logger *logrus.Logger) *Builder {
	return &Builder{cfg: cfg, stats: stats, logger: logger}
}

// BuildAll groups logs by player and builds a feature row per player.
// Grouping is by player id only, so the result does not depend on input
// order; fetches merged from multiple pages produce identical rows.
// Players with too little history are skipped and logged, not fatal.
func (b *Builder) BuildAll(logs []*models.PlayerGameLog) map[int64]*models.PlayerGameFeatures {
	byPlayer := make(map[int64][]*models.PlayerGameLog)
	for _, g := range logs {
		byPlayer[g.PlayerID] = append(byPlayer[g.PlayerID], g)
	}

	rows := make(map[int64]*models.PlayerGameFeatures, len(byPlayer))
	for playerID, games := range byPlayer {
		row, err := b.BuildPlayer(games)
		if err != nil {
			b.logger.WithFields(logrus.Fields{
				"player_id": playerID,
				"games":     len(games),
			}).WithError(err).Debug("Skipping player without usable feature row")
			continue
		}
		rows[playerID] = row
	}

	return rows
}

// BuildPlayer builds the feature row for a single player's game history.
// Games may arrive in any order; they are sorted by date, ties broken by game
// id for determinism.
func (b *Builder) BuildPlayer(games []*models.PlayerGameLog) (*models.PlayerGameFeatures, error) {
	if len(games) < b.cfg.MinGames {
		return nil, fmt.Errorf("%w: %d games, need %d", models.ErrDataGap, len(games), b.cfg.MinGames)
	}

	sorted := make([]*models.PlayerGameLog, len(games))
	copy(sorted, games)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].GameDate.Equal(sorted[j].GameDate) {
			return sorted[i].GameDate.Before(sorted[j].GameDate)
		}
		return sorted[i].GameID < sorted[j].GameID
	})

	window := lastN(sorted, b.cfg.Window)
	short := lastN(sorted, b.cfg.ShortWindow)
	latest := sorted[len(sorted)-1]

	row := &models.PlayerGameFeatures{
		PlayerID:      latest.PlayerID,
		PlayerName:    latest.PlayerName,
		TeamAbbr:      latest.TeamAbbr,
		MinLast5:      mean(short, minutesOf),
		MinLast10:     mean(window, minutesOf),
		MinStdLast10:  stddev(window, minutesOf),
		PtsLast10:     mean(window, statOf(models.StatPoints)),
		FGALast10:     mean(window, func(g *models.PlayerGameLog) float64 { return g.FieldGoalAttempts }),
		FTALast10:     mean(window, func(g *models.PlayerGameLog) float64 { return g.FreeThrowAttempts }),
		FG3ALast10:    mean(window, func(g *models.PlayerGameLog) float64 { return g.ThreePointAttempts }),
		TOVLast10:     mean(window, func(g *models.PlayerGameLog) float64 { return g.Turnovers }),
		REBLast10:     mean(window, statOf(models.StatRebounds)),
		Starter:       latest.Started || latest.Minutes >= starterMinutesProxy,
		RatePerMinute: make(map[models.StatType]float64, len(b.stats)),
		StatStdLast10: make(map[models.StatType]float64, len(b.stats)),
		WindowGames:   len(window),
	}

	// Rest measured from the most recent game to the run date
	rest := b.cfg.AsOf.Sub(latest.GameDate).Hours() / 24
	row.RestDays = math.Max(0, math.Floor(rest))
	row.BackToBack = row.RestDays <= 1

	for _, stat := range b.stats {
		rate, err := engine.ScoringRate(window, stat)
		if err != nil {
			// No playable minutes in the window: no rate for any stat
			return nil, err
		}
		row.RatePerMinute[stat] = rate
		row.StatStdLast10[stat] = stddev(window, statOf(stat))
	}

	return row, nil
}

func lastN(games []*models.PlayerGameLog, n int) []*models.PlayerGameLog {
	if len(games) <= n {
		return games
	}
	return games[len(games)-n:]
}

func minutesOf(g *models.PlayerGameLog) float64 { return g.Minutes }

func statOf(stat models.StatType) func(*models.PlayerGameLog) float64 {
	return func(g *models.PlayerGameLog) float64 { return g.StatValue(stat) }
}

func mean(games []*models.PlayerGameLog, value func(*models.PlayerGameLog) float64) float64 {
	if len(games) == 0 {
		return 0
	}
	var sum float64
	for _, g := range games {
		sum += value(g)
	}
	return sum / float64(len(games))
}

// stddev is the sample standard deviation over the window
func stddev(games []*models.PlayerGameLog, value func(*models.PlayerGameLog) float64) float64 {
	if len(games) < 2 {
		return 0
	}
	m := mean(games, value)
	var ss float64
	for _, g := range games {
		d := value(g) - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(games)-1))
}
