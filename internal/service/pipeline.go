package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/engine"
	"github.com/yourusername/prop-edge/internal/features"
	"github.com/yourusername/prop-edge/internal/logger"
	"github.com/yourusername/prop-edge/internal/metrics"
	"github.com/yourusername/prop-edge/internal/minutes"
	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/oddsapi"
	"github.com/yourusername/prop-edge/internal/report"
	"github.com/yourusername/prop-edge/internal/repository"
)

// OddsSource abstracts the odds feed for the pipeline
type OddsSource interface {
	ListEvents(ctx context.Context) ([]oddsapi.Event, error)
	FetchMarkets(ctx context.Context, event oddsapi.Event, stat models.StatType) ([]*models.MarketLine, error)
}

// ReportWriter abstracts report rendering for the pipeline
type ReportWriter interface {
	Write(slate *models.Slate) (string, error)
}

// RunResult summarizes one pipeline run
type RunResult struct {
	RunID       uuid.UUID
	Slates      map[models.StatType]*models.Slate
	ReportPaths []string
	Candidates  int
	Duration    time.Duration
}

// Pipeline orchestrates one end-to-end run: load history, build features,
// fetch today's markets, score edges, select slates and render reports.
// A run either completes or fails as a whole; per-player problems only
// exclude that player.
type Pipeline struct {
	cfg       *config.Config
	repos     *repository.Repositories
	odds      OddsSource
	predictor minutes.Predictor
	writer    ReportWriter
	logger    *logrus.Logger
	now       func() time.Time
}

// NewPipeline creates a pipeline
func NewPipeline(cfg *config.Config, repos *repository.Repositories, odds OddsSource, predictor minutes.Predictor, writer ReportWriter, log *logrus.Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		repos:     repos,
		odds:      odds,
		predictor: predictor,
		writer:    writer,
		logger:    log,
		now:       time.Now,
	}
}

// Run executes the pipeline for all configured stats
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	runID := uuid.New()
	startTime := p.now()

	result := &RunResult{
		RunID:  runID,
		Slates: make(map[models.StatType]*models.Slate),
	}

	loc, err := p.cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("loading timezone: %w", err)
	}

	rows, roster, err := p.loadFeatures(ctx, startTime)
	if err != nil {
		metrics.RecordRun("failure", time.Since(startTime).Seconds())
		return nil, err
	}

	events, err := p.todaysEvents(ctx, startTime, loc)
	if err != nil {
		metrics.RecordRun("failure", time.Since(startTime).Seconds())
		return nil, err
	}

	for _, statName := range p.cfg.Pipeline.Stats {
		stat := models.StatType(statName)
		log := logger.ForRun(p.logger, runID, string(stat))

		slate, candidateCount, err := p.runStat(ctx, log, stat, events, rows, roster, startTime)
		if err != nil {
			metrics.RecordRun("failure", time.Since(startTime).Seconds())
			return nil, fmt.Errorf("stat %s: %w", stat, err)
		}
		slate.RunID = runID
		result.Slates[stat] = slate
		result.Candidates += candidateCount

		if err := p.repos.Slates.Save(ctx, slate); err != nil {
			metrics.RecordRun("failure", time.Since(startTime).Seconds())
			return nil, fmt.Errorf("archiving slate: %w", err)
		}

		path, err := p.writer.Write(slate)
		if err != nil {
			metrics.RecordRun("failure", time.Since(startTime).Seconds())
			return nil, fmt.Errorf("writing report: %w", err)
		}
		result.ReportPaths = append(result.ReportPaths, path)

		if p.cfg.Report.ArchiveDir != "" {
			if archived, err := report.Archive(path, p.cfg.Report.ArchiveDir, startTime.In(loc)); err != nil {
				// The working report exists; losing the archive copy is not fatal
				log.WithError(err).Warn("Failed to archive report")
			} else {
				log.WithField("path", archived).Debug("Archived report")
			}
		}
	}

	result.Duration = time.Since(startTime)
	metrics.RecordRun("success", result.Duration.Seconds())
	p.logger.WithFields(logrus.Fields{
		"run_id":     runID,
		"candidates": result.Candidates,
		"duration":   result.Duration.String(),
	}).Info("Pipeline run complete")

	return result, nil
}

// loadFeatures loads history from PostgreSQL and builds one feature row per
// player, plus a lookup from normalized player name to roster entry
func (p *Pipeline) loadFeatures(ctx context.Context, startTime time.Time) (map[int64]*models.PlayerGameFeatures, map[string]*models.RosterEntry, error) {
	stageStart := p.now()

	since := startTime.AddDate(0, 0, -p.cfg.Pipeline.HistoryDays)
	logs, err := p.repos.GameLogs.GetSince(ctx, since)
	if err != nil {
		return nil, nil, fmt.Errorf("loading game logs: %w", err)
	}
	if len(logs) == 0 {
		return nil, nil, fmt.Errorf("%w: no game logs since %s", models.ErrDataGap, since.Format("2006-01-02"))
	}

	stats := make([]models.StatType, 0, len(p.cfg.Pipeline.Stats))
	for _, s := range p.cfg.Pipeline.Stats {
		stats = append(stats, models.StatType(s))
	}

	builder := features.NewBuilder(features.Config{
		Window:      p.cfg.Pipeline.RollingWindow,
		ShortWindow: p.cfg.Pipeline.ShortWindow,
		MinGames:    p.cfg.Pipeline.MinWindowGames,
		AsOf:        startTime,
	}, stats, p.logger)
	rows := builder.BuildAll(logs)

	rosterEntries, err := p.repos.Rosters.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading roster: %w", err)
	}
	roster := make(map[string]*models.RosterEntry, len(rosterEntries))
	for _, entry := range rosterEntries {
		roster[features.NormalizeName(entry.PlayerName)] = entry
	}

	metrics.RecordStage("build_features", time.Since(stageStart).Seconds())
	p.logger.WithFields(logrus.Fields{
		"game_logs":    len(logs),
		"feature_rows": len(rows),
		"roster":       len(roster),
	}).Info("Built feature rows")

	return rows, roster, nil
}

func (p *Pipeline) todaysEvents(ctx context.Context, startTime time.Time, loc *time.Location) ([]oddsapi.Event, error) {
	events, err := p.odds.ListEvents(ctx)
	if err != nil {
		metrics.MarketFetchErrorsTotal.Inc()
		return nil, fmt.Errorf("listing events: %w", err)
	}

	todays := oddsapi.FilterToday(events, startTime, loc)
	p.logger.WithFields(logrus.Fields{
		"events": len(events),
		"today":  len(todays),
	}).Info("Fetched event list")
	return todays, nil
}

// runStat scores every prop for one stat across today's events and selects
// the slate
func (p *Pipeline) runStat(ctx context.Context, log *logrus.Entry, stat models.StatType, events []oddsapi.Event, rows map[int64]*models.PlayerGameFeatures, roster map[string]*models.RosterEntry, startTime time.Time) (*models.Slate, int, error) {
	stageStart := p.now()

	var candidates []models.EdgeCandidate
	for _, event := range events {
		lines, err := p.odds.FetchMarkets(ctx, event, stat)
		if err != nil {
			metrics.MarketFetchErrorsTotal.Inc()
			return nil, 0, err
		}
		metrics.MarketsFetchedTotal.Add(float64(len(lines)))

		for _, line := range lines {
			scored, err := p.scoreLine(line, rows, roster)
			if err != nil {
				if isExclusion(err) {
					metrics.RecordExclusion(exclusionReason(err))
					log.WithField("player", line.Player).WithError(err).Debug("Excluding prop")
					continue
				}
				return nil, 0, err
			}
			candidates = append(candidates, scored...)
		}
	}

	kept := engine.FilterCandidates(candidates)
	metrics.CandidatesScored.Set(float64(len(kept)))

	picks := engine.SelectSlate(kept, engine.SlateRules{
		MaxPicks:     p.cfg.Slate.MaxPicks,
		MaxUnders:    p.cfg.Slate.MaxUnders,
		MaxPerPlayer: p.cfg.Slate.MaxPerPlayer,
	})

	slate := &models.Slate{
		Stat:        stat,
		GeneratedAt: startTime,
		Picks:       picks,
	}

	topRating := 0.0
	if len(picks) > 0 {
		topRating = picks[0].Rating
	}
	metrics.RecordSlate(len(picks), len(slate.Unders()), topRating)
	metrics.RecordStage("score_"+string(stat), time.Since(stageStart).Seconds())

	log.WithFields(logrus.Fields{
		"candidates": len(kept),
		"picks":      len(picks),
	}).Info("Selected slate")

	return slate, len(kept), nil
}

// scoreLine turns one market line into scored OVER and UNDER candidates.
// Returned errors are either exclusions (this prop is skipped) or fatal.
func (p *Pipeline) scoreLine(line *models.MarketLine, rows map[int64]*models.PlayerGameFeatures, roster map[string]*models.RosterEntry) ([]models.EdgeCandidate, error) {
	if err := oddsapi.CheckFreshness(line, p.now()); err != nil {
		return nil, err
	}

	entry, ok := roster[features.NormalizeName(line.Player)]
	if !ok {
		return nil, fmt.Errorf("%w: player %q not on any roster", models.ErrDataGap, line.Player)
	}

	row, ok := rows[entry.PlayerID]
	if !ok {
		return nil, fmt.Errorf("%w: no feature row for %s", models.ErrDataGap, line.Player)
	}

	opponent, home, ok := features.Matchup(entry.TeamAbbr, line.HomeTeam, line.AwayTeam)
	if !ok {
		return nil, fmt.Errorf("%w: %s roster team %s not in %s at %s",
			models.ErrDataGap, line.Player, entry.TeamAbbr, line.AwayTeam, line.HomeTeam)
	}
	row.Home = home

	predictedMinutes, err := p.predictor.Predict(row)
	if err != nil {
		return nil, err
	}

	rate, ok := row.RatePerMinute[line.Stat]
	if !ok {
		return nil, fmt.Errorf("%w: no %s rate for %s", models.ErrNoRate, line.Stat, line.Player)
	}

	mean, err := engine.ExpectedValue(predictedMinutes, rate)
	if err != nil {
		return nil, err
	}

	alpha := engine.Alpha(row.StatStdLast10[line.Stat], p.cfg.Model.AlphaFloor, p.cfg.Model.AlphaFallback)

	return engine.ScoreProp(engine.Prop{
		Market:       line,
		PlayerID:     entry.PlayerID,
		PlayerName:   entry.PlayerName,
		PlayerTeam:   entry.TeamAbbr,
		OpponentTeam: opponent,
		Mean:         mean,
		Alpha:        alpha,
	}, p.cfg.OddsAPI.BookPriority)
}

// isExclusion reports whether an error drops one prop rather than the run
func isExclusion(err error) bool {
	return errors.Is(err, models.ErrDataGap) ||
		errors.Is(err, models.ErrNoRate) ||
		errors.Is(err, models.ErrStaleOdds) ||
		errors.Is(err, models.ErrDegenerate)
}

func exclusionReason(err error) string {
	switch {
	case errors.Is(err, models.ErrNoRate):
		return "no_rate"
	case errors.Is(err, models.ErrStaleOdds):
		return "stale_odds"
	case errors.Is(err, models.ErrDegenerate):
		return "degenerate"
	default:
		return "data_gap"
	}
}
