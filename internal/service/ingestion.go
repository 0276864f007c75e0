package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/metrics"
	"github.com/yourusername/prop-edge/internal/models"
	"github.com/yourusername/prop-edge/internal/repository"
)

// StatsSource abstracts the stats feed for the ingestion workflow
type StatsSource interface {
	GetGameLogs(ctx context.Context, since time.Time) ([]*models.PlayerGameLog, error)
	GetActiveRoster(ctx context.Context) ([]*models.RosterEntry, error)
}

// IngestionStats summarizes one ingestion run
type IngestionStats struct {
	GameLogsFetched  int
	GameLogsUpserted int
	RosterUpserted   int
	ValidationErrors int
	Duration         time.Duration
}

func (s IngestionStats) String() string {
	return fmt.Sprintf("%d/%d game logs, %d roster entries, %d validation errors, %v",
		s.GameLogsUpserted, s.GameLogsFetched, s.RosterUpserted, s.ValidationErrors, s.Duration)
}

// IngestionService syncs game logs and rosters from the stats feed into
// PostgreSQL
type IngestionService struct {
	source    StatsSource
	repos     *repository.Repositories
	validator *DataValidator
	logger    *logrus.Logger
	batchSize int
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(source StatsSource, repos *repository.Repositories, validator *DataValidator, logger *logrus.Logger, batchSize int) *IngestionService {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &IngestionService{
		source:    source,
		repos:     repos,
		validator: validator,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Sync fetches game logs since the given date plus the active roster, and
// upserts both. Invalid rows are dropped and counted, never fatal; the
// fetch itself failing is.
func (s *IngestionService) Sync(ctx context.Context, since time.Time) (*IngestionStats, error) {
	stats := &IngestionStats{}
	startTime := time.Now()

	logs, err := s.source.GetGameLogs(ctx, since)
	if err != nil {
		return stats, fmt.Errorf("fetching game logs: %w", err)
	}
	stats.GameLogsFetched = len(logs)
	metrics.GameLogsFetchedTotal.Add(float64(len(logs)))

	valid := make([]*models.PlayerGameLog, 0, len(logs))
	for _, gameLog := range logs {
		if errs := s.validator.ValidateGameLog(gameLog); len(errs) > 0 {
			stats.ValidationErrors++
			s.logger.WithFields(logrus.Fields{
				"player_id": gameLog.PlayerID,
				"game_id":   gameLog.GameID,
				"errors":    errs,
			}).Warn("Dropping invalid game log")
			continue
		}
		valid = append(valid, gameLog)
	}

	for i := 0; i < len(valid); i += s.batchSize {
		end := i + s.batchSize
		if end > len(valid) {
			end = len(valid)
		}
		if err := s.repos.GameLogs.UpsertBatch(ctx, valid[i:end]); err != nil {
			return stats, fmt.Errorf("upserting game logs: %w", err)
		}
		stats.GameLogsUpserted += end - i
	}

	roster, err := s.source.GetActiveRoster(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetching roster: %w", err)
	}

	validRoster := make([]*models.RosterEntry, 0, len(roster))
	for _, entry := range roster {
		if errs := s.validator.ValidateRosterEntry(entry); len(errs) > 0 {
			stats.ValidationErrors++
			continue
		}
		validRoster = append(validRoster, entry)
	}
	if len(validRoster) > 0 {
		if err := s.repos.Rosters.UpsertBatch(ctx, validRoster); err != nil {
			return stats, fmt.Errorf("upserting roster: %w", err)
		}
	}
	stats.RosterUpserted = len(validRoster)

	stats.Duration = time.Since(startTime)
	s.logger.WithField("stats", stats.String()).Info("Ingestion complete")
	return stats, nil
}
