// Package repository provides data access for the pipeline's PostgreSQL tables.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/prop-edge/internal/database"
	"github.com/yourusername/prop-edge/internal/models"
)

// GameLogRepository defines the interface for player game log access
type GameLogRepository interface {
	UpsertBatch(ctx context.Context, logs []*models.PlayerGameLog) error
	GetSince(ctx context.Context, since time.Time) ([]*models.PlayerGameLog, error)
	GetRecentByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.PlayerGameLog, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// RosterRepository defines the interface for current player-team mappings
type RosterRepository interface {
	UpsertBatch(ctx context.Context, entries []*models.RosterEntry) error
	GetAll(ctx context.Context) ([]*models.RosterEntry, error)
}

// SlateRepository defines the interface for archiving selected slates
type SlateRepository interface {
	Save(ctx context.Context, slate *models.Slate) error
	GetByRunID(ctx context.Context, runID uuid.UUID) (*models.Slate, error)
}

// Repositories bundles all repositories for dependency injection
type Repositories struct {
	GameLogs GameLogRepository
	Rosters  RosterRepository
	Slates   SlateRepository
}

// NewRepositories creates all PostgreSQL-backed repositories
func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		GameLogs: NewPostgresGameLogRepository(db),
		Rosters:  NewPostgresRosterRepository(db),
		Slates:   NewPostgresSlateRepository(db),
	}
}
