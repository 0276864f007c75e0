package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/prop-edge/internal/database"
	"github.com/yourusername/prop-edge/internal/models"
)

// PostgresRosterRepository implements RosterRepository for PostgreSQL
type PostgresRosterRepository struct {
	db *database.DB
}

// NewPostgresRosterRepository creates a new roster repository
func NewPostgresRosterRepository(db *database.DB) RosterRepository {
	return &PostgresRosterRepository{db: db}
}

// UpsertBatch replaces current team mappings for the given players
func (r *PostgresRosterRepository) UpsertBatch(ctx context.Context, entries []*models.RosterEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO rosters (player_id, player_name, team_abbr, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id) DO UPDATE SET
			player_name = EXCLUDED.player_name,
			team_abbr = EXCLUDED.team_abbr,
			updated_at = EXCLUDED.updated_at
	`

	for _, e := range entries {
		if _, err := r.db.GetPool().Exec(ctx, query,
			e.PlayerID, e.PlayerName, e.TeamAbbr, e.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to upsert roster entry %d: %w", e.PlayerID, err)
		}
	}

	return nil
}

// GetAll retrieves the full current roster mapping
func (r *PostgresRosterRepository) GetAll(ctx context.Context) ([]*models.RosterEntry, error) {
	rows, err := r.db.GetPool().Query(ctx,
		`SELECT player_id, player_name, team_abbr, updated_at FROM rosters`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rosters: %w", err)
	}
	defer rows.Close()

	var entries []*models.RosterEntry
	for rows.Next() {
		e := &models.RosterEntry{}
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.TeamAbbr, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
