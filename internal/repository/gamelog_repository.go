package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/prop-edge/internal/database"
	"github.com/yourusername/prop-edge/internal/models"
)

// PostgresGameLogRepository implements GameLogRepository for PostgreSQL
type PostgresGameLogRepository struct {
	db *database.DB
}

// NewPostgresGameLogRepository creates a new game log repository
func NewPostgresGameLogRepository(db *database.DB) GameLogRepository {
	return &PostgresGameLogRepository{db: db}
}

const gameLogColumns = `player_id, player_name, team_abbr, game_id, game_date,
	home, started, minutes, points, assists, rebounds, fga, fta, fg3a, tov`

// UpsertBatch inserts or replaces game logs. Re-ingesting a date range must be
// idempotent, so conflicts update in place rather than failing.
func (r *PostgresGameLogRepository) UpsertBatch(ctx context.Context, logs []*models.PlayerGameLog) error {
	if len(logs) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO player_game_logs (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (player_id, game_id) DO UPDATE SET
			player_name = EXCLUDED.player_name,
			team_abbr = EXCLUDED.team_abbr,
			game_date = EXCLUDED.game_date,
			home = EXCLUDED.home,
			started = EXCLUDED.started,
			minutes = EXCLUDED.minutes,
			points = EXCLUDED.points,
			assists = EXCLUDED.assists,
			rebounds = EXCLUDED.rebounds,
			fga = EXCLUDED.fga,
			fta = EXCLUDED.fta,
			fg3a = EXCLUDED.fg3a,
			tov = EXCLUDED.tov
	`, gameLogColumns)

	batch := r.db.GetPool()
	for _, g := range logs {
		if _, err := batch.Exec(ctx, query,
			g.PlayerID, g.PlayerName, g.TeamAbbr, g.GameID, g.GameDate,
			g.Home, g.Started, g.Minutes, g.Points, g.Assists, g.Rebounds,
			g.FieldGoalAttempts, g.FreeThrowAttempts, g.ThreePointAttempts, g.Turnovers,
		); err != nil {
			return fmt.Errorf("failed to upsert game log %s/%d: %w", g.GameID, g.PlayerID, err)
		}
	}

	return nil
}

// GetSince retrieves all game logs on or after the given date, ordered by
// player then game date ascending, the order the feature builder expects.
func (r *PostgresGameLogRepository) GetSince(ctx context.Context, since time.Time) ([]*models.PlayerGameLog, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM player_game_logs
		WHERE game_date >= $1
		ORDER BY player_id ASC, game_date ASC
	`, gameLogColumns)

	rows, err := r.db.GetPool().Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query game logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.PlayerGameLog
	for rows.Next() {
		g := &models.PlayerGameLog{}
		if err := rows.Scan(
			&g.PlayerID, &g.PlayerName, &g.TeamAbbr, &g.GameID, &g.GameDate,
			&g.Home, &g.Started, &g.Minutes, &g.Points, &g.Assists, &g.Rebounds,
			&g.FieldGoalAttempts, &g.FreeThrowAttempts, &g.ThreePointAttempts, &g.Turnovers,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game log: %w", err)
		}
		logs = append(logs, g)
	}

	return logs, rows.Err()
}

// GetRecentByPlayer retrieves a player's most recent games, newest first
func (r *PostgresGameLogRepository) GetRecentByPlayer(ctx context.Context, playerID int64, limit int) ([]*models.PlayerGameLog, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM player_game_logs
		WHERE player_id = $1
		ORDER BY game_date DESC
		LIMIT $2
	`, gameLogColumns)

	rows, err := r.db.GetPool().Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent games: %w", err)
	}
	defer rows.Close()

	var logs []*models.PlayerGameLog
	for rows.Next() {
		g := &models.PlayerGameLog{}
		if err := rows.Scan(
			&g.PlayerID, &g.PlayerName, &g.TeamAbbr, &g.GameID, &g.GameDate,
			&g.Home, &g.Started, &g.Minutes, &g.Points, &g.Assists, &g.Rebounds,
			&g.FieldGoalAttempts, &g.FreeThrowAttempts, &g.ThreePointAttempts, &g.Turnovers,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game log: %w", err)
		}
		logs = append(logs, g)
	}

	return logs, rows.Err()
}

// CountSince returns the number of stored game logs on or after the date
func (r *PostgresGameLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.GetPool().QueryRow(ctx,
		`SELECT COUNT(*) FROM player_game_logs WHERE game_date >= $1`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count game logs: %w", err)
	}
	return count, nil
}
