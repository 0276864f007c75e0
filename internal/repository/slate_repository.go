package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/prop-edge/internal/database"
	"github.com/yourusername/prop-edge/internal/models"
)

// PostgresSlateRepository implements SlateRepository for PostgreSQL
type PostgresSlateRepository struct {
	db *database.DB
}

// NewPostgresSlateRepository creates a new slate archive repository
func NewPostgresSlateRepository(db *database.DB) SlateRepository {
	return &PostgresSlateRepository{db: db}
}

// Save archives all picks of a slate using a batch insert
func (r *PostgresSlateRepository) Save(ctx context.Context, slate *models.Slate) error {
	if len(slate.Picks) == 0 {
		return nil
	}

	columns := []string{
		"run_id", "generated_at", "stat", "rank", "player_id", "player_name",
		"player_team", "opponent_team", "side", "line", "price", "book",
		"model_prob", "implied_prob", "edge", "rating",
	}

	rows := make([][]interface{}, len(slate.Picks))
	for i, p := range slate.Picks {
		rows[i] = []interface{}{
			slate.RunID, slate.GeneratedAt, string(slate.Stat), i + 1,
			p.PlayerID, p.PlayerName, p.PlayerTeam, p.OpponentTeam,
			string(p.Side), p.Line, p.Price, p.Book,
			p.ModelProb, p.ImpliedProb, p.Edge, p.Rating,
		}
	}

	count, err := r.db.GetPool().CopyFrom(ctx, pgx.Identifier{"slate_picks"}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to archive slate picks: %w", err)
	}

	if count != int64(len(slate.Picks)) {
		return fmt.Errorf("archived %d picks, expected %d", count, len(slate.Picks))
	}

	return nil
}

// GetByRunID retrieves an archived slate in rank order
func (r *PostgresSlateRepository) GetByRunID(ctx context.Context, runID uuid.UUID) (*models.Slate, error) {
	query := `
		SELECT generated_at, stat, player_id, player_name, player_team,
			opponent_team, side, line, price, book, model_prob, implied_prob, edge, rating
		FROM slate_picks
		WHERE run_id = $1
		ORDER BY rank ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slate: %w", err)
	}
	defer rows.Close()

	slate := &models.Slate{RunID: runID}
	for rows.Next() {
		var p models.EdgeCandidate
		var stat, side string
		if err := rows.Scan(
			&slate.GeneratedAt, &stat, &p.PlayerID, &p.PlayerName, &p.PlayerTeam,
			&p.OpponentTeam, &side, &p.Line, &p.Price, &p.Book,
			&p.ModelProb, &p.ImpliedProb, &p.Edge, &p.Rating,
		); err != nil {
			return nil, fmt.Errorf("failed to scan slate pick: %w", err)
		}
		p.Stat = models.StatType(stat)
		p.Side = models.Side(side)
		slate.Stat = p.Stat
		slate.Picks = append(slate.Picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(slate.Picks) == 0 {
		return nil, models.ErrNotFound
	}

	return slate, nil
}
