package database

import (
	"context"
	"fmt"
)

// Schema statements for the pipeline's tables. Idempotent so ingestion can run
// against a fresh database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS player_game_logs (
		player_id   BIGINT       NOT NULL,
		player_name TEXT         NOT NULL,
		team_abbr   TEXT         NOT NULL,
		game_id     TEXT         NOT NULL,
		game_date   TIMESTAMPTZ  NOT NULL,
		home        BOOLEAN      NOT NULL,
		started     BOOLEAN      NOT NULL,
		minutes     DOUBLE PRECISION NOT NULL,
		points      DOUBLE PRECISION NOT NULL,
		assists     DOUBLE PRECISION NOT NULL,
		rebounds    DOUBLE PRECISION NOT NULL,
		fga         DOUBLE PRECISION NOT NULL,
		fta         DOUBLE PRECISION NOT NULL,
		fg3a        DOUBLE PRECISION NOT NULL,
		tov         DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (player_id, game_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_game_logs_player_date
		ON player_game_logs (player_id, game_date)`,
	`CREATE TABLE IF NOT EXISTS rosters (
		player_id   BIGINT      PRIMARY KEY,
		player_name TEXT        NOT NULL,
		team_abbr   TEXT        NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS slate_picks (
		run_id        UUID        NOT NULL,
		generated_at  TIMESTAMPTZ NOT NULL,
		stat          TEXT        NOT NULL,
		rank          INT         NOT NULL,
		player_id     BIGINT      NOT NULL,
		player_name   TEXT        NOT NULL,
		player_team   TEXT        NOT NULL,
		opponent_team TEXT        NOT NULL,
		side          TEXT        NOT NULL,
		line          DOUBLE PRECISION NOT NULL,
		price         INT         NOT NULL,
		book          TEXT        NOT NULL,
		model_prob    DOUBLE PRECISION NOT NULL,
		implied_prob  DOUBLE PRECISION NOT NULL,
		edge          DOUBLE PRECISION NOT NULL,
		rating        DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (run_id, rank)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_slate_picks_generated
		ON slate_picks (generated_at)`,
}

// EnsureSchema creates the pipeline tables when they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
