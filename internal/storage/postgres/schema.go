package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              BIGSERIAL PRIMARY KEY,
		username        TEXT UNIQUE NOT NULL,
		email           TEXT UNIQUE NOT NULL,
		hashed_password TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS chat_history (
		id        BIGSERIAL PRIMARY KEY,
		user_id   BIGINT,
		message   TEXT NOT NULL,
		response  TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id              BIGSERIAL PRIMARY KEY,
		user_id         BIGINT,
		name            TEXT NOT NULL,
		type            TEXT NOT NULL,
		description     TEXT,
		features        TEXT,
		complexity      TEXT,
		technologies    TEXT,
		components      TEXT,
		timeline        TEXT,
		original_prompt TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_history_user ON chat_history (user_id, timestamp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects (user_id, created_at DESC)`,
}

// EnsureSchema creates the tables and indexes. Every statement is idempotent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
