package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema statements. It is safe to re-run and upgrades
// databases created before projects carried a timeline and original prompt.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		username        TEXT UNIQUE NOT NULL,
		email           TEXT UNIQUE NOT NULL,
		hashed_password TEXT NOT NULL,
		created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS chat_history (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id   INTEGER,
		message   TEXT NOT NULL,
		response  TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id      INTEGER,
		name         TEXT NOT NULL,
		type         TEXT NOT NULL,
		description  TEXT,
		features     TEXT,
		complexity   TEXT,
		technologies TEXT,
		components   TEXT,
		created_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`,

	`ALTER TABLE projects ADD COLUMN timeline TEXT`,
	`ALTER TABLE projects ADD COLUMN original_prompt TEXT`,

	`CREATE INDEX IF NOT EXISTS idx_chat_history_user ON chat_history(user_id, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id, created_at)`,
}
