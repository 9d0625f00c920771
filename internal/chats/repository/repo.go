// Package repository is the database/sql chat-history store used with SQLite.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/chats"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/sqlite"
)

// ChatRepository provides persistence operations for chat turns
type ChatRepository struct {
	db *sql.DB
}

func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) InsertChatTurn(ctx context.Context, owner int64, message, response string) (*domain.ChatTurn, error) {
	const q = `
INSERT INTO chat_history (user_id, message, response)
VALUES (?, ?, ?)
RETURNING id, timestamp;
`
	var ts sqlite.Timestamp
	t := domain.ChatTurn{UserID: owner, Message: message, Response: response}
	if err := r.db.QueryRowContext(ctx, q, owner, message, response).Scan(&t.ID, &ts); err != nil {
		return nil, fmt.Errorf("inserting chat turn: %w", err)
	}
	t.Timestamp = ts.Time
	return &t, nil
}

func (r *ChatRepository) ListChatTurns(ctx context.Context, owner int64, limit int) ([]domain.ChatTurn, error) {
	if limit <= 0 {
		limit = chats.DefaultHistoryLimit
	}

	const q = `
SELECT id, user_id, message, response, timestamp
FROM chat_history
WHERE user_id = ?
ORDER BY timestamp DESC, id DESC
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat turns: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ChatTurn, 0, limit)
	for rows.Next() {
		var (
			t  domain.ChatTurn
			ts sqlite.Timestamp
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Message, &t.Response, &ts); err != nil {
			return nil, err
		}
		t.Timestamp = ts.Time
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PruneChatTurns compares in the stored text layout, which sorts chronologically.
func (r *ChatRepository) PruneChatTurns(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chat_history WHERE timestamp < ?`, sqlite.FormatTime(before))
	if err != nil {
		return 0, fmt.Errorf("pruning chat turns: %w", err)
	}
	return res.RowsAffected()
}
