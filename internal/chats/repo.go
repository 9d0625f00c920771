package chats

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

// Repo is the Postgres chat-history store.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo { return &Repo{db: db} }

func (r *Repo) InsertChatTurn(ctx context.Context, owner int64, message, response string) (*domain.ChatTurn, error) {
	const q = `
insert into chat_history (user_id, message, response)
values ($1, $2, $3)
returning id, timestamp;
`
	t := domain.ChatTurn{UserID: owner, Message: message, Response: response}
	if err := r.db.QueryRow(ctx, q, owner, message, response).Scan(&t.ID, &t.Timestamp); err != nil {
		return nil, fmt.Errorf("inserting chat turn: %w", err)
	}
	return &t, nil
}

func (r *Repo) ListChatTurns(ctx context.Context, owner int64, limit int) ([]domain.ChatTurn, error) {
	const q = `
select id, user_id, message, response, timestamp
from chat_history
where user_id = $1
order by timestamp desc, id desc
limit $2;
`
	rows, err := r.db.Query(ctx, q, owner, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing chat turns: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ChatTurn, 0, normalizeLimit(limit))
	for rows.Next() {
		var t domain.ChatTurn
		if err := rows.Scan(&t.ID, &t.UserID, &t.Message, &t.Response, &t.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) PruneChatTurns(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `delete from chat_history where timestamp < $1`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning chat turns: %w", err)
	}
	return tag.RowsAffected(), nil
}
