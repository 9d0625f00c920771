// Package chats persists chat turns and answers chat requests through the
// blueprint dispatcher.
package chats

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

// DefaultHistoryLimit is how many recent turns are shown when loading a session.
const DefaultHistoryLimit = 10

// Store is implemented by every chat-history backend.
type Store interface {
	InsertChatTurn(ctx context.Context, owner int64, message, response string) (*domain.ChatTurn, error)
	// ListChatTurns returns at most limit turns, newest first.
	ListChatTurns(ctx context.Context, owner int64, limit int) ([]domain.ChatTurn, error)
	// PruneChatTurns deletes every turn stamped before the cutoff.
	PruneChatTurns(ctx context.Context, before time.Time) (int64, error)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}
