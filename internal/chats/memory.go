package chats

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

// MemoryStore keeps chat turns in process. Used by dry runs and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	turns  []domain.ChatTurn
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) InsertChatTurn(_ context.Context, owner int64, message, response string) (*domain.ChatTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	t := domain.ChatTurn{
		ID:        m.nextID,
		UserID:    owner,
		Message:   message,
		Response:  response,
		Timestamp: m.now().UTC(),
	}
	m.turns = append(m.turns, t)
	return &t, nil
}

func (m *MemoryStore) ListChatTurns(_ context.Context, owner int64, limit int) ([]domain.ChatTurn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ChatTurn, 0)
	for _, t := range m.turns {
		if t.UserID == owner {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID > out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if n := normalizeLimit(limit); len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *MemoryStore) PruneChatTurns(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.turns[:0]
	var removed int64
	for _, t := range m.turns {
		if t.Timestamp.Before(before) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	m.turns = kept
	return removed, nil
}
