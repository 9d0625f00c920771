package chats

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	m.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for i := 1; i <= 12; i++ {
		_, err := m.InsertChatTurn(ctx, 1, fmt.Sprintf("m%d", i), fmt.Sprintf("r%d", i))
		require.NoError(t, err)
	}
	_, err := m.InsertChatTurn(ctx, 2, "other", "other")
	require.NoError(t, err)

	turns, err := m.ListChatTurns(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, turns, DefaultHistoryLimit)
	assert.Equal(t, "m12", turns[0].Message)
	assert.Equal(t, "m3", turns[len(turns)-1].Message)

	turns, err = m.ListChatTurns(ctx, 1, 3)
	require.NoError(t, err)
	assert.Len(t, turns, 3)

	turns, err = m.ListChatTurns(ctx, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestMemoryStore_Prune(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now.AddDate(0, 0, -5) }
	_, err := m.InsertChatTurn(ctx, 1, "old", "old")
	require.NoError(t, err)
	m.now = func() time.Time { return now }
	_, err = m.InsertChatTurn(ctx, 1, "new", "new")
	require.NoError(t, err)

	n, err := m.PruneChatTurns(ctx, now.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	turns, err := m.ListChatTurns(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "new", turns[0].Message)
}
