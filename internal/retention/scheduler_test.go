package retention

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/chats"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/metrics"
)

type recordingPruner struct {
	cutoff time.Time
	n      int64
	err    error
}

func (p *recordingPruner) PruneChatTurns(_ context.Context, before time.Time) (int64, error) {
	p.cutoff = before
	return p.n, p.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnce(t *testing.T) {
	p := &recordingPruner{n: 4}
	s := NewScheduler(p, 30, "0 0 3 * * *", quietLogger())
	now := time.Date(2025, 3, 31, 3, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	before := testutil.ToFloat64(metrics.ChatTurnsPrunedTotal)
	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC), p.cutoff)
	assert.Equal(t, before+4, testutil.ToFloat64(metrics.ChatTurnsPrunedTotal))
}

func TestRunOnce_Error(t *testing.T) {
	s := NewScheduler(&recordingPruner{err: errors.New("locked")}, 7, "0 0 3 * * *", quietLogger())
	_, err := s.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestRunOnce_MemoryStore(t *testing.T) {
	store := chats.NewMemoryStore()
	ctx := context.Background()
	_, err := store.InsertChatTurn(ctx, 1, "m", "r")
	require.NoError(t, err)

	s := NewScheduler(store, 1, "0 0 3 * * *", quietLogger())
	s.now = func() time.Time { return time.Now().AddDate(0, 0, 2) }

	n, err := s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStart_Validation(t *testing.T) {
	assert.Error(t, NewScheduler(&recordingPruner{}, 0, "0 0 3 * * *", quietLogger()).Start())
	assert.Error(t, NewScheduler(&recordingPruner{}, 7, "not a schedule", quietLogger()).Start())

	s := NewScheduler(&recordingPruner{}, 7, "0 0 3 * * *", quietLogger())
	require.NoError(t, s.Start())
	s.Stop()
}
