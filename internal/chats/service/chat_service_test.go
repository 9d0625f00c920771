package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/dispatch"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/fallback"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/synth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/chats"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/projects"
	projectsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/service"
)

type failingStore struct {
	chats.Store
	err error
}

func (f failingStore) InsertChatTurn(context.Context, int64, string, string) (*domain.ChatTurn, error) {
	return nil, f.err
}

func (f failingStore) ListChatTurns(context.Context, int64, int) ([]domain.ChatTurn, error) {
	return nil, f.err
}

func setupService(store chats.Store) (*ChatService, *projects.MemoryStore) {
	projStore := projects.NewMemoryStore()
	d := dispatch.New(synth.New(projStore))
	return NewChatService(d, store, projectsvc.NewProjectService(projStore), 10), projStore
}

func TestPostMessage_ProjectTurn(t *testing.T) {
	store := chats.NewMemoryStore()
	svc, projStore := setupService(store)
	ctx := context.Background()

	turn, err := svc.PostMessage(ctx, 3, "Create a web application for task management")
	require.NoError(t, err)
	assert.Equal(t, domain.ReplyProject, turn.Reply.Kind)
	assert.Equal(t, domain.WebApp, turn.Reply.Type)
	require.NotNil(t, turn.Saved)
	assert.Equal(t, turn.Reply.Text, turn.Saved.Response)
	assert.Equal(t, 1, projStore.Len())

	history, err := svc.History(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Create a web application for task management", history[0].Message)
}

func TestPostMessage_ConversationTurn(t *testing.T) {
	svc, projStore := setupService(chats.NewMemoryStore())

	turn, err := svc.PostMessage(context.Background(), 3, "hello there")
	require.NoError(t, err)
	assert.Equal(t, domain.ReplyConversation, turn.Reply.Kind)
	assert.Equal(t, fallback.Route("hello"), turn.Reply.Text)
	assert.Zero(t, projStore.Len())
}

func TestPostMessage_Empty(t *testing.T) {
	svc, _ := setupService(chats.NewMemoryStore())
	_, err := svc.PostMessage(context.Background(), 3, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestPostMessage_HistoryWriteFailureKeepsReply(t *testing.T) {
	boom := errors.New("disk full")
	svc, _ := setupService(failingStore{err: boom})

	turn, err := svc.PostMessage(context.Background(), 3, "hi")
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, turn)
	assert.Nil(t, turn.Saved)
	assert.NotEmpty(t, turn.Reply.Text)
}

func TestHistory_Chronological(t *testing.T) {
	store := chats.NewMemoryStore()
	svc, _ := setupService(store)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := store.InsertChatTurn(ctx, 1, fmt.Sprintf("m%d", i), "r")
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, history, 10)
	assert.Equal(t, "m3", history[0].Message)
	assert.Equal(t, "m12", history[9].Message)

	// limits above the configured window are clamped
	history, err = svc.History(ctx, 1, 50)
	require.NoError(t, err)
	assert.Len(t, history, 10)
}

func TestSession(t *testing.T) {
	svc, _ := setupService(chats.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.PostMessage(ctx, 4, "build a chatbot for support")
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, 4, "what can you do")
	require.NoError(t, err)

	s, err := svc.Session(ctx, 4)
	require.NoError(t, err)
	require.Len(t, s.Projects, 1)
	assert.Equal(t, "Chatbot", s.Projects[0].TypeLabel)
	require.Len(t, s.History, 2)
	assert.Equal(t, "build a chatbot for support", s.History[0].Message)
}

func TestSession_PropagatesStoreError(t *testing.T) {
	svc, _ := setupService(failingStore{err: errors.New("locked")})
	_, err := svc.Session(context.Background(), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading history")
}

func TestPrune(t *testing.T) {
	store := chats.NewMemoryStore()
	svc, _ := setupService(store)
	ctx := context.Background()

	_, err := store.InsertChatTurn(ctx, 1, "m", "r")
	require.NoError(t, err)
	n, err := svc.Prune(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
