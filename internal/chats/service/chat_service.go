package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/chats"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
	projectsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/service"
)

var ErrEmptyMessage = errors.New("message is required")

// Dispatcher answers a single chat turn.
type Dispatcher interface {
	Handle(ctx context.Context, prompt string, owner int64) domain.Reply
}

// ProjectLister loads the sidebar project list.
type ProjectLister interface {
	List(ctx context.Context, owner int64) ([]projectsvc.ProjectView, error)
}

// Turn is the result of posting one message.
type Turn struct {
	Reply domain.Reply
	// Saved is nil when the exchange could not be written to history.
	Saved *domain.ChatTurn
}

// Session is everything the chat page needs on load.
type Session struct {
	Projects []projectsvc.ProjectView `json:"projects"`
	History  []domain.ChatTurn        `json:"history"`
}

// ChatService handles chat-related business logic
type ChatService struct {
	dispatcher   Dispatcher
	store        chats.Store
	projects     ProjectLister
	historyLimit int
}

func NewChatService(d Dispatcher, store chats.Store, projects ProjectLister, historyLimit int) *ChatService {
	if historyLimit <= 0 {
		historyLimit = chats.DefaultHistoryLimit
	}
	return &ChatService{dispatcher: d, store: store, projects: projects, historyLimit: historyLimit}
}

// PostMessage runs the dispatcher and records the exchange. The reply is
// always returned; a history write failure comes back alongside it.
func (s *ChatService) PostMessage(ctx context.Context, owner int64, message string) (*Turn, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	turn := &Turn{Reply: s.dispatcher.Handle(ctx, message, owner)}

	saved, err := s.store.InsertChatTurn(ctx, owner, message, turn.Reply.Text)
	if err != nil {
		logger.Op(ctx, "chats.post_message").Error("saving chat turn failed", "error", err)
		return turn, fmt.Errorf("saving chat turn: %w", err)
	}
	turn.Saved = saved
	return turn, nil
}

// History returns the most recent turns in chronological order.
func (s *ChatService) History(ctx context.Context, owner int64, limit int) ([]domain.ChatTurn, error) {
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	turns, err := s.store.ListChatTurns(ctx, owner, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// Session loads the project list and recent history concurrently.
func (s *ChatService) Session(ctx context.Context, owner int64) (*Session, error) {
	var out Session
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.projects.List(gctx, owner)
		if err != nil {
			return fmt.Errorf("loading projects: %w", err)
		}
		out.Projects = items
		return nil
	})
	g.Go(func() error {
		turns, err := s.History(gctx, owner, s.historyLimit)
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		out.History = turns
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Prune deletes turns older than the cutoff.
func (s *ChatService) Prune(ctx context.Context, before time.Time) (int64, error) {
	return s.store.PruneChatTurns(ctx, before)
}
