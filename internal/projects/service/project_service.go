package service

import (
	"context"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/compose"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/projects"
)

// ProjectView is a project list row with its display label.
type ProjectView struct {
	domain.ProjectSummary
	TypeLabel string `json:"type_label"`
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store projects.Store
}

func NewProjectService(store projects.Store) *ProjectService {
	return &ProjectService{store: store}
}

// List returns the owner's projects, newest first.
func (s *ProjectService) List(ctx context.Context, owner int64) ([]ProjectView, error) {
	items, err := s.store.ListProjects(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]ProjectView, 0, len(items))
	for _, p := range items {
		out = append(out, ProjectView{ProjectSummary: p, TypeLabel: compose.TypeLabel(p.Type)})
	}
	return out, nil
}

// Get returns one project owned by owner, or domain.ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, owner, id int64) (*domain.ProjectRecord, error) {
	return s.store.GetProject(ctx, owner, id)
}
