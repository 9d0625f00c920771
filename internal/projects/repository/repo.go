// Package repository is the database/sql project store used with SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/projects"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/sqlite"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// InsertProject appends rec and stores the assigned id and timestamp back on it.
func (r *ProjectRepository) InsertProject(ctx context.Context, rec *domain.ProjectRecord) error {
	features, techs, comps, err := projects.EncodeRecord(rec)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO projects (user_id, name, type, description, features, complexity, technologies, components, timeline, original_prompt)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, created_at;
`
	var created sqlite.Timestamp
	err = r.db.QueryRowContext(ctx, q,
		rec.OwnerID, rec.Name, string(rec.Type), rec.Description,
		features, string(rec.Complexity), techs, comps,
		rec.Timeline, rec.OriginalPrompt,
	).Scan(&rec.ID, &created)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	rec.CreatedAt = created.Time
	return nil
}

// ListProjects returns the owner's projects newest first.
func (r *ProjectRepository) ListProjects(ctx context.Context, owner int64) ([]domain.ProjectSummary, error) {
	const q = `
SELECT id, name, type, COALESCE(description, ''), created_at
FROM projects
WHERE user_id = ?
ORDER BY created_at DESC, id DESC;
`
	rows, err := r.db.QueryContext(ctx, q, owner)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ProjectSummary, 0, 16)
	for rows.Next() {
		var (
			p       domain.ProjectSummary
			pt      string
			created sqlite.Timestamp
		)
		if err := rows.Scan(&p.ID, &p.Name, &pt, &p.Description, &created); err != nil {
			return nil, err
		}
		p.Type = domain.ProjectType(pt)
		p.CreatedAt = created.Time
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepository) GetProject(ctx context.Context, owner, id int64) (*domain.ProjectRecord, error) {
	const q = `
SELECT id, user_id, name, type, COALESCE(description, ''), features, COALESCE(complexity, ''),
       technologies, components, COALESCE(timeline, ''), COALESCE(original_prompt, ''), created_at
FROM projects
WHERE user_id = ? AND id = ?;
`
	var (
		rec                         domain.ProjectRecord
		pt, complexity              string
		created                     sqlite.Timestamp
		features, techs, components sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, owner, id).Scan(
		&rec.ID, &rec.OwnerID, &rec.Name, &pt, &rec.Description, &features, &complexity,
		&techs, &components, &rec.Timeline, &rec.OriginalPrompt, &created,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}

	rec.Type = domain.ProjectType(pt)
	rec.Complexity = domain.TemplateComplexity(complexity)
	rec.CreatedAt = created.Time
	if err := projects.DecodeRecord(&rec, nullable(features), nullable(techs), nullable(components)); err != nil {
		return nil, err
	}
	return &rec, nil
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
