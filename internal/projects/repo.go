package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"
)

// Repo is the Postgres project store.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) InsertProject(ctx context.Context, rec *domain.ProjectRecord) error {
	features, techs, comps, err := EncodeRecord(rec)
	if err != nil {
		return err
	}

	const q = `
insert into projects (user_id, name, type, description, features, complexity, technologies, components, timeline, original_prompt)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
returning id, created_at;
`
	err = r.db.QueryRow(ctx, q,
		rec.OwnerID, rec.Name, string(rec.Type), rec.Description,
		features, string(rec.Complexity), techs, comps,
		rec.Timeline, rec.OriginalPrompt,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *Repo) ListProjects(ctx context.Context, owner int64) ([]domain.ProjectSummary, error) {
	const q = `
select id, name, type, coalesce(description, ''), created_at
from projects
where user_id = $1
order by created_at desc, id desc;
`
	rows, err := r.db.Query(ctx, q, owner)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ProjectSummary, 0, 16)
	for rows.Next() {
		var (
			p  domain.ProjectSummary
			pt string
		)
		if err := rows.Scan(&p.ID, &p.Name, &pt, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Type = domain.ProjectType(pt)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetProject(ctx context.Context, owner, id int64) (*domain.ProjectRecord, error) {
	const q = `
select id, user_id, name, type, coalesce(description, ''), features, coalesce(complexity, ''),
       technologies, components, coalesce(timeline, ''), coalesce(original_prompt, ''), created_at
from projects
where user_id = $1 and id = $2;
`
	var (
		rec                         domain.ProjectRecord
		pt, complexity              string
		features, techs, components *string
	)
	err := r.db.QueryRow(ctx, q, owner, id).Scan(
		&rec.ID, &rec.OwnerID, &rec.Name, &pt, &rec.Description, &features, &complexity,
		&techs, &components, &rec.Timeline, &rec.OriginalPrompt, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	rec.Type = domain.ProjectType(pt)
	rec.Complexity = domain.TemplateComplexity(complexity)
	if err := DecodeRecord(&rec, features, techs, components); err != nil {
		return nil, err
	}
	return &rec, nil
}
