package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/sqlite"
)

type queries struct {
	create     string
	byUsername string
	byID       string
	ensure     string
	password   string
}

var postgresQueries = queries{
	create: `
INSERT INTO users (username, email, hashed_password)
VALUES ($1, $2, $3)
RETURNING id, created_at;`,
	byUsername: `
SELECT id, username, email, hashed_password, created_at
FROM users
WHERE username = $1;`,
	byID: `
SELECT id, username, email, hashed_password, created_at
FROM users
WHERE id = $1;`,
	ensure: `
INSERT INTO users (username, email, hashed_password)
VALUES ($1, $2, $3)
ON CONFLICT (username) DO UPDATE
SET email = excluded.email
RETURNING id;`,
	password: `UPDATE users SET hashed_password = $1 WHERE id = $2;`,
}

var sqliteQueries = queries{
	create: `
INSERT INTO users (username, email, hashed_password)
VALUES (?, ?, ?)
RETURNING id, created_at;`,
	byUsername: `
SELECT id, username, email, hashed_password, created_at
FROM users
WHERE username = ?;`,
	byID: `
SELECT id, username, email, hashed_password, created_at
FROM users
WHERE id = ?;`,
	ensure: `
INSERT INTO users (username, email, hashed_password)
VALUES (?, ?, ?)
ON CONFLICT (username) DO UPDATE
SET email = excluded.email
RETURNING id;`,
	password: `UPDATE users SET hashed_password = ? WHERE id = ?;`,
}

// Repo is the database/sql user repository. The dialect only changes the
// placeholder style and how unique violations are recognised.
type Repo struct {
	db       *sql.DB
	q        queries
	isUnique func(error) bool
}

// NewRepo returns a repository for a lib/pq Postgres handle.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db, q: postgresQueries, isUnique: postgres.IsUniqueViolation}
}

func NewSQLiteRepo(db *sql.DB) *Repo {
	return &Repo{db: db, q: sqliteQueries, isUnique: sqlite.IsUniqueViolation}
}

// Create inserts u and fills in its id and creation time.
func (r *Repo) Create(ctx context.Context, u *User) error {
	var created sqlite.Timestamp
	err := r.db.QueryRowContext(ctx, r.q.create, u.Username, u.Email, u.HashedPassword).
		Scan(&u.ID, &created)
	if err != nil {
		if r.isUnique(err) {
			return ErrExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	u.CreatedAt = created.Time
	return nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, r.q.byUsername, username))
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, r.q.byID, id))
}

// EnsureUser returns the id of the local account mapped to an external
// identity, creating it on first sight.
func (r *Repo) EnsureUser(ctx context.Context, u UpsertUser) (int64, error) {
	if u.ExternalID == "" {
		return 0, errors.New("external id required")
	}
	email := u.Email
	if email == "" {
		email = u.ExternalID + "@firebase.local"
	}

	var id int64
	err := r.db.QueryRowContext(ctx, r.q.ensure, ExternalUsername(u.ExternalID), email, disabledPassword).Scan(&id)
	if err != nil {
		if r.isUnique(err) {
			return 0, ErrExists
		}
		return 0, fmt.Errorf("ensuring user: %w", err)
	}
	return id, nil
}

// UpdatePassword replaces the stored hash for the user.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx, r.q.password, hash, id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) scanOne(row *sql.Row) (*User, error) {
	var (
		u       User
		created sqlite.Timestamp
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = created.Time
	return &u, nil
}
