package bootstrap

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/archbot-backend/config"
	httpapi "github.com/GoSim-25-26J-441/archbot-backend/internal/api/http"
	authsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/chats"
	chatrepo "github.com/GoSim-25-26J-441/archbot-backend/internal/chats/repository"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/projects"
	projectrepo "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/repository"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/sqlite"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/users"
)

// Stores groups the repositories for the configured driver.
type Stores struct {
	Users    authsvc.UserRepository
	Projects projects.Store
	Chats    chats.Store
	Health   httpapi.Pinger

	closers []func()
}

func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// OpenStores opens the database named by cfg. The sqlite driver serves every
// repository from one file; postgres serves users and the schema over lib/pq
// and projects and chat turns over a pgx pool.
func OpenStores(ctx context.Context, cfg *config.DatabaseConfig) (*Stores, error) {
	switch cfg.Driver {
	case "sqlite":
		db, err := sqlite.OpenDB(cfg.Path)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:    users.NewSQLiteRepo(db),
			Projects: projectrepo.NewProjectRepository(db),
			Chats:    chatrepo.NewChatRepository(db),
			Health:   httpapi.SQLPinger{DB: db},
			closers:  []func(){func() { db.Close() }},
		}, nil

	case "postgres":
		sqlDB, err := postgres.NewConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		pool, err := OpenDB(ctx, DBOptions{DSN: postgres.DSN(cfg)})
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		return &Stores{
			Users:    users.NewRepo(sqlDB),
			Projects: projects.NewRepo(pool),
			Chats:    chats.NewRepo(pool),
			Health:   pool,
			closers:  []func(){func() { sqlDB.Close() }, pool.Close},
		}, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
}
