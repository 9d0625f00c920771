package bootstrap

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/archbot-backend/config"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth"
	authsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/dispatch"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/synth"
	chatsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/chats/service"
	projectsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/service"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/retention"
)

// App is the wired service graph shared by the api, worker and mcp binaries.
type App struct {
	Config     *config.Config
	Stores     *Stores
	Redis      *redis.Client
	Dispatcher *dispatch.Dispatcher
	Auth       *authsvc.AuthService
	Projects   *projectsvc.ProjectService
	Chat       *chatsvc.ChatService

	log *slog.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	stores, err := OpenStores(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb, err := OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		stores.Close()
		return nil, err
	}

	var revoker auth.Revoker = auth.NewMemoryRevoker()
	if rdb != nil {
		revoker = auth.NewRedisRevoker(rdb)
	}

	var external auth.IDTokenVerifier
	if cfg.Auth.FirebaseCredentialsPath != "" {
		client, err := auth.InitializeFirebase(ctx, cfg.Auth.FirebaseCredentialsPath)
		if err != nil {
			log.Warn("firebase disabled", "error", err)
		} else {
			external = client
		}
	}

	d := dispatch.New(synth.New(stores.Projects))
	projects := projectsvc.NewProjectService(stores.Projects)

	return &App{
		Config:     cfg,
		Stores:     stores,
		Redis:      rdb,
		Dispatcher: d,
		Auth: authsvc.NewAuthService(stores.Users,
			auth.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.AccessTokenTTL), revoker, external),
		Projects: projects,
		Chat:     chatsvc.NewChatService(d, stores.Chats, projects, cfg.Chat.HistoryLimit),
		log:      log,
	}, nil
}

// Limiter returns the request limiter, or nil when rate limiting is off.
// Redis gives a limit shared across replicas.
func (a *App) Limiter() middleware.Limiter {
	rl := a.Config.RateLimit
	if !rl.Enabled {
		return nil
	}
	if a.Redis != nil {
		return middleware.NewRedisLimiter(a.Redis, int(math.Ceil(rl.RequestsPerSecond*60)), time.Minute)
	}
	return middleware.NewLocalLimiter(rl.RequestsPerSecond, rl.Burst)
}

// Retention returns the chat history pruner, or nil when retention is off.
func (a *App) Retention() *retention.Scheduler {
	if a.Config.Chat.RetentionDays <= 0 {
		return nil
	}
	return retention.NewScheduler(a.Stores.Chats, a.Config.Chat.RetentionDays, a.Config.Chat.RetentionSchedule, a.log)
}

func (a *App) Router() *gin.Engine {
	return BuildRouter(RouterDeps{
		ServiceName:    a.Config.App.ServiceName,
		Version:        a.Config.App.Version,
		AllowedOrigins: a.Config.CORS.AllowedOrigins,
		Health:         a.Stores.Health,
		Limiter:        a.Limiter(),
		Auth:           a.Auth,
		Projects:       a.Projects,
		Chat:           a.Chat,
	})
}

func (a *App) Close() {
	if a.Redis != nil {
		a.Redis.Close()
	}
	a.Stores.Close()
}
