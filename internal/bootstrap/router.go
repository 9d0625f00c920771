package bootstrap

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpapi "github.com/GoSim-25-26J-441/archbot-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/api/http/routes"
	authsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/auth/service"
	chatsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/chats/service"
	projectsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Health         httpapi.Pinger
	Limiter        middleware.Limiter
	Auth           *authsvc.AuthService
	Projects       *projectsvc.ProjectService
	Chat           *chatsvc.ChatService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.Recovery(),
		otelgin.Middleware(dep.ServiceName),
		middleware.Metrics(),
		middleware.CORS(dep.AllowedOrigins),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Health)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Auth:     dep.Auth,
		Projects: dep.Projects,
		Chat:     dep.Chat,
		Limiter:  dep.Limiter,
	})

	return r
}
