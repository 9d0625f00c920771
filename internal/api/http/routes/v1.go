package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/api/http/middleware"
	authhttp "github.com/GoSim-25-26J-441/archbot-backend/internal/auth/http"
	authmw "github.com/GoSim-25-26J-441/archbot-backend/internal/auth/middleware"
	authsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/auth/service"
	blueprinthttp "github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/http"
	chathttp "github.com/GoSim-25-26J-441/archbot-backend/internal/chats/http"
	chatsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/chats/service"
	projecthttp "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/http"
	projectsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/service"
)

type V1Deps struct {
	Auth     *authsvc.AuthService
	Projects *projectsvc.ProjectService
	Chat     *chatsvc.ChatService
	// Limiter is optional; nil disables rate limiting.
	Limiter middleware.Limiter
}

// RegisterV1 mounts /api/v1. Templates, classify and the auth entry points are
// public; everything else requires a bearer token.
func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	blueprinthttp.New().Register(api)

	authHandler := authhttp.New(dep.Auth)
	authGroup := api.Group("/auth")
	if dep.Limiter != nil {
		authGroup.Use(middleware.RateLimit(dep.Limiter))
	}
	authHandler.Register(authGroup)

	protected := api.Group("")
	protected.Use(authmw.RequireUser(dep.Auth))
	if dep.Limiter != nil {
		protected.Use(middleware.RateLimit(dep.Limiter))
	}
	authHandler.RegisterProtected(protected.Group("/auth"))

	chathttp.New(dep.Chat).Register(protected)

	projectsGroup := protected.Group("/projects")
	projecthttp.New(dep.Projects).Register(projectsGroup)
}
