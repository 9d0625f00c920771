package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/users"
)

func (h *Handler) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	u, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Passwords don't match!"})
		case errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Password must be at least 6 characters long"})
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, auth.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		case errors.Is(err, users.ErrExists):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "Username or email already exists"})
		default:
			logger.Op(c.Request.Context(), "auth.register").Error("register failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "user": u})
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "username and password are required"})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Invalid username or password"})
			return
		}
		logger.Op(c.Request.Context(), "auth.login").Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"access_token": res.AccessToken,
		"token_type":   res.TokenType,
		"expires_at":   res.ExpiresAt,
		"user":         res.User,
	})
}

func (h *Handler) logout(c *gin.Context) {
	claims, ok := auth.TokenClaims(c)
	if !ok {
		// external identity tokens are not ours to revoke
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		logger.Op(c.Request.Context(), "auth.logout").Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) me(c *gin.Context) {
	u, err := h.authService.Me(c.Request.Context(), auth.UserID(c))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
			return
		}
		logger.Op(c.Request.Context(), "auth.me").Error("load user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
}
