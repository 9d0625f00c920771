package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/logger"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxClaims   = "token_claims"
)

// SetUser records the authenticated user on the request. RequireUser calls it
// once the bearer token has been accepted.
func SetUser(c *gin.Context, id int64, username string) {
	c.Set(CtxUserID, id)
	c.Set(CtxUsername, username)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), id))
}

// UserID returns the authenticated user's id, or 0 outside RequireUser.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserID)
}

func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}

// SetPrincipal records p on the request.
func SetPrincipal(c *gin.Context, p *Principal) {
	SetUser(c, p.UserID, p.Username)
	if p.Claims != nil {
		c.Set(CtxClaims, p.Claims)
	}
}

// TokenClaims returns the verified access-token claims, if any.
func TokenClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// Principal is the identity RequireUser attaches to a request.
type Principal struct {
	UserID   int64
	Username string
	// Claims is nil for external identity tokens.
	Claims *Claims
}
