package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth/middleware"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/sqlite"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/users"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.OpenDB(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := service.NewAuthService(users.NewSQLiteRepo(db), auth.NewTokenManager("test-secret", 30*time.Minute), auth.NewMemoryRevoker(), nil)
	h := New(svc)

	r := gin.New()
	g := r.Group("/api/v1/auth")
	h.Register(g)
	protected := g.Group("")
	protected.Use(middleware.RequireUser(svc))
	h.RegisterProtected(protected)
	return r
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{"created", `{"username":"alice","email":"a@x","password":"secret1","confirm_password":"secret1"}`, http.StatusCreated, `"username":"alice"`},
		{"duplicate", `{"username":"alice","email":"b@x","password":"secret1","confirm_password":"secret1"}`, http.StatusConflict, "Username or email already exists"},
		{"mismatch", `{"username":"bob","email":"b@x","password":"secret1","confirm_password":"secret9"}`, http.StatusBadRequest, "Passwords don't match!"},
		{"short", `{"username":"bob","email":"b@x","password":"abc","confirm_password":"abc"}`, http.StatusBadRequest, "at least 6 characters"},
		{"bad json", `{`, http.StatusBadRequest, "invalid body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/auth/register", tt.body, "")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "hashed_password")
		})
	}
}

func TestLoginMeLogout(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/v1/auth/register", `{"username":"carol","email":"c@x","password":"secret1","confirm_password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", `{"username":"carol","password":"nope12"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")

	w = do(r, http.MethodPost, "/api/v1/auth/login", `{"username":"carol","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "bearer", login.TokenType)

	w = do(r, http.MethodGet, "/api/v1/auth/me", "", login.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"carol"`)

	w = do(r, http.MethodPost, "/api/v1/auth/logout", "", login.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/auth/me", "", login.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token revoked")
}

func TestMe_RequiresToken(t *testing.T) {
	r := setupRouter(t)
	w := do(r, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
