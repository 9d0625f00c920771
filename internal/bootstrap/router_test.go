package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/archbot-backend/config"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/sqlite"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom("")
	require.NoError(t, err)
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = sqlite.MemoryPath
	cfg.Redis.Addr = ""
	cfg.Auth.FirebaseCredentialsPath = ""
	return cfg
}

func setupApp(t *testing.T, cfg *config.Config) (*App, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := NewApp(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app, app.Router()
}

func doJSON(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "erin", "email": "erin@example.com", "password": "hunter22", "confirm_password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "erin", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	_, r := setupApp(t, testConfig(t))

	w := doJSON(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"up"`)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	w = doJSON(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "archbot_http_requests_total")
}

func TestRouter_PublicBlueprintRoutes(t *testing.T) {
	_, r := setupApp(t, testConfig(t))

	w := doJSON(r, http.MethodGet, "/api/v1/templates", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/classify", "", map[string]string{"prompt": "a sales dashboard"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"data_analysis"`)
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	_, r := setupApp(t, testConfig(t))

	for _, path := range []string{"/api/v1/projects", "/api/v1/chats/history", "/api/v1/session", "/api/v1/auth/me"} {
		w := doJSON(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouter_ChatFlow(t *testing.T) {
	_, r := setupApp(t, testConfig(t))
	token := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/chat", token, map[string]string{"message": "create a dashboard"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"kind":"project"`)
	assert.Contains(t, w.Body.String(), `"saved":true`)

	w = doJSON(r, http.MethodGet, "/api/v1/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type_label":"Data Analysis"`)

	w = doJSON(r, http.MethodGet, "/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"erin"`)
	assert.Contains(t, w.Body.String(), `"message":"create a dashboard"`)

	w = doJSON(r, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 0.001
	cfg.RateLimit.Burst = 1
	_, r := setupApp(t, cfg)

	body := map[string]string{"username": "nobody", "password": "wrong-pass"}
	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestApp_RedisBackedLimiterAndRetention(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig(t)
	cfg.Redis.Addr = mr.Addr()
	cfg.RateLimit.Enabled = true
	app, _ := setupApp(t, cfg)

	require.NotNil(t, app.Redis)
	assert.IsType(t, &middleware.RedisLimiter{}, app.Limiter())
	assert.Nil(t, app.Retention())

	cfg.Chat.RetentionDays = 7
	assert.NotNil(t, app.Retention())
}

func TestOpenRedis(t *testing.T) {
	client, err := OpenRedis(context.Background(), &config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)

	_, err = OpenRedis(context.Background(), &config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	_, err := OpenStores(context.Background(), &config.DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}
