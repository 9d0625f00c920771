package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/auth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/dispatch"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/synth"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/chats"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/chats/service"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/projects"
	projectsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	projStore := projects.NewMemoryStore()
	svc := service.NewChatService(
		dispatch.New(synth.New(projStore)),
		chats.NewMemoryStore(),
		projectsvc.NewProjectService(projStore),
		10,
	)

	r := gin.New()
	g := r.Group("/api/v1")
	g.Use(func(c *gin.Context) {
		auth.SetUser(c, 11, "dana")
		c.Next()
	})
	New(svc).Register(g)
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPostMessage(t *testing.T) {
	r := setupRouter()

	w := postChat(r, `{"message":"build me a mobile app for recipes"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK          bool   `json:"ok"`
		Answer      string `json:"answer"`
		Kind        string `json:"kind"`
		ProjectType string `json:"project_type"`
		Saved       bool   `json:"saved"`
		Project     struct {
			Name string `json:"project_name"`
		} `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "project", body.Kind)
	assert.Equal(t, "mobile_app", body.ProjectType)
	assert.True(t, body.Saved)
	assert.Contains(t, body.Answer, "PROJECT BLUEPRINT CREATED")
	assert.Equal(t, "Build Mobile Mobile App", body.Project.Name)
}

func TestPostMessage_BadRequest(t *testing.T) {
	r := setupRouter()

	for _, b := range []string{`{"message":""}`, `{"message":"   "}`, `{}`, `not json`} {
		w := postChat(r, b)
		assert.Equal(t, http.StatusBadRequest, w.Code, b)
		assert.Contains(t, w.Body.String(), "message is required")
	}
}

func TestHistoryAndSession(t *testing.T) {
	r := setupRouter()

	require.Equal(t, http.StatusOK, postChat(r, `{"message":"hello"}`).Code)
	require.Equal(t, http.StatusOK, postChat(r, `{"message":"create a dashboard for sales"}`).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chats/history", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var hist struct {
		Messages []struct {
			Message string `json:"message"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hist))
	require.Len(t, hist.Messages, 2)
	assert.Equal(t, "hello", hist.Messages[0].Message)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chats/history?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var sess struct {
		User struct {
			UserID   int64  `json:"user_id"`
			Username string `json:"username"`
		} `json:"user"`
		Projects []struct {
			Type      string `json:"type"`
			TypeLabel string `json:"type_label"`
		} `json:"projects"`
		History []json.RawMessage `json:"history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.Equal(t, int64(11), sess.User.UserID)
	assert.Equal(t, "dana", sess.User.Username)
	require.Len(t, sess.Projects, 1)
	assert.Equal(t, "data_analysis", sess.Projects[0].Type)
	assert.Equal(t, "Data Analysis", sess.Projects[0].TypeLabel)
	assert.Len(t, sess.History, 2)
}
