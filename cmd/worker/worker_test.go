package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/archbot-backend/config"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/storage/sqlite"
)

func testWorker(t *testing.T) *worker {
	t.Helper()
	cfg, err := config.LoadFrom("")
	require.NoError(t, err)
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = sqlite.MemoryPath
	cfg.Redis.Addr = ""
	cfg.Auth.FirebaseCredentialsPath = ""

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &worker{
		log: log,
		openApp: func(ctx context.Context) (*bootstrap.App, error) {
			return bootstrap.NewApp(ctx, cfg, log)
		},
	}
}

func executeCmd(t *testing.T, w *worker, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(w)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestClassifyCmd(t *testing.T) {
	out, err := executeCmd(t, testWorker(t), "classify", "build", "an", "android", "app")
	require.NoError(t, err)
	assert.Contains(t, out, "Type:       mobile_app")
	assert.Contains(t, out, "Creation:   true")
	assert.Contains(t, out, "Score")
}

func TestClassifyCmd_RequiresPrompt(t *testing.T) {
	_, err := executeCmd(t, testWorker(t), "classify")
	assert.Error(t, err)
}

func TestBlueprintCmd_DryRun(t *testing.T) {
	w := testWorker(t)
	w.openApp = func(context.Context) (*bootstrap.App, error) {
		t.Fatal("dry run must not open the database")
		return nil, nil
	}

	out, err := executeCmd(t, w, "blueprint", "create", "a", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "PROJECT BLUEPRINT CREATED")
	assert.Contains(t, out, "dry run, not saved")
}

func TestBlueprintCmd_Conversation(t *testing.T) {
	out, err := executeCmd(t, testWorker(t), "blueprint", "hello")
	require.NoError(t, err)
	assert.NotContains(t, out, "PROJECT BLUEPRINT CREATED")
	assert.NotContains(t, out, "not saved")
}

func TestBlueprintCmd_Persist(t *testing.T) {
	out, err := executeCmd(t, testWorker(t), "blueprint", "--persist", "--user-id", "4", "I need a chatbot for customer support")
	require.NoError(t, err)
	assert.Contains(t, out, "saved for user 4")
}

func TestTemplatesCmd(t *testing.T) {
	out, err := executeCmd(t, testWorker(t), "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Web App")
	assert.Contains(t, out, "Automation Agent")
	assert.Contains(t, out, "How to create projects")
	assert.Contains(t, out, "Build a data analysis agent for sales data")
}

func TestPruneHistoryCmd(t *testing.T) {
	out, err := executeCmd(t, testWorker(t), "prune-history", "--days", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 chat turns older than 30 days")

	_, err = executeCmd(t, testWorker(t), "prune-history", "--days", "0")
	assert.Error(t, err)

	_, err = executeCmd(t, testWorker(t), "prune-history")
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	w := &worker{}
	got := w.renderTable([]string{"A", "Long"}, [][]string{{"xyz", "1"}})
	assert.Equal(t, "A    Long\n───  ────\nxyz  1\n", got)
}
