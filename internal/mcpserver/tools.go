package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/classifier"
	"github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/dispatch"
	chatsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/chats/service"
	projectsvc "github.com/GoSim-25-26J-441/archbot-backend/internal/projects/service"
)

// Tools holds what the tool handlers need. Every call acts as Owner.
type Tools struct {
	Chat     *chatsvc.ChatService
	Projects *projectsvc.ProjectService
	Owner    int64
}

type ChatInput struct {
	Message string `json:"message" jsonschema:"What you want to build or ask, in plain English"`
}

type ClassifyInput struct {
	Prompt string `json:"prompt" jsonschema:"Prompt to classify into a project type"`
}

type GetProjectInput struct {
	ID int64 `json:"id" jsonschema:"Project id as returned by list_projects"`
}

func (t *Tools) ChatTool(ctx context.Context, _ *mcp.CallToolRequest, input ChatInput) (*mcp.CallToolResult, any, error) {
	turn, err := t.Chat.PostMessage(ctx, t.Owner, input.Message)
	if turn == nil {
		if errors.Is(err, chatsvc.ErrEmptyMessage) {
			return toolError("Message is required"), nil, nil
		}
		return toolError("Chat failed: %v", err), nil, nil
	}
	return toolText(turn.Reply.Text), nil, nil
}

func (t *Tools) ListProjects(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	items, err := t.Projects.List(ctx, t.Owner)
	if err != nil {
		return toolError("Failed to list projects: %v", err), nil, nil
	}
	return toolJSON(items)
}

func (t *Tools) GetProject(ctx context.Context, _ *mcp.CallToolRequest, input GetProjectInput) (*mcp.CallToolResult, any, error) {
	if input.ID <= 0 {
		return toolError("Project id is required"), nil, nil
	}
	p, err := t.Projects.Get(ctx, t.Owner, input.ID)
	if err != nil {
		return toolError("Failed to load project %d: %v", input.ID, err), nil, nil
	}
	return toolJSON(p)
}

func (t *Tools) ClassifyPrompt(_ context.Context, _ *mcp.CallToolRequest, input ClassifyInput) (*mcp.CallToolResult, any, error) {
	if input.Prompt == "" {
		return toolError("Prompt is required"), nil, nil
	}
	res := classifier.Score(input.Prompt)
	return toolJSON(map[string]any{
		"type":             res.Type,
		"scores":           res.Scores,
		"intent":           classifier.AnalyzeIntent(input.Prompt),
		"creation_request": dispatch.IsProjectCreationRequest(input.Prompt),
	})
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
