// Package mcpserver exposes the chat core as MCP tools.
package mcpserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// New creates an MCP server with the chat tools registered.
func New(t *Tools, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "archbot-mcp",
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "chat",
		Description: "Send a message to the project architect. Requests to create or build something produce and save a project blueprint",
	}, t.ChatTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_projects",
		Description: "List saved project blueprints, newest first",
	}, t.ListProjects)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_project",
		Description: "Get one saved project blueprint with its features, technologies and components",
	}, t.GetProject)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "classify_prompt",
		Description: "Show how a prompt would be classified without creating anything",
	}, t.ClassifyPrompt)

	return srv
}
