// Package mcp exposes readmegen over the Model Context Protocol so agents
// can ask for today's display values or re-render the README.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/readmegen/internal/render"
)

// RendererFactory builds a renderer for a mode.
type RendererFactory func(mode render.Mode) *render.Renderer

// Defaults are the paths and mode used when a tool call omits them.
type Defaults struct {
	Template string
	Output   string
	Mode     render.Mode
}

// NewServer creates an MCP server with the readmegen tools registered.
func NewServer(version string, defaults Defaults, factory RendererFactory) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "readmegen",
		Version: version,
	}, nil)
	registerTools(server, defaults, factory)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

func registerTools(server *mcp.Server, defaults Defaults, factory RendererFactory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "display_context",
		Description: "Compute the weekday, greeting and emoji for today or a given date without touching any files.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, handleDisplayContext(defaults, factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render the README template and overwrite the output file. Set dry_run to return the text instead of writing it.",
		Annotations: &mcp.ToolAnnotations{
			IdempotentHint:  true,
			DestructiveHint: boolPtr(true),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleRender(defaults, factory))
}
