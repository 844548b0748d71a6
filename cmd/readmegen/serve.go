package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	readmegenmcp "github.com/gorewood/readmegen/internal/mcp"
	"github.com/gorewood/readmegen/internal/render"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run readmegen as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "readmegen": {
        "command": "readmegen",
        "args": ["serve"]
      }
    }
  }

Available tools: display_context, render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			logger := newLogger(cmd)

			cfg, err := loadSettings(cmd, settingsOverrides{})
			if err != nil {
				return fail(printer, err)
			}
			mode, err := render.ParseMode(cfg.Mode)
			if err != nil {
				return fail(printer, err)
			}
			loc, err := cfg.Location()
			if err != nil {
				return fail(printer, err)
			}

			factory := func(m render.Mode) *render.Renderer {
				return render.New(newDeps(), m, loc, logger)
			}
			defaults := readmegenmcp.Defaults{Template: cfg.Template, Output: cfg.Output, Mode: mode}

			logger.Debug("serving MCP over stdio", "template", cfg.Template, "output", cfg.Output, "mode", mode)
			server := readmegenmcp.NewServer(buildVersion(), defaults, factory)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
