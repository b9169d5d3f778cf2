package cmd

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/thellimist/apigen/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the generate_project tool over MCP stdio",
	Long: `Run an MCP server on stdin/stdout exposing one tool, generate_project,
which takes a JSON spec list and an optional parentName.

Logs go to stderr so they never interleave with protocol messages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := mcpserver.New(mcpserver.Config{
			Generator:     newGenerator(""),
			DefaultParent: cfg.Generator.ParentName,
			Version:       appVersion,
			Logger:        logger,
		})
		logger.Info("serving MCP on stdio", "output_dir", cfg.Generator.OutputDir)
		return server.ServeStdio(s)
	},
}
