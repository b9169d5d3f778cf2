package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/thellimist/apigen/internal/httpapi"
	"github.com/thellimist/apigen/internal/mcpserver"
	"github.com/thellimist/apigen/internal/metrics"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generator HTTP API",
	Long: `Serve the generator over HTTP:

  POST /api/generator/fromJson?parentName=<base>   JSON spec list in the body
  POST /api/generator/fromFile                     multipart field "file"
  GET  /healthz
  GET  /metrics
       /mcp                                        MCP streamable HTTP`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := flagAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	gen := newGenerator("")
	m := metrics.New()
	mcpSrv := mcpserver.New(mcpserver.Config{
		Generator:     gen,
		Metrics:       m,
		DefaultParent: cfg.Generator.ParentName,
		Version:       appVersion,
		Logger:        logger,
	})

	api := httpapi.New(httpapi.Config{
		Generator:      gen,
		Metrics:        m,
		MCP:            server.NewStreamableHTTPServer(mcpSrv),
		DefaultParent:  cfg.Generator.ParentName,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		Logger:         logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("generator API ready", "addr", addr, "output_dir", cfg.Generator.OutputDir)
	return httpapi.ListenAndServe(ctx, addr, api, cfg.Server.ReadTimeout, logger)
}
