// Package mcpserver exposes project generation as an MCP tool.
package mcpserver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/thellimist/apigen/internal/apispec"
	"github.com/thellimist/apigen/internal/apperr"
	"github.com/thellimist/apigen/internal/logx"
	"github.com/thellimist/apigen/internal/metrics"
	"github.com/thellimist/apigen/internal/project"
)

// ToolName is the name clients call.
const ToolName = "generate_project"

// Generator creates a project from specs.
type Generator interface {
	Generate(ctx context.Context, specs []apispec.EndpointSpec, baseName string) (*project.Result, error)
}

// Config holds the tool's collaborators.
type Config struct {
	Generator     Generator
	Metrics       *metrics.Metrics
	DefaultParent string // Used when the call omits parentName
	Version       string
	Logger        *slog.Logger
}

// New builds an MCP server with the generate_project tool registered.
func New(cfg Config) *server.MCPServer {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	s := server.NewMCPServer("apigen", version)
	s.AddTool(
		mcp.NewTool(ToolName,
			mcp.WithDescription("Generates a Spring Boot skeleton project from a list of endpoint specs and returns its path"),
			mcp.WithString("specs",
				mcp.Required(),
				mcp.Description(`JSON array of endpoint specs, e.g. [{"apiName":"getUser","parameters":[{"name":"id","type":"Long"}],"returnType":"UserDto","method":"GET"}]`),
			),
			mcp.WithString("parentName", mcp.Description("Base name for the project directory")),
		),
		NewHandler(cfg),
	)
	return s
}

// NewHandler returns the generate_project tool handler. Failures are
// reported as tool error results so the client sees the message.
func NewHandler(cfg Config) server.ToolHandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = logx.Default()
	}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := generate(ctx, cfg, request)
		cfg.Metrics.ObserveGeneration(metrics.SourceMCP, apperr.Kind(err), endpointCount(res))
		if err != nil {
			logger.Warn("mcp generation failed", "error", err, "kind", apperr.Kind(err))
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res.Message()), nil
	}
}

func generate(ctx context.Context, cfg Config, request mcp.CallToolRequest) (*project.Result, error) {
	raw := request.GetString("specs", "")
	if strings.TrimSpace(raw) == "" {
		return nil, apperr.InvalidInput("specs is required")
	}
	specs, err := apispec.Decode(strings.NewReader(raw), apispec.FormatJSON)
	if err != nil {
		return nil, err
	}
	parent := request.GetString("parentName", "")
	if strings.TrimSpace(parent) == "" {
		parent = cfg.DefaultParent
	}
	return cfg.Generator.Generate(ctx, specs, parent)
}

func endpointCount(res *project.Result) int {
	if res == nil {
		return 0
	}
	return res.Endpoints
}
