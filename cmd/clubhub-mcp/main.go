package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "clubhub/internal/adapters/mcp"
	"clubhub/internal/bootstrap"
	"clubhub/internal/config"
	"clubhub/internal/observability"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the config file")
	flag.Parse()

	// stdout carries the protocol
	logger := observability.InitLogger("clubhub-mcp", os.Stderr, os.Getenv(config.EnvLogLevel))

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger = observability.InitLogger("clubhub-mcp", os.Stderr, cfg.LogLevel)

	ctx := context.Background()
	rt, err := bootstrap.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open deck")
	}
	defer rt.Close()

	if _, err := rt.Watch(ctx); err != nil {
		logger.Warn().Err(err).Msg("catalog hot reload disabled")
	}

	mcpServer := server.NewMCPServer(
		"clubhub-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, rt.Session, rt.Store)
	mcpadapter.RegisterWriteTools(mcpServer, rt.Session)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error().Err(err).Msg("clubhub-mcp stopped")
		rt.Close()
		os.Exit(1)
	}
}
