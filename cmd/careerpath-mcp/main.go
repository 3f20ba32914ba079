package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"careerpath/internal/app"
	mcpadapter "careerpath/internal/adapters/mcp"
	"careerpath/internal/config"
	"careerpath/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	offlineFlag := flag.Bool("offline", false, "never contact the backend")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "careerpath-mcp: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to stderr as JSON
	logger, err := logging.New(cfg.LogLevel, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "careerpath-mcp: %v\n", err)
		os.Exit(1)
	}

	services, err := app.Open(context.Background(), cfg, logger, app.Options{Offline: *offlineFlag})
	if err != nil {
		logger.Fatal("failed to open services", zap.Error(err))
	}
	defer services.Close()

	mcpServer := server.NewMCPServer(
		"careerpath-mcp",
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

	mcpadapter.RegisterTools(mcpServer, mcpadapter.Services{
		Resolver: services.Resolver,
		Progress: services.Progress,
		Domains:  services.Domains,
	})

	logger.Info("serving MCP over stdio", zap.String("db", services.DB.Path()))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", zap.Error(err))
		services.Close()
		os.Exit(1)
	}
}
