package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/eshaffer321/monarch-mcp/internal/config"
	"github.com/eshaffer321/monarch-mcp/internal/logger"
	"github.com/eshaffer321/monarch-mcp/internal/tools"
	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	os.Exit(run())
}

// run starts the server and returns the process exit code. Stdout carries
// the protocol stream, so every log line goes to stderr.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(os.Stderr, "info", "json")
		log.Error().Err(err).Msg("Invalid configuration")
		return 1
	}

	log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	clientLog := logger.NewKV(log.With().Str("component", "monarch").Logger())
	client, err := monarch.NewClient(cfg.ClientOptions(clientLog))
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Monarch Money client")
		return 1
	}
	defer client.Close()

	executor := tools.NewExecutor(client, log)
	server := newServer(executor, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("base_url", client.BaseURL()).
		Int("tools", len(executor.List())).
		Msg("Starting MCP server on stdio")

	err = server.Run(ctx, &mcp.StdioTransport{})
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		log.Info().Msg("MCP server stopped")
		return 0
	default:
		log.Error().Err(err).Msg("MCP server failed")
		return 1
	}
}
