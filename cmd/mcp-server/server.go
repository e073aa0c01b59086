package main

import (
	"context"
	"encoding/json"

	"github.com/eshaffer321/monarch-mcp/internal/logger"
	"github.com/eshaffer321/monarch-mcp/internal/tools"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	serverName    = "monarch-money"
	serverVersion = "1.0.0"
)

func newServer(executor *tools.Executor, log zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	registerTools(server, executor, log)
	server.AddReceivingMiddleware(unknownToolMiddleware(executor, log))
	return server
}

// unknownToolMiddleware routes calls for names outside the catalog through
// callHandler, so they fail as error results rather than protocol errors.
func unknownToolMiddleware(executor *tools.Executor, log zerolog.Logger) mcp.Middleware {
	known := make(map[string]bool)
	for _, def := range executor.List() {
		known[def.Name] = true
	}
	handler := callHandler(executor, log)

	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method != "tools/call" {
				return next(ctx, method, req)
			}
			call, ok := req.(*mcp.CallToolRequest)
			if !ok || call.Params == nil || known[call.Params.Name] {
				return next(ctx, method, req)
			}
			return handler(ctx, call)
		}
	}
}

// registerTools exposes every catalog entry as an MCP tool.
func registerTools(server *mcp.Server, executor *tools.Executor, log zerolog.Logger) {
	handler := callHandler(executor, log)

	for _, def := range executor.List() {
		server.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, handler)
	}
}

// callHandler runs a tool call through the executor. Failures become
// error-flagged text results and never reach the transport as errors.
func callHandler(executor *tools.Executor, log zerolog.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callLog := log.With().Str("call_id", uuid.NewString()).Logger()
		ctx = logger.WithContext(ctx, callLog)

		name := req.Params.Name

		args, err := tools.ParseArguments(req.Params.Arguments)
		if err != nil {
			callLog.Warn().Err(err).Str("tool", name).Msg("Rejected tool arguments")
			return errorResult(err), nil
		}

		envelope, err := executor.Execute(ctx, name, args)
		if err != nil {
			callLog.Error().Err(err).Str("tool", name).Msg("Tool call failed")
			return errorResult(err), nil
		}

		text, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return errorResult(errors.Wrap(err, "failed to encode result")), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(text)}},
		}, nil
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}
}
