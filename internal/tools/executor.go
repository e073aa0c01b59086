package tools

import (
	"context"
	"time"

	"github.com/eshaffer321/monarch-mcp/internal/logger"
	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/rs/zerolog"
)

// Handler runs one tool against the API client.
type Handler func(ctx context.Context, args Arguments) (*Envelope, error)

// Executor resolves tool names against the catalog and runs them.
type Executor struct {
	client   *monarch.Client
	log      zerolog.Logger
	now      func() time.Time
	catalog  []Definition
	handlers map[string]Handler
}

// NewExecutor binds every catalog entry to its handler.
func NewExecutor(client *monarch.Client, log zerolog.Logger) *Executor {
	e := &Executor{
		client:  client,
		log:     log,
		now:     time.Now,
		catalog: Catalog(),
	}

	e.handlers = map[string]Handler{
		GetAccounts:           e.getAccounts,
		GetAccountBalance:     e.getAccountBalance,
		GetTransactions:       e.getTransactions,
		GetSpendingByCategory: e.getSpendingByCategory,
		GetBudgetSummary:      e.getBudgetSummary,
		SearchTransactions:    e.searchTransactions,
		GetNetWorth:           e.getNetWorth,
		GetMonthlySummary:     e.getMonthlySummary,
		GetCategories:         e.getCategories,
		GetAccountSnapshots:   e.getAccountSnapshots,
		GetPortfolio:          e.getPortfolio,
	}

	return e
}

// List returns the tool catalog.
func (e *Executor) List() []Definition {
	out := make([]Definition, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// Execute runs the named tool. An unknown name yields *UnknownToolError;
// any failure of a known tool is returned as *ToolExecutionError.
func (e *Executor) Execute(ctx context.Context, name string, args Arguments) (*Envelope, error) {
	handler, found := e.handlers[name]
	if !found {
		return nil, &UnknownToolError{Name: name}
	}
	if args == nil {
		args = Arguments{}
	}

	log := e.logger(ctx).With().Str("tool", name).Logger()
	log.Debug().Interface("arguments", args).Msg("Executing tool")

	start := time.Now()
	envelope, err := handler(ctx, args)
	duration := time.Since(start)

	if err != nil {
		log.Warn().Err(err).Dur("duration", duration).Msg("Tool failed")
		return nil, &ToolExecutionError{Tool: name, Err: err}
	}

	log.Info().Dur("duration", duration).Str("summary", envelope.Summary).Msg("Tool completed")
	return envelope, nil
}

func (e *Executor) logger(ctx context.Context) zerolog.Logger {
	if l, found := ctx.Value(logger.LoggerKey).(zerolog.Logger); found {
		return l
	}
	return e.log
}
