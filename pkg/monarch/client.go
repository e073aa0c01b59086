package monarch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eshaffer321/monarch-mcp/internal/graphql"
	"github.com/eshaffer321/monarch-mcp/internal/transport"
	internalTypes "github.com/eshaffer321/monarch-mcp/internal/types"
	"github.com/getsentry/sentry-go"
)

const (
	// DefaultBaseURL is the default Monarch Money API base URL
	DefaultBaseURL = internalTypes.DefaultBaseURL

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout

	// TokenEnvVar names the environment variable the token is read from
	TokenEnvVar = internalTypes.TokenEnvVar
)

// Client is the main Monarch Money API client
type Client struct {
	Accounts     AccountService
	Transactions TransactionService
	Budgets      BudgetService
	Categories   CategoryService
	Portfolio    PortfolioService

	baseURL     string
	transport   Transport
	options     *ClientOptions
	queryLoader *graphql.QueryLoader
}

// ClientOptions configures the client
type ClientOptions struct {
	// Token authenticates every request. Required.
	Token string

	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Logger for debug logging
	Logger Logger

	// RetryConfig enables retries; nil means a failed call is final
	RetryConfig *internalTypes.RetryConfig

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger = internalTypes.Logger

// RetryConfig configures retry behavior
type RetryConfig = internalTypes.RetryConfig

// Transport handles HTTP/GraphQL communication
type Transport interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}, result interface{}) error
	SetAuth(token string)
}

// NewClient creates a new Monarch Money client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	if opts.Token == "" {
		return nil, &ConfigurationError{
			Setting: TokenEnvVar,
			Message: "an API token is required",
		}
	}

	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		initSentry(opts)
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	trans := transport.NewGraphQLTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
	})
	trans.SetAuth(opts.Token)

	c := &Client{
		baseURL:     opts.BaseURL,
		transport:   trans,
		options:     opts,
		queryLoader: graphql.NewQueryLoader(),
	}
	c.initServices()

	return c, nil
}

// NewClientWithToken creates a client with an auth token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

func initSentry(opts *ClientOptions) {
	sentryOpts := sentry.ClientOptions{}
	if opts.SentryOptions != nil {
		sentryOpts = *opts.SentryOptions
	}
	if opts.SentryDSN != "" {
		sentryOpts.Dsn = opts.SentryDSN
	}
	if sentryOpts.Environment == "" {
		sentryOpts.Environment = "production"
	}

	// A broken DSN must not keep the client from working
	if err := sentry.Init(sentryOpts); err != nil && opts.Logger != nil {
		opts.Logger.Error("Failed to initialize Sentry", "error", err)
	}
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Accounts = &accountService{client: c}
	c.Transactions = &transactionService{client: c}
	c.Budgets = &budgetService{client: c, now: time.Now}
	c.Categories = &categoryService{client: c}
	c.Portfolio = &portfolioService{client: c}
}

// BaseURL returns the API endpoint the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// loadQuery loads a GraphQL query from the embedded filesystem
func (c *Client) loadQuery(queryPath string) string {
	query, err := c.queryLoader.Load(queryPath)
	if err != nil {
		// Queries are embedded at build time
		panic(fmt.Sprintf("failed to load query %s: %v", queryPath, err))
	}
	return query
}

// executeGraphQL runs one query and classifies any failure
func (c *Client) executeGraphQL(ctx context.Context, query string, variables map[string]interface{}, result interface{}) error {
	operation := graphql.OperationName(query)

	start := time.Now()
	err := c.transport.Execute(ctx, query, variables, result)
	duration := time.Since(start)

	if err == nil {
		return nil
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("graphql.operation", operation)
		scope.SetContext("graphql", map[string]interface{}{
			"query":     query,
			"variables": variables,
			"duration":  duration.String(),
		})
		hub.CaptureException(err)
	})

	return classifyError(operation, err)
}

// Close flushes any pending Sentry events
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
