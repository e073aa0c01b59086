package monarch

import (
	"context"
	"time"
)

// AccountService handles all account-related operations
type AccountService interface {
	// List retrieves all accounts
	List(ctx context.Context) ([]*Account, error)

	// Get retrieves a single account by ID
	Get(ctx context.Context, accountID string) (*Account, error)

	// Snapshots retrieves the balance history of one account. Zero dates
	// leave the range open on that side.
	Snapshots(ctx context.Context, accountID string, startDate, endDate time.Time) ([]*Snapshot, error)
}

// TransactionService handles transaction queries
type TransactionService interface {
	// List retrieves transactions matching the filter, in service order
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)

	// Query returns a transaction query builder
	Query() TransactionQueryBuilder
}

// TransactionQueryBuilder builds transaction queries
type TransactionQueryBuilder interface {
	WithAccount(accountID string) TransactionQueryBuilder
	From(start time.Time) TransactionQueryBuilder
	To(end time.Time) TransactionQueryBuilder
	Between(start, end time.Time) TransactionQueryBuilder
	Limit(limit int) TransactionQueryBuilder
	Offset(offset int) TransactionQueryBuilder

	// Filter returns the filter built so far
	Filter() *TransactionFilter

	// Execute runs the query
	Execute(ctx context.Context) ([]*Transaction, error)
}

// BudgetService handles budget operations
type BudgetService interface {
	// Current retrieves the budget lines of the current calendar month
	Current(ctx context.Context) ([]*Budget, error)

	// List retrieves budget lines for a date range
	List(ctx context.Context, startDate, endDate time.Time) ([]*Budget, error)
}

// CategoryService handles transaction categories
type CategoryService interface {
	// List retrieves all categories
	List(ctx context.Context) ([]*Category, error)
}

// PortfolioService handles investment data
type PortfolioService interface {
	// Get retrieves portfolio performance and holdings
	Get(ctx context.Context, startDate, endDate time.Time) (*Portfolio, error)
}
