package tools

import (
	"encoding/json"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
)

// Tool names. These are part of the protocol surface and must not change.
const (
	GetAccounts           = "get_accounts"
	GetAccountBalance     = "get_account_balance"
	GetTransactions       = "get_transactions"
	GetSpendingByCategory = "get_spending_by_category"
	GetBudgetSummary      = "get_budget_summary"
	SearchTransactions    = "search_transactions"
	GetNetWorth           = "get_net_worth"
	GetMonthlySummary     = "get_monthly_summary"
	GetCategories         = "get_categories"
	GetAccountSnapshots   = "get_account_snapshots"
	GetPortfolio          = "get_portfolio"
)

const (
	// DefaultLimit is the result size used when a call sets no limit
	DefaultLimit = 50

	// MaxTransactionLimit caps get_transactions
	MaxTransactionLimit = 500

	// SearchFetchLimit is how many transactions a search scans
	SearchFetchLimit = 1000

	// AggregateFetchLimit is how many transactions range aggregations scan
	AggregateFetchLimit = 5000
)

// Definition describes one tool: its name, what it does and the JSON
// schema of its arguments.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// Catalog returns the static tool catalog in display order.
func Catalog() []Definition {
	return []Definition{
		{
			Name:        GetAccounts,
			Description: "Get all accounts with their current balances, types, and institution information.",
			InputSchema: object(nil),
		},
		{
			Name:        GetAccountBalance,
			Description: "Get the current balance of a single account by its ID.",
			InputSchema: object(map[string]*jsonschema.Schema{
				"accountId": str("The account ID"),
			}, "accountId"),
		},
		{
			Name:        GetTransactions,
			Description: "Get transactions with optional filters for account and date range. Returns date, amount, merchant, category, and notes.",
			InputSchema: object(map[string]*jsonschema.Schema{
				"accountId": str("Only return transactions of this account (optional)"),
				"limit":     integer("Maximum number of transactions to return", DefaultLimit, MaxTransactionLimit),
				"startDate": date("Start date in YYYY-MM-DD format (optional)"),
				"endDate":   date("End date in YYYY-MM-DD format (optional)"),
			}),
		},
		{
			Name:        GetSpendingByCategory,
			Description: "Get total spending grouped by category for a date range, sorted from the largest category down.",
			InputSchema: object(map[string]*jsonschema.Schema{
				"startDate": date("Start date in YYYY-MM-DD format"),
				"endDate":   date("End date in YYYY-MM-DD format"),
			}, "startDate", "endDate"),
		},
		{
			Name:        GetBudgetSummary,
			Description: "Get the budget for the current month with planned, actual, and remaining amounts per category.",
			InputSchema: object(nil),
		},
		{
			Name:        SearchTransactions,
			Description: "Search transactions by text in the name, notes, or merchant, optionally bounded by absolute amount.",
			InputSchema: object(map[string]*jsonschema.Schema{
				"query":     str("Case-insensitive text to look for (optional)"),
				"minAmount": number("Minimum absolute amount, inclusive (optional)"),
				"maxAmount": number("Maximum absolute amount, inclusive (optional)"),
				"limit":     integer("Maximum number of results to return", DefaultLimit, 0),
			}),
		},
		{
			Name:        GetNetWorth,
			Description: "Calculate net worth from all accounts included in net worth, with the asset and liability breakdown.",
			InputSchema: object(nil),
		},
		{
			Name:        GetMonthlySummary,
			Description: "Get income, expenses, and net savings for one calendar month.",
			InputSchema: object(map[string]*jsonschema.Schema{
				"year":  integer("Four digit year, e.g. 2024", 0, 0),
				"month": bounded(integer("Month number, 1 to 12", 0, 12), 1),
			}, "year", "month"),
		},
		{
			Name:        GetCategories,
			Description: "Get all transaction categories with their groups.",
			InputSchema: object(nil),
		},
		{
			Name:        GetAccountSnapshots,
			Description: "Get the balance history of one account.",
			InputSchema: object(map[string]*jsonschema.Schema{
				"accountId": str("The account ID"),
				"startDate": date("Start date in YYYY-MM-DD format (optional)"),
				"endDate":   date("End date in YYYY-MM-DD format (optional)"),
			}, "accountId"),
		},
		{
			Name:        GetPortfolio,
			Description: "Get investment portfolio performance and holdings grouped by security.",
			InputSchema: object(map[string]*jsonschema.Schema{
				"startDate": date("Start date of the performance window in YYYY-MM-DD format (optional)"),
				"endDate":   date("End date of the performance window in YYYY-MM-DD format (optional)"),
			}),
		},
	}
}

func object(properties map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	if properties == nil {
		properties = map[string]*jsonschema.Schema{}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func str(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func date(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "date", Description: description}
}

func number(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: description}
}

// integer builds an integer schema; a zero def or max is left unset.
func integer(description string, def, max int) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "integer", Description: description}
	if def != 0 {
		s.Default = json.RawMessage(strconv.Itoa(def))
	}
	if max != 0 {
		m := float64(max)
		s.Maximum = &m
	}
	return s
}

func bounded(s *jsonschema.Schema, min int) *jsonschema.Schema {
	m := float64(min)
	s.Minimum = &m
	return s
}
