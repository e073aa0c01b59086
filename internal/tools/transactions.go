package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
)

// TransactionsResult is the data of get_transactions and
// search_transactions.
type TransactionsResult struct {
	Count        int                    `json:"count"`
	Transactions []*monarch.Transaction `json:"transactions"`
}

func (e *Executor) getTransactions(ctx context.Context, args Arguments) (*Envelope, error) {
	accountID, err := args.String("accountId")
	if err != nil {
		return nil, err
	}
	limit, err := args.Int("limit", DefaultLimit)
	if err != nil {
		return nil, err
	}
	start, end, err := dateRange(args, false)
	if err != nil {
		return nil, err
	}

	txns, err := e.client.Transactions.Query().
		WithAccount(accountID).
		From(start).
		To(end).
		Limit(clampLimit(limit, DefaultLimit, MaxTransactionLimit)).
		Execute(ctx)
	if err != nil {
		return nil, err
	}

	result := &TransactionsResult{Count: len(txns), Transactions: txns}
	return success(result, "Found "+plural(len(txns), "transaction")), nil
}

func (e *Executor) searchTransactions(ctx context.Context, args Arguments) (*Envelope, error) {
	query, err := args.Text("query")
	if err != nil {
		return nil, err
	}
	minAmount, err := args.Float("minAmount")
	if err != nil {
		return nil, err
	}
	maxAmount, err := args.Float("maxAmount")
	if err != nil {
		return nil, err
	}
	limit, err := args.Int("limit", DefaultLimit)
	if err != nil {
		return nil, err
	}

	txns, err := e.client.Transactions.List(ctx, &monarch.TransactionFilter{Limit: SearchFetchLimit})
	if err != nil {
		return nil, err
	}

	matches := FilterTransactions(txns, SearchCriteria{
		Query:     query,
		MinAmount: minAmount,
		MaxAmount: maxAmount,
		Limit:     limit,
	})

	summary := "Found " + plural(len(matches), "matching transaction")
	if query != "" {
		summary += fmt.Sprintf(" for %q", query)
	}
	return success(&TransactionsResult{Count: len(matches), Transactions: matches}, summary), nil
}

func (e *Executor) getSpendingByCategory(ctx context.Context, args Arguments) (*Envelope, error) {
	start, end, err := dateRange(args, true)
	if err != nil {
		return nil, err
	}

	txns, err := e.client.Transactions.List(ctx, &monarch.TransactionFilter{
		Limit:     AggregateFetchLimit,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	report := SummarizeSpending(txns)
	report.StartDate = start.Format(monarch.DateLayout)
	report.EndDate = end.Format(monarch.DateLayout)

	summary := fmt.Sprintf("Total spending %s across %s",
		formatMoney(report.TotalSpending), plural(len(report.Categories), "category", "categories"))
	return success(report, summary), nil
}

func (e *Executor) getMonthlySummary(ctx context.Context, args Arguments) (*Envelope, error) {
	year, err := args.RequireInt("year")
	if err != nil {
		return nil, err
	}
	month, err := args.RequireInt("month")
	if err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, &monarch.ValidationError{Field: "month", Message: "must be between 1 and 12", Value: month}
	}
	if year < 1 || year > 9999 {
		return nil, &monarch.ValidationError{Field: "year", Message: "must be between 1 and 9999", Value: year}
	}

	start, end := monarch.MonthRange(year, time.Month(month))
	txns, err := e.client.Transactions.List(ctx, &monarch.TransactionFilter{
		Limit:     AggregateFetchLimit,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	result := SummarizeMonth(year, time.Month(month), txns)
	summary := fmt.Sprintf("%s %d: income %s, expenses %s, net savings %s",
		time.Month(month), year,
		formatMoney(result.TotalIncome), formatMoney(result.TotalExpenses), formatMoney(result.NetSavings))
	return success(result, summary), nil
}

// dateRange reads startDate and endDate. A range with both ends set must
// not end before it starts.
func dateRange(args Arguments, required bool) (time.Time, time.Time, error) {
	read := args.Date
	if required {
		read = args.RequireDate
	}

	start, err := read("startDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := read("endDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, &monarch.ValidationError{
			Field:   "endDate",
			Message: "must not be before startDate",
			Value:   end.Format(monarch.DateLayout),
		}
	}
	return start, end, nil
}
