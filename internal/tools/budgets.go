package tools

import (
	"context"
	"fmt"

	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/shopspring/decimal"
)

// BudgetSummary is the data of get_budget_summary.
type BudgetSummary struct {
	Month          string            `json:"month"`
	TotalPlanned   float64           `json:"totalPlanned"`
	TotalActual    float64           `json:"totalActual"`
	TotalRemaining float64           `json:"totalRemaining"`
	Budgets        []*monarch.Budget `json:"budgets"`
}

func (e *Executor) getBudgetSummary(ctx context.Context, _ Arguments) (*Envelope, error) {
	budgets, err := e.client.Budgets.Current(ctx)
	if err != nil {
		return nil, err
	}

	planned, actual := decimal.Zero, decimal.Zero
	for _, b := range budgets {
		planned = planned.Add(decimal.NewFromFloat(b.Planned))
		actual = actual.Add(decimal.NewFromFloat(b.Actual))
	}

	summary := &BudgetSummary{
		Month:          e.now().Format("2006-01"),
		TotalPlanned:   planned.InexactFloat64(),
		TotalActual:    actual.InexactFloat64(),
		TotalRemaining: planned.Sub(actual).InexactFloat64(),
		Budgets:        budgets,
	}

	text := fmt.Sprintf("Budget for %s: %s planned, %s spent, %s remaining across %s",
		summary.Month,
		formatMoney(summary.TotalPlanned), formatMoney(summary.TotalActual), formatMoney(summary.TotalRemaining),
		plural(len(budgets), "line"))
	return success(summary, text), nil
}

func (e *Executor) getCategories(ctx context.Context, _ Arguments) (*Envelope, error) {
	categories, err := e.client.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return success(categories, "Found "+plural(len(categories), "category", "categories")), nil
}
