package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
	now    func() time.Time
}

// Current retrieves the budget lines of the current calendar month
func (s *budgetService) Current(ctx context.Context) ([]*Budget, error) {
	now := time.Now()
	if s.now != nil {
		now = s.now()
	}

	start, end := MonthRange(now.Year(), now.Month())
	return s.List(ctx, start, end)
}

// List retrieves budget lines for a date range
func (s *budgetService) List(ctx context.Context, startDate, endDate time.Time) ([]*Budget, error) {
	query := s.client.loadQuery("budgets/list.graphql")

	variables := map[string]interface{}{
		"startDate": startDate.Format(DateLayout),
		"endDate":   endDate.Format(DateLayout),
	}

	var result struct {
		BudgetData *budgetData `json:"budgetData"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budgets")
	}

	return flattenBudgets(result.BudgetData), nil
}

// flattenBudgets produces one Budget line per category and month
func flattenBudgets(data *budgetData) []*Budget {
	budgets := []*Budget{}
	if data == nil {
		return budgets
	}

	for _, entry := range data.MonthlyAmountsByCategory {
		if entry == nil {
			continue
		}

		var categoryID, categoryName, groupName string
		if entry.Category != nil {
			categoryID = entry.Category.ID
			categoryName = entry.Category.Name
			if entry.Category.Group != nil {
				groupName = entry.Category.Group.Name
			}
		}

		for _, amount := range entry.MonthlyAmounts {
			if amount == nil {
				continue
			}

			planned := decimal.NewFromFloat(amount.PlannedCashFlowAmount)
			actual := decimal.NewFromFloat(amount.ActualAmount)

			budget := &Budget{
				CategoryID:    categoryID,
				CategoryName:  categoryName,
				CategoryGroup: groupName,
				Month:         amount.Month,
				Planned:       planned.InexactFloat64(),
				Actual:        actual.InexactFloat64(),
				Remaining:     planned.Sub(actual).InexactFloat64(),
				RolloverType:  amount.RolloverType,
			}
			if amount.PreviousMonthRolloverAmount != nil {
				budget.RolloverAmount = *amount.PreviousMonthRolloverAmount
			}

			budgets = append(budgets, budget)
		}
	}

	return budgets
}
