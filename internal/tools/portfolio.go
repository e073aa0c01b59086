package tools

import (
	"context"
	"fmt"
)

func (e *Executor) getPortfolio(ctx context.Context, args Arguments) (*Envelope, error) {
	start, end, err := dateRange(args, false)
	if err != nil {
		return nil, err
	}

	portfolio, err := e.client.Portfolio.Get(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := fmt.Sprintf("Portfolio with %s, total value %s",
		plural(len(portfolio.Holdings), "holding"), formatMoney(portfolio.TotalValue()))
	return success(portfolio, summary), nil
}
