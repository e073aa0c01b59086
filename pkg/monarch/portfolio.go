package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// portfolioService implements the PortfolioService interface
type portfolioService struct {
	client *Client
}

// Get retrieves portfolio performance and holdings
func (s *portfolioService) Get(ctx context.Context, startDate, endDate time.Time) (*Portfolio, error) {
	query := s.client.loadQuery("portfolio/get.graphql")

	input := map[string]interface{}{}
	if !startDate.IsZero() {
		input["startDate"] = startDate.Format(DateLayout)
	}
	if !endDate.IsZero() {
		input["endDate"] = endDate.Format(DateLayout)
	}

	variables := map[string]interface{}{
		"portfolioInput": input,
	}

	var result struct {
		Portfolio *struct {
			Performance       *PortfolioPerformance `json:"performance"`
			AggregateHoldings *struct {
				Edges []*struct {
					Node *AggregateHolding `json:"node"`
				} `json:"edges"`
			} `json:"aggregateHoldings"`
		} `json:"portfolio"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get portfolio")
	}

	portfolio := &Portfolio{Holdings: []*AggregateHolding{}}
	if result.Portfolio == nil {
		return portfolio, nil
	}

	if perf := result.Portfolio.Performance; perf != nil {
		perf.HistoricalChart = orEmpty(perf.HistoricalChart)
		perf.Benchmarks = orEmpty(perf.Benchmarks)
		portfolio.Performance = perf
	}

	if holdings := result.Portfolio.AggregateHoldings; holdings != nil {
		for _, edge := range holdings.Edges {
			if edge == nil || edge.Node == nil {
				continue
			}
			edge.Node.Holdings = orEmpty(edge.Node.Holdings)
			portfolio.Holdings = append(portfolio.Holdings, edge.Node)
		}
	}

	return portfolio, nil
}

// TotalValue returns the reported total value, or the sum of holding
// values when no performance block was returned.
func (p *Portfolio) TotalValue() float64 {
	if p.Performance != nil {
		return p.Performance.TotalValue
	}
	var total float64
	for _, h := range p.Holdings {
		total += h.TotalValue
	}
	return total
}
