package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// DefaultTransactionLimit is the page size used when a filter sets none
const DefaultTransactionLimit = 100

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// Query returns a transaction query builder
func (s *transactionService) Query() TransactionQueryBuilder {
	return &transactionQueryBuilder{
		service: s,
		filter: TransactionFilter{
			Limit: DefaultTransactionLimit,
		},
	}
}

// List retrieves transactions matching the filter
func (s *transactionService) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	if filter == nil {
		filter = &TransactionFilter{}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := s.client.loadQuery("transactions/list.graphql")

	variables := map[string]interface{}{
		"offset":  offset,
		"limit":   limit,
		"filters": transactionFilters(filter),
		"orderBy": "date",
	}

	var result struct {
		AllTransactions struct {
			TotalCount int            `json:"totalCount"`
			Results    []*Transaction `json:"results"`
		} `json:"allTransactions"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transactions")
	}

	return orEmpty(result.AllTransactions.Results), nil
}

// transactionFilters builds the TransactionFilterInput variable
func transactionFilters(filter *TransactionFilter) map[string]interface{} {
	filters := map[string]interface{}{}

	if filter.AccountID != "" {
		filters["accounts"] = []string{filter.AccountID}
	}
	if !filter.StartDate.IsZero() {
		filters["startDate"] = filter.StartDate.Format(DateLayout)
	}
	if !filter.EndDate.IsZero() {
		filters["endDate"] = filter.EndDate.Format(DateLayout)
	}

	return filters
}

// transactionQueryBuilder implements TransactionQueryBuilder
type transactionQueryBuilder struct {
	service *transactionService
	filter  TransactionFilter
}

// WithAccount restricts results to one account
func (b *transactionQueryBuilder) WithAccount(accountID string) TransactionQueryBuilder {
	b.filter.AccountID = accountID
	return b
}

// From sets the inclusive start date
func (b *transactionQueryBuilder) From(start time.Time) TransactionQueryBuilder {
	b.filter.StartDate = start
	return b
}

// To sets the inclusive end date
func (b *transactionQueryBuilder) To(end time.Time) TransactionQueryBuilder {
	b.filter.EndDate = end
	return b
}

// Between sets date range filter
func (b *transactionQueryBuilder) Between(start, end time.Time) TransactionQueryBuilder {
	return b.From(start).To(end)
}

// Limit sets result limit
func (b *transactionQueryBuilder) Limit(limit int) TransactionQueryBuilder {
	b.filter.Limit = limit
	return b
}

// Offset sets result offset
func (b *transactionQueryBuilder) Offset(offset int) TransactionQueryBuilder {
	b.filter.Offset = offset
	return b
}

// Filter returns a copy of the filter built so far
func (b *transactionQueryBuilder) Filter() *TransactionFilter {
	filter := b.filter
	return &filter
}

// Execute runs the query
func (b *transactionQueryBuilder) Execute(ctx context.Context) ([]*Transaction, error) {
	return b.service.List(ctx, b.Filter())
}
