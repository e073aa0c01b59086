package monarch

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves all accounts
func (s *accountService) List(ctx context.Context) ([]*Account, error) {
	query := s.client.loadQuery("accounts/list.graphql")

	var result struct {
		Accounts []*Account `json:"accounts"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	return orEmpty(result.Accounts), nil
}

// Get retrieves a single account by ID
func (s *accountService) Get(ctx context.Context, accountID string) (*Account, error) {
	accounts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, account := range accounts {
		if account.ID == accountID {
			return account, nil
		}
	}

	return nil, &NotFoundError{Resource: "account", ID: accountID}
}

// Snapshots retrieves the balance history of one account
func (s *accountService) Snapshots(ctx context.Context, accountID string, startDate, endDate time.Time) ([]*Snapshot, error) {
	query := s.client.loadQuery("accounts/snapshots.graphql")

	variables := map[string]interface{}{
		"accountId": accountID,
		"startDate": formatOptionalDate(startDate),
		"endDate":   formatOptionalDate(endDate),
	}

	var result struct {
		SnapshotsForAccount []*Snapshot `json:"snapshotsForAccount"`
	}

	if err := s.client.executeGraphQL(ctx, query, variables, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get account snapshots")
	}

	return orEmpty(result.SnapshotsForAccount), nil
}

// orEmpty normalizes a missing collection to an empty one
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
