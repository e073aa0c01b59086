package tools

import (
	"context"
	"fmt"

	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
)

// BalanceResult is the data of get_account_balance.
type BalanceResult struct {
	AccountID      string   `json:"accountId"`
	DisplayName    string   `json:"displayName"`
	CurrentBalance float64  `json:"currentBalance"`
	DisplayBalance *float64 `json:"displayBalance,omitempty"`
	Type           string   `json:"type,omitempty"`
	Institution    string   `json:"institution,omitempty"`
	LastUpdatedAt  string   `json:"lastUpdatedAt,omitempty"`
}

// SnapshotsResult is the data of get_account_snapshots.
type SnapshotsResult struct {
	AccountID string              `json:"accountId"`
	Snapshots []*monarch.Snapshot `json:"snapshots"`
}

func (e *Executor) getAccounts(ctx context.Context, _ Arguments) (*Envelope, error) {
	accounts, err := e.client.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	return success(accounts, "Found "+plural(len(accounts), "account")), nil
}

func (e *Executor) getAccountBalance(ctx context.Context, args Arguments) (*Envelope, error) {
	accountID, err := args.RequireString("accountId")
	if err != nil {
		return nil, err
	}

	account, err := e.client.Accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result := &BalanceResult{
		AccountID:      account.ID,
		DisplayName:    account.DisplayName,
		CurrentBalance: account.CurrentBalance,
		DisplayBalance: account.DisplayBalance,
		Institution:    account.InstitutionName(),
		LastUpdatedAt:  account.DisplayLastUpdatedAt,
	}
	if account.Type != nil {
		result.Type = account.Type.Display
	}

	return success(result, fmt.Sprintf("%s balance: %s", account.DisplayName, formatMoney(account.CurrentBalance))), nil
}

func (e *Executor) getAccountSnapshots(ctx context.Context, args Arguments) (*Envelope, error) {
	accountID, err := args.RequireString("accountId")
	if err != nil {
		return nil, err
	}
	start, end, err := dateRange(args, false)
	if err != nil {
		return nil, err
	}

	snapshots, err := e.client.Accounts.Snapshots(ctx, accountID, start, end)
	if err != nil {
		return nil, err
	}

	result := &SnapshotsResult{AccountID: accountID, Snapshots: snapshots}
	return success(result, fmt.Sprintf("Found %s for account %s", plural(len(snapshots), "snapshot"), accountID)), nil
}

func (e *Executor) getNetWorth(ctx context.Context, _ Arguments) (*Envelope, error) {
	accounts, err := e.client.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	result := ComputeNetWorth(accounts)
	summary := fmt.Sprintf("Net worth: %s (assets %s, liabilities %s)",
		formatMoney(result.NetWorth), formatMoney(result.TotalAssets), formatMoney(result.TotalLiabilities))
	return success(result, summary), nil
}
