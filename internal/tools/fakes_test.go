package tools

import (
	"context"
	"time"

	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/stretchr/testify/mock"
)

type mockAccounts struct {
	mock.Mock
}

func (m *mockAccounts) List(ctx context.Context) ([]*monarch.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*monarch.Account)
	return accounts, args.Error(1)
}

func (m *mockAccounts) Get(ctx context.Context, accountID string) (*monarch.Account, error) {
	args := m.Called(ctx, accountID)
	account, _ := args.Get(0).(*monarch.Account)
	return account, args.Error(1)
}

func (m *mockAccounts) Snapshots(ctx context.Context, accountID string, start, end time.Time) ([]*monarch.Snapshot, error) {
	args := m.Called(ctx, accountID, start, end)
	snapshots, _ := args.Get(0).([]*monarch.Snapshot)
	return snapshots, args.Error(1)
}

type mockTransactions struct {
	mock.Mock
}

func (m *mockTransactions) List(ctx context.Context, filter *monarch.TransactionFilter) ([]*monarch.Transaction, error) {
	args := m.Called(ctx, filter)
	txns, _ := args.Get(0).([]*monarch.Transaction)
	return txns, args.Error(1)
}

func (m *mockTransactions) Query() monarch.TransactionQueryBuilder {
	return &fakeQuery{service: m}
}

// fakeQuery records the builder calls and hands the filter to List.
type fakeQuery struct {
	service *mockTransactions
	filter  monarch.TransactionFilter
}

func (q *fakeQuery) WithAccount(id string) monarch.TransactionQueryBuilder {
	q.filter.AccountID = id
	return q
}

func (q *fakeQuery) From(start time.Time) monarch.TransactionQueryBuilder {
	q.filter.StartDate = start
	return q
}

func (q *fakeQuery) To(end time.Time) monarch.TransactionQueryBuilder {
	q.filter.EndDate = end
	return q
}

func (q *fakeQuery) Between(start, end time.Time) monarch.TransactionQueryBuilder {
	return q.From(start).To(end)
}

func (q *fakeQuery) Limit(limit int) monarch.TransactionQueryBuilder {
	q.filter.Limit = limit
	return q
}

func (q *fakeQuery) Offset(offset int) monarch.TransactionQueryBuilder {
	q.filter.Offset = offset
	return q
}

func (q *fakeQuery) Filter() *monarch.TransactionFilter {
	f := q.filter
	return &f
}

func (q *fakeQuery) Execute(ctx context.Context) ([]*monarch.Transaction, error) {
	return q.service.List(ctx, q.Filter())
}

type mockBudgets struct {
	mock.Mock
}

func (m *mockBudgets) Current(ctx context.Context) ([]*monarch.Budget, error) {
	args := m.Called(ctx)
	budgets, _ := args.Get(0).([]*monarch.Budget)
	return budgets, args.Error(1)
}

func (m *mockBudgets) List(ctx context.Context, start, end time.Time) ([]*monarch.Budget, error) {
	args := m.Called(ctx, start, end)
	budgets, _ := args.Get(0).([]*monarch.Budget)
	return budgets, args.Error(1)
}

type mockCategories struct {
	mock.Mock
}

func (m *mockCategories) List(ctx context.Context) ([]*monarch.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*monarch.Category)
	return categories, args.Error(1)
}

type mockPortfolio struct {
	mock.Mock
}

func (m *mockPortfolio) Get(ctx context.Context, start, end time.Time) (*monarch.Portfolio, error) {
	args := m.Called(ctx, start, end)
	portfolio, _ := args.Get(0).(*monarch.Portfolio)
	return portfolio, args.Error(1)
}

func txn(id string, amount float64, category, merchant string) *monarch.Transaction {
	t := &monarch.Transaction{ID: id, Amount: amount}
	if category != "" {
		t.Category = &monarch.CategoryRef{ID: "cat-" + category, Name: category}
	}
	if merchant != "" {
		t.Merchant = &monarch.Merchant{ID: "m-" + merchant, Name: merchant}
	}
	return t
}

func account(id, group string, balance float64, included bool) *monarch.Account {
	return &monarch.Account{
		ID:                id,
		DisplayName:       "Account " + id,
		CurrentBalance:    balance,
		IncludeInNetWorth: included,
		Type:              &monarch.AccountTypeInfo{Name: group, Display: group, Group: group},
	}
}

func day(s string) time.Time {
	t, err := time.Parse(monarch.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
