package tools

import (
	"testing"
	"time"

	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeSpending(t *testing.T) {
	txns := []*monarch.Transaction{
		txn("1", -50, "Groceries", ""),
		txn("2", -25.25, "Dining", ""),
		txn("3", -70, "Groceries", ""),
		txn("4", 3000, "Paychecks", ""),
		txn("5", -10, "", ""),
		txn("6", 0, "Groceries", ""),
		nil,
	}

	report := SummarizeSpending(txns)

	assert.Equal(t, 155.25, report.TotalSpending)
	require.Len(t, report.Categories, 3)

	assert.Equal(t, "Groceries", report.Categories[0].Category)
	assert.Equal(t, 120.0, report.Categories[0].Amount)
	assert.Equal(t, 2, report.Categories[0].Count)
	assert.Equal(t, 77.29, report.Categories[0].Percentage)

	assert.Equal(t, "Dining", report.Categories[1].Category)
	assert.Equal(t, 25.25, report.Categories[1].Amount)

	assert.Equal(t, UncategorizedLabel, report.Categories[2].Category)
	assert.Equal(t, 10.0, report.Categories[2].Amount)
}

func TestSummarizeSpending_TotalMatchesExpenses(t *testing.T) {
	txns := []*monarch.Transaction{
		txn("1", -0.1, "A", ""),
		txn("2", -0.2, "B", ""),
		txn("3", -19.99, "C", ""),
		txn("4", -5.01, "A", ""),
		txn("5", 12, "A", ""),
		txn("6", -19.99, "D", ""),
	}

	report := SummarizeSpending(txns)

	assert.Equal(t, 45.29, report.TotalSpending)
	for i := 1; i < len(report.Categories); i++ {
		assert.GreaterOrEqual(t, report.Categories[i-1].Amount, report.Categories[i].Amount)
	}

	// equal amounts fall back to name order
	assert.Equal(t, "C", report.Categories[0].Category)
	assert.Equal(t, "D", report.Categories[1].Category)
}

func TestSummarizeSpending_Empty(t *testing.T) {
	report := SummarizeSpending(nil)

	assert.Equal(t, 0.0, report.TotalSpending)
	assert.NotNil(t, report.Categories)
	assert.Empty(t, report.Categories)
}

func TestComputeNetWorth(t *testing.T) {
	result := ComputeNetWorth([]*monarch.Account{
		account("a1", "asset", 1000, true),
		account("a2", "liability", -200, true),
	})

	assert.Equal(t, 800.0, result.NetWorth)
	assert.Equal(t, 1000.0, result.TotalAssets)
	assert.Equal(t, 200.0, result.TotalLiabilities)
	require.Len(t, result.Assets, 1)
	require.Len(t, result.Liabilities, 1)
	assert.Equal(t, -200.0, result.Liabilities[0].Balance)
}

func TestComputeNetWorth_Exclusions(t *testing.T) {
	result := ComputeNetWorth([]*monarch.Account{
		account("a1", "Asset", 1000.50, true),
		account("a2", "LIABILITY", 300, true),
		account("a3", "asset", 5000, false),
		account("a4", "other", 999, true),
		{ID: "a5", CurrentBalance: 42, IncludeInNetWorth: true},
		nil,
	})

	assert.Equal(t, 700.5, result.NetWorth)
	assert.Equal(t, 1000.5, result.TotalAssets)
	assert.Equal(t, 300.0, result.TotalLiabilities)
	assert.Len(t, result.Assets, 1)
	assert.Len(t, result.Liabilities, 1)
}

func TestComputeNetWorth_Empty(t *testing.T) {
	result := ComputeNetWorth(nil)

	assert.Equal(t, 0.0, result.NetWorth)
	assert.NotNil(t, result.Assets)
	assert.NotNil(t, result.Liabilities)
}

func TestSummarizeMonth(t *testing.T) {
	summary := SummarizeMonth(2024, time.February, []*monarch.Transaction{
		txn("1", 4000, "Paychecks", ""),
		txn("2", 1000, "Interest", ""),
		txn("3", -1200, "Rent", ""),
		txn("4", -300.5, "Groceries", ""),
		txn("5", 0, "Transfer", ""),
	})

	assert.Equal(t, "2024-02-01", summary.StartDate)
	assert.Equal(t, "2024-02-29", summary.EndDate)
	assert.Equal(t, 5000.0, summary.TotalIncome)
	assert.Equal(t, 1500.5, summary.TotalExpenses)
	assert.Equal(t, 3499.5, summary.NetSavings)
	assert.Equal(t, 69.99, summary.SavingsRate)
	assert.Equal(t, 2, summary.IncomeCount)
	assert.Equal(t, 2, summary.ExpenseCount)
}

func TestSummarizeMonth_NoIncome(t *testing.T) {
	summary := SummarizeMonth(2023, time.February, []*monarch.Transaction{
		txn("1", -20, "Fees", ""),
	})

	assert.Equal(t, "2023-02-28", summary.EndDate)
	assert.Equal(t, -20.0, summary.NetSavings)
	assert.Equal(t, 0.0, summary.SavingsRate)
}

func TestFilterTransactions(t *testing.T) {
	coffee := txn("1", -4.5, "Coffee", "Blue Bottle")
	starbucks := txn("2", -6.25, "Coffee", "")
	starbucks.PlaidName = "STARBUCKS #1234"
	noted := txn("3", -120, "Shopping", "")
	noted.Notes = "coffee grinder"
	rent := txn("4", -1500, "Rent", "Landlord")
	paycheck := txn("5", 2500, "Paychecks", "")
	paycheck.PlaidName = "ACME PAYROLL"

	all := []*monarch.Transaction{coffee, starbucks, noted, rent, paycheck}

	t.Run("text on any field", func(t *testing.T) {
		got := FilterTransactions(all, SearchCriteria{Query: "COFFEE"})
		assert.Equal(t, []*monarch.Transaction{noted}, got)

		got = FilterTransactions(all, SearchCriteria{Query: "starbucks"})
		assert.Equal(t, []*monarch.Transaction{starbucks}, got)

		got = FilterTransactions(all, SearchCriteria{Query: "bottle"})
		assert.Equal(t, []*monarch.Transaction{coffee}, got)
	})

	t.Run("inclusive absolute bounds", func(t *testing.T) {
		min, max := 4.5, 120.0
		got := FilterTransactions(all, SearchCriteria{MinAmount: &min, MaxAmount: &max})
		assert.Equal(t, []*monarch.Transaction{coffee, starbucks, noted}, got)

		min = 2000
		got = FilterTransactions(all, SearchCriteria{MinAmount: &min})
		assert.Equal(t, []*monarch.Transaction{paycheck}, got)
	})

	t.Run("limit", func(t *testing.T) {
		got := FilterTransactions(all, SearchCriteria{Limit: 2})
		assert.Equal(t, []*monarch.Transaction{coffee, starbucks}, got)

		got = FilterTransactions(all, SearchCriteria{})
		assert.Len(t, got, len(all))
	})

	t.Run("query kept verbatim", func(t *testing.T) {
		acme := txn("6", -30, "", "Acme Inc")
		prince := txn("7", -12, "", "Princeton Deli")
		pair := []*monarch.Transaction{acme, prince}

		got := FilterTransactions(pair, SearchCriteria{Query: " inc"})
		assert.Equal(t, []*monarch.Transaction{acme}, got)

		got = FilterTransactions(pair, SearchCriteria{Query: "inc"})
		assert.Equal(t, pair, got)

		got = FilterTransactions(pair, SearchCriteria{Query: "   "})
		assert.Equal(t, pair, got)
	})

	t.Run("no match", func(t *testing.T) {
		got := FilterTransactions(all, SearchCriteria{Query: "zzz"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		max := 10.0
		criteria := SearchCriteria{Query: "o", MaxAmount: &max, Limit: 5}
		assert.Equal(t, FilterTransactions(all, criteria), FilterTransactions(all, criteria))
	})
}

func TestFilterTransactions_ResultsSatisfyFilters(t *testing.T) {
	var txns []*monarch.Transaction
	for i := 0; i < 200; i++ {
		tx := txn("t", float64(i%37)-18, "", "")
		if i%3 == 0 {
			tx.Notes = "Weekly Market"
		}
		if i%5 == 0 {
			tx.Merchant = &monarch.Merchant{Name: "Corner market"}
		}
		txns = append(txns, tx)
	}

	min, max := 3.0, 9.0
	got := FilterTransactions(txns, SearchCriteria{Query: "market", MinAmount: &min, MaxAmount: &max, Limit: 20})

	assert.LessOrEqual(t, len(got), 20)
	assert.NotEmpty(t, got)
	for _, tx := range got {
		assert.True(t, matchesText(tx, "market"))
		abs := tx.Amount
		if abs < 0 {
			abs = -abs
		}
		assert.GreaterOrEqual(t, abs, min)
		assert.LessOrEqual(t, abs, max)
	}
}
