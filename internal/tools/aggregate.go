package tools

import (
	"sort"
	"strings"
	"time"

	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel names the bucket of transactions without a category.
const UncategorizedLabel = "Uncategorized"

var hundred = decimal.NewFromInt(100)

// CategorySpending is the expense total of one category.
type CategorySpending struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SpendingReport is the result of SummarizeSpending.
type SpendingReport struct {
	StartDate     string              `json:"startDate,omitempty"`
	EndDate       string              `json:"endDate,omitempty"`
	TotalSpending float64             `json:"totalSpending"`
	Categories    []*CategorySpending `json:"categories"`
}

// SummarizeSpending totals the absolute value of negative transactions
// per category name, largest first. Ties are ordered by name.
func SummarizeSpending(txns []*monarch.Transaction) *SpendingReport {
	type bucket struct {
		name   string
		amount decimal.Decimal
		count  int
	}

	buckets := map[string]*bucket{}
	total := decimal.Zero

	for _, txn := range txns {
		if txn == nil || txn.Amount >= 0 {
			continue
		}

		name := txn.CategoryName()
		if name == "" {
			name = UncategorizedLabel
		}

		amount := decimal.NewFromFloat(txn.Amount).Abs()
		b, exists := buckets[name]
		if !exists {
			b = &bucket{name: name}
			buckets[name] = b
		}
		b.amount = b.amount.Add(amount)
		b.count++
		total = total.Add(amount)
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if c := sorted[i].amount.Cmp(sorted[j].amount); c != 0 {
			return c > 0
		}
		return sorted[i].name < sorted[j].name
	})

	report := &SpendingReport{
		TotalSpending: total.InexactFloat64(),
		Categories:    make([]*CategorySpending, 0, len(sorted)),
	}
	for _, b := range sorted {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = b.amount.Div(total).Mul(hundred).Round(2)
		}
		report.Categories = append(report.Categories, &CategorySpending{
			Category:   b.name,
			Amount:     b.amount.InexactFloat64(),
			Count:      b.count,
			Percentage: pct.InexactFloat64(),
		})
	}

	return report
}

// AccountBalance is one line of the net worth breakdown. Balance is the
// balance as reported by the service.
type AccountBalance struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type,omitempty"`
	Institution string  `json:"institution,omitempty"`
	Balance     float64 `json:"balance"`
}

// NetWorth is the result of ComputeNetWorth.
type NetWorth struct {
	NetWorth         float64           `json:"netWorth"`
	TotalAssets      float64           `json:"totalAssets"`
	TotalLiabilities float64           `json:"totalLiabilities"`
	Assets           []*AccountBalance `json:"assets"`
	Liabilities      []*AccountBalance `json:"liabilities"`
}

// ComputeNetWorth sums the accounts included in net worth. Assets count
// at their balance, liabilities at its absolute value. Accounts whose type
// group is neither "asset" nor "liability" are left out of both sides.
func ComputeNetWorth(accounts []*monarch.Account) *NetWorth {
	assets, liabilities := decimal.Zero, decimal.Zero
	result := &NetWorth{
		Assets:      []*AccountBalance{},
		Liabilities: []*AccountBalance{},
	}

	for _, account := range accounts {
		if account == nil || !account.IncludeInNetWorth {
			continue
		}

		balance := decimal.NewFromFloat(account.CurrentBalance)
		line := &AccountBalance{
			ID:          account.ID,
			Name:        account.DisplayName,
			Institution: account.InstitutionName(),
			Balance:     account.CurrentBalance,
		}
		if account.Type != nil {
			line.Type = account.Type.Display
		}

		switch account.Group() {
		case "asset":
			assets = assets.Add(balance)
			result.Assets = append(result.Assets, line)
		case "liability":
			liabilities = liabilities.Add(balance.Abs())
			result.Liabilities = append(result.Liabilities, line)
		}
	}

	result.TotalAssets = assets.InexactFloat64()
	result.TotalLiabilities = liabilities.InexactFloat64()
	result.NetWorth = assets.Sub(liabilities).InexactFloat64()
	return result
}

// MonthlySummary is the result of SummarizeMonth.
type MonthlySummary struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetSavings    float64 `json:"netSavings"`
	SavingsRate   float64 `json:"savingsRate"`
	IncomeCount   int     `json:"incomeCount"`
	ExpenseCount  int     `json:"expenseCount"`
}

// SummarizeMonth splits the transactions of one month into income
// (positive) and expenses (negative). Zero amounts count as neither.
func SummarizeMonth(year int, month time.Month, txns []*monarch.Transaction) *MonthlySummary {
	start, end := monarch.MonthRange(year, month)
	summary := &MonthlySummary{
		Year:      year,
		Month:     int(month),
		StartDate: start.Format(monarch.DateLayout),
		EndDate:   end.Format(monarch.DateLayout),
	}

	income, expenses := decimal.Zero, decimal.Zero
	for _, txn := range txns {
		if txn == nil {
			continue
		}
		amount := decimal.NewFromFloat(txn.Amount)
		switch {
		case amount.IsPositive():
			income = income.Add(amount)
			summary.IncomeCount++
		case amount.IsNegative():
			expenses = expenses.Add(amount.Abs())
			summary.ExpenseCount++
		}
	}

	net := income.Sub(expenses)
	summary.TotalIncome = income.InexactFloat64()
	summary.TotalExpenses = expenses.InexactFloat64()
	summary.NetSavings = net.InexactFloat64()
	if income.IsPositive() {
		summary.SavingsRate = net.Div(income).Mul(hundred).Round(2).InexactFloat64()
	}
	return summary
}

// SearchCriteria filters transactions in FilterTransactions.
type SearchCriteria struct {
	Query     string
	MinAmount *float64
	MaxAmount *float64
	Limit     int
}

// FilterTransactions keeps the transactions whose name, notes or merchant
// contain the query (case-insensitive) and whose absolute amount lies
// within the inclusive bounds, in input order, up to Limit results.
func FilterTransactions(txns []*monarch.Transaction, criteria SearchCriteria) []*monarch.Transaction {
	limit := clampLimit(criteria.Limit, DefaultLimit, 0)
	query := ""
	if strings.TrimSpace(criteria.Query) != "" {
		query = strings.ToLower(criteria.Query)
	}

	var minAmount, maxAmount *decimal.Decimal
	if criteria.MinAmount != nil {
		d := decimal.NewFromFloat(*criteria.MinAmount)
		minAmount = &d
	}
	if criteria.MaxAmount != nil {
		d := decimal.NewFromFloat(*criteria.MaxAmount)
		maxAmount = &d
	}

	results := []*monarch.Transaction{}
	for _, txn := range txns {
		if len(results) >= limit {
			break
		}
		if txn == nil || !matchesText(txn, query) {
			continue
		}

		amount := decimal.NewFromFloat(txn.Amount).Abs()
		if minAmount != nil && amount.LessThan(*minAmount) {
			continue
		}
		if maxAmount != nil && amount.GreaterThan(*maxAmount) {
			continue
		}

		results = append(results, txn)
	}
	return results
}

func matchesText(txn *monarch.Transaction, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{txn.PlaidName, txn.Notes, txn.MerchantName()} {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
