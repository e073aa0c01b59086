package monarch

import (
	"strings"
	"time"
)

// Account represents a financial account
type Account struct {
	ID                   string              `json:"id"`
	DisplayName          string              `json:"displayName"`
	CurrentBalance       float64             `json:"currentBalance"`
	DisplayBalance       *float64            `json:"displayBalance,omitempty"`
	IncludeInNetWorth    bool                `json:"includeInNetWorth"`
	IsHidden             bool                `json:"isHidden"`
	IsAsset              bool                `json:"isAsset"`
	Mask                 string              `json:"mask,omitempty"`
	DisplayLastUpdatedAt string              `json:"displayLastUpdatedAt,omitempty"`
	Type                 *AccountTypeInfo    `json:"type"`
	Subtype              *AccountSubtypeInfo `json:"subtype,omitempty"`
	Institution          *Institution        `json:"institution,omitempty"`
}

// Group returns the lower-cased type group ("asset", "liability"), or ""
// when the account carries no type.
func (a *Account) Group() string {
	if a.Type == nil {
		return ""
	}
	return strings.ToLower(a.Type.Group)
}

// InstitutionName returns the institution name when one is attached.
func (a *Account) InstitutionName() string {
	if a.Institution == nil {
		return ""
	}
	return a.Institution.Name
}

// AccountTypeInfo represents account type information
type AccountTypeInfo struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Group   string `json:"group"`
}

// AccountSubtypeInfo represents account subtype information
type AccountSubtypeInfo struct {
	Name    string `json:"name"`
	Display string `json:"display"`
}

// Institution represents a financial institution
type Institution struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Merchant represents a merchant
type Merchant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryRef is the category attached to a transaction
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AccountRef is the back-reference from a transaction to its account
type AccountRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Transaction represents a financial transaction. Negative amounts are
// expenses, positive amounts income.
type Transaction struct {
	ID              string       `json:"id"`
	Amount          float64      `json:"amount"`
	Date            Date         `json:"date"`
	Pending         bool         `json:"pending"`
	PlaidName       string       `json:"plaidName,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	HideFromReports bool         `json:"hideFromReports"`
	IsRecurring     bool         `json:"isRecurring"`
	Merchant        *Merchant    `json:"merchant,omitempty"`
	Category        *CategoryRef `json:"category,omitempty"`
	Account         *AccountRef  `json:"account,omitempty"`
}

// MerchantName returns the merchant name when one is attached.
func (t *Transaction) MerchantName() string {
	if t.Merchant == nil {
		return ""
	}
	return t.Merchant.Name
}

// CategoryName returns the category name when one is attached.
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// Category represents a transaction category
type Category struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Icon             string         `json:"icon,omitempty"`
	Order            int            `json:"order"`
	IsSystemCategory bool           `json:"isSystemCategory"`
	IsDisabled       bool           `json:"isDisabled"`
	Group            *CategoryGroup `json:"group,omitempty"`
}

// CategoryGroup represents a category group
type CategoryGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Budget is one category line of a monthly budget
type Budget struct {
	CategoryID     string  `json:"categoryId"`
	CategoryName   string  `json:"categoryName"`
	CategoryGroup  string  `json:"categoryGroup,omitempty"`
	Month          string  `json:"month"`
	Planned        float64 `json:"planned"`
	Actual         float64 `json:"actual"`
	Remaining      float64 `json:"remaining"`
	RolloverAmount float64 `json:"rolloverAmount,omitempty"`
	RolloverType   string  `json:"rolloverType,omitempty"`
}

// Snapshot is a dated balance for one account
type Snapshot struct {
	Date          Date    `json:"date"`
	Balance       float64 `json:"balance"`
	SignedBalance float64 `json:"signedBalance"`
}

// Portfolio aggregates investment performance and holdings
type Portfolio struct {
	Performance *PortfolioPerformance `json:"performance"`
	Holdings    []*AggregateHolding   `json:"holdings"`
}

// PortfolioPerformance holds aggregate performance metrics
type PortfolioPerformance struct {
	TotalValue          float64        `json:"totalValue"`
	TotalBasis          float64        `json:"totalBasis"`
	TotalChangePercent  float64        `json:"totalChangePercent"`
	TotalChangeDollars  float64        `json:"totalChangeDollars"`
	OneDayChangePercent *float64       `json:"oneDayChangePercent,omitempty"`
	HistoricalChart     []*ReturnPoint `json:"historicalChart"`
	Benchmarks          []*Benchmark   `json:"benchmarks"`
}

// ReturnPoint is one entry of a return series
type ReturnPoint struct {
	Date          Date    `json:"date"`
	ReturnPercent float64 `json:"returnPercent"`
}

// Benchmark is a reference security with its return series
type Benchmark struct {
	Security        *Security      `json:"security"`
	HistoricalChart []*ReturnPoint `json:"historicalChart"`
}

// Security describes a traded instrument
type Security struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Ticker              string   `json:"ticker"`
	Type                string   `json:"type,omitempty"`
	TypeDisplay         string   `json:"typeDisplay,omitempty"`
	CurrentPrice        *float64 `json:"currentPrice,omitempty"`
	ClosingPrice        *float64 `json:"closingPrice,omitempty"`
	OneDayChangePercent *float64 `json:"oneDayChangePercent,omitempty"`
}

// AggregateHolding groups the positions held in one security
type AggregateHolding struct {
	ID                         string     `json:"id"`
	Quantity                   float64    `json:"quantity"`
	Basis                      float64    `json:"basis"`
	TotalValue                 float64    `json:"totalValue"`
	SecurityPriceChangeDollars *float64   `json:"securityPriceChangeDollars,omitempty"`
	SecurityPriceChangePercent *float64   `json:"securityPriceChangePercent,omitempty"`
	LastSyncedAt               string     `json:"lastSyncedAt,omitempty"`
	Security                   *Security  `json:"security"`
	Holdings                   []*Holding `json:"holdings"`
}

// Holding is one position in one account
type Holding struct {
	ID           string          `json:"id"`
	Type         string          `json:"type,omitempty"`
	TypeDisplay  string          `json:"typeDisplay,omitempty"`
	Name         string          `json:"name"`
	Ticker       string          `json:"ticker,omitempty"`
	ClosingPrice *float64        `json:"closingPrice,omitempty"`
	Quantity     float64         `json:"quantity"`
	Value        float64         `json:"value"`
	Account      *HoldingAccount `json:"account"`
}

// HoldingAccount is the back-reference from a holding to its account
type HoldingAccount struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"displayName"`
	Institution *Institution `json:"institution,omitempty"`
}

// TransactionFilter selects transactions. Zero dates are not sent.
type TransactionFilter struct {
	Limit     int
	Offset    int
	AccountID string
	StartDate time.Time
	EndDate   time.Time
}
