package monarch

// budgetData is the budgetData response shape
type budgetData struct {
	MonthlyAmountsByCategory []*budgetCategoryMonthly `json:"monthlyAmountsByCategory"`
}

// budgetCategoryMonthly represents budget data for a category
type budgetCategoryMonthly struct {
	Category       *Category              `json:"category"`
	MonthlyAmounts []*budgetMonthlyAmount `json:"monthlyAmounts"`
}

// budgetMonthlyAmount represents budget amounts for a specific month
type budgetMonthlyAmount struct {
	Month                       string   `json:"month"`
	PlannedCashFlowAmount       float64  `json:"plannedCashFlowAmount"`
	ActualAmount                float64  `json:"actualAmount"`
	RemainingAmount             float64  `json:"remainingAmount"`
	PreviousMonthRolloverAmount *float64 `json:"previousMonthRolloverAmount"`
	RolloverType                string   `json:"rolloverType"`
}
