package model

// DashboardSummary aggregates the four resource lists into the numbers
// shown on the landing screen.
type DashboardSummary struct {
	BudgetsTotal     int     `json:"budgetsTotal"`
	PurchasesPending int     `json:"purchasesPending"`
	SuppliersCount   int     `json:"suppliersCount"`
	UsersCount       int     `json:"usersCount"`
	SpendToDate      float64 `json:"spendToDate"`
}

// DashboardStat is a single labelled figure on the dashboard.
type DashboardStat struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}
