package model

import "time"

// MonthlyCashFlow is one month of the first-year cash-flow schedule.
type MonthlyCashFlow struct {
	Month            int     `json:"month"`
	Revenue          float64 `json:"revenue"`
	Expenses         float64 `json:"expenses"`
	Profit           float64 `json:"profit"`
	CumulativeProfit float64 `json:"cumulative_profit"`
}

// SensitivityCase reports annualized profit for a single input shift.
type SensitivityCase struct {
	AnnualProfit float64 `json:"annual_profit"`
	ProfitImpact float64 `json:"profit_impact"`
}

// SensitivityAnalysis holds the ±10% revenue and expense shifts.
type SensitivityAnalysis struct {
	RevenueUp    SensitivityCase `json:"revenue_up_10"`
	RevenueDown  SensitivityCase `json:"revenue_down_10"`
	ExpensesUp   SensitivityCase `json:"expenses_up_10"`
	ExpensesDown SensitivityCase `json:"expenses_down_10"`
}

// ScenarioCase is one best/worst-case projection.
type ScenarioCase struct {
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	MonthlyProfit   float64 `json:"monthly_profit"`
	AnnualProfit    float64 `json:"annual_profit"`
}

// ScenarioAnalysis holds the best and worst case projections.
// Best case: revenue x1.2, expenses x0.9. Worst case: revenue x0.8, expenses x1.1.
type ScenarioAnalysis struct {
	BestCase  ScenarioCase `json:"best_case"`
	WorstCase ScenarioCase `json:"worst_case"`
}

// CostBreakdown splits monthly expenses (fixed/variable, caller-supplied
// percentages) and startup costs (one-time/operating, fixed 70/30 policy).
type CostBreakdown struct {
	FixedPct         float64 `json:"fixed_pct"`
	VariablePct      float64 `json:"variable_pct"`
	FixedMonthly     float64 `json:"fixed_monthly"`
	VariableMonthly  float64 `json:"variable_monthly"`
	OneTimeStartup   float64 `json:"one_time_startup"`
	OperatingStartup float64 `json:"operating_startup"`
}

// ProjectionMetrics holds every metric derived from the four base inputs.
type ProjectionMetrics struct {
	MonthlyProfit float64 `json:"monthly_profit"`
	AnnualProfit  float64 `json:"annual_profit"`
	ProfitMargin  float64 `json:"profit_margin"`
	AnnualROI     float64 `json:"annual_roi"`
	PaybackMonths float64 `json:"payback_months"`

	CashFlows   []MonthlyCashFlow   `json:"monthly_cash_flows"`
	Sensitivity SensitivityAnalysis `json:"sensitivity_analysis"`
	Scenarios   ScenarioAnalysis    `json:"scenario_analysis"`
	Costs       CostBreakdown       `json:"cost_breakdown"`
}

// FinancialProjection is a financial-viability analysis attached to one
// business idea. Raw inputs and the derived metrics blob are both persisted.
type FinancialProjection struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	IdeaID           string  `json:"idea_id"`
	StartupCosts     float64 `json:"startup_costs"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	BreakEvenMonths  int     `json:"break_even_months"`
	WorkingCapital   float64 `json:"working_capital"`
	GrowthRate       float64 `json:"growth_rate"`

	Metrics ProjectionMetrics `json:"metrics"`

	// BusinessIdea is populated on joined reads, nil otherwise.
	BusinessIdea *IdeaSummary `json:"business_idea,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
