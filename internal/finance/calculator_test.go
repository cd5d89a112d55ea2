package finance

import (
	"errors"
	"math"
	"testing"
)

func validInputs() Inputs {
	return Inputs{
		StartupCosts:     20000,
		MonthlyExpenses:  5000,
		ProjectedRevenue: 8000,
		BreakEvenMonths:  6,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Inputs)
		wantErr error
	}{
		{"valid", func(in *Inputs) {}, nil},
		{"zero_startup_costs", func(in *Inputs) { in.StartupCosts = 0 }, ErrStartupCosts},
		{"negative_startup_costs", func(in *Inputs) { in.StartupCosts = -100 }, ErrStartupCosts},
		{"zero_expenses", func(in *Inputs) { in.MonthlyExpenses = 0 }, ErrMonthlyExpenses},
		{"zero_revenue", func(in *Inputs) { in.ProjectedRevenue = 0 }, ErrProjectedRevenue},
		{"zero_break_even", func(in *Inputs) { in.BreakEvenMonths = 0 }, ErrBreakEvenMonths},
		{"expenses_equal_revenue", func(in *Inputs) { in.MonthlyExpenses = in.ProjectedRevenue }, ErrExpensesExceedRevenue},
		{"expenses_above_revenue", func(in *Inputs) { in.MonthlyExpenses = in.ProjectedRevenue + 1 }, ErrExpensesExceedRevenue},
		{"cost_split_not_100", func(in *Inputs) { in.FixedCostPct = 70; in.VariableCostPct = 20 }, ErrInvalidCostSplit},
		{"cost_split_100", func(in *Inputs) { in.FixedCostPct = 70; in.VariableCostPct = 30 }, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := validInputs()
			test.mutate(&in)
			if err := Validate(in); !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestComputeWorkedExample(t *testing.T) {
	// Tea Kiosk example: 20000 startup, 5000 expenses, 8000 revenue.
	m, err := Compute(validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.MonthlyProfit != 3000 {
		t.Errorf("monthly profit: expected 3000, got %v", m.MonthlyProfit)
	}
	if m.AnnualProfit != 36000 {
		t.Errorf("annual profit: expected 36000, got %v", m.AnnualProfit)
	}
	if m.ProfitMargin != 37.5 {
		t.Errorf("profit margin: expected 37.5, got %v", m.ProfitMargin)
	}
	if m.AnnualROI != 180 {
		t.Errorf("annual ROI: expected 180, got %v", m.AnnualROI)
	}
	if want := 20000.0 / 3000.0; math.Abs(m.PaybackMonths-want) > 1e-9 {
		t.Errorf("payback months: expected %v, got %v", want, m.PaybackMonths)
	}
}

func TestComputeIdentities(t *testing.T) {
	inputs := []Inputs{
		{StartupCosts: 1000, MonthlyExpenses: 1, ProjectedRevenue: 2, BreakEvenMonths: 1},
		{StartupCosts: 50000, MonthlyExpenses: 12000, ProjectedRevenue: 30000, BreakEvenMonths: 4},
		{StartupCosts: 150000, MonthlyExpenses: 7500.50, ProjectedRevenue: 9999.75, BreakEvenMonths: 24},
	}

	for _, in := range inputs {
		m, err := Compute(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// monthlyProfit + monthlyExpenses == projectedRevenue
		if got := m.MonthlyProfit + in.MonthlyExpenses; got != in.ProjectedRevenue {
			t.Errorf("profit identity violated: %v + %v = %v, want %v",
				m.MonthlyProfit, in.MonthlyExpenses, got, in.ProjectedRevenue)
		}

		// annualProfit == monthlyProfit * 12 exactly
		if m.AnnualProfit != m.MonthlyProfit*12 {
			t.Errorf("annual profit: expected %v, got %v", m.MonthlyProfit*12, m.AnnualProfit)
		}
	}
}

func TestComputeCashFlows(t *testing.T) {
	m, err := Compute(validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.CashFlows) != 12 {
		t.Fatalf("expected 12 months of cash flows, got %d", len(m.CashFlows))
	}

	for i, cf := range m.CashFlows {
		if cf.Month != i+1 {
			t.Errorf("month %d: expected month number %d, got %d", i, i+1, cf.Month)
		}
		if cf.Profit != m.MonthlyProfit {
			t.Errorf("month %d: expected profit %v, got %v", cf.Month, m.MonthlyProfit, cf.Profit)
		}
		if want := m.MonthlyProfit * float64(cf.Month); cf.CumulativeProfit != want {
			t.Errorf("month %d: expected cumulative %v, got %v", cf.Month, want, cf.CumulativeProfit)
		}
	}
}

func TestComputeSensitivity(t *testing.T) {
	m, err := Compute(validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Revenue +10%: (8800 - 5000) * 12 = 45600, impact +9600.
	if got := m.Sensitivity.RevenueUp.AnnualProfit; math.Abs(got-45600) > 1e-9 {
		t.Errorf("revenue up: expected 45600, got %v", got)
	}
	if got := m.Sensitivity.RevenueUp.ProfitImpact; math.Abs(got-9600) > 1e-9 {
		t.Errorf("revenue up impact: expected 9600, got %v", got)
	}
	// Expenses +10%: (8000 - 5500) * 12 = 30000, impact -6000.
	if got := m.Sensitivity.ExpensesUp.AnnualProfit; math.Abs(got-30000) > 1e-9 {
		t.Errorf("expenses up: expected 30000, got %v", got)
	}
	if got := m.Sensitivity.ExpensesUp.ProfitImpact; math.Abs(got-(-6000)) > 1e-9 {
		t.Errorf("expenses up impact: expected -6000, got %v", got)
	}
}

func TestComputeScenarios(t *testing.T) {
	m, err := Compute(validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Best: revenue 9600, expenses 4500, annual (9600-4500)*12 = 61200.
	if got := m.Scenarios.BestCase.AnnualProfit; math.Abs(got-61200) > 1e-9 {
		t.Errorf("best case: expected 61200, got %v", got)
	}
	// Worst: revenue 6400, expenses 5500, annual (6400-5500)*12 = 10800.
	if got := m.Scenarios.WorstCase.AnnualProfit; math.Abs(got-10800) > 1e-9 {
		t.Errorf("worst case: expected 10800, got %v", got)
	}
}

func TestComputeCostBreakdown(t *testing.T) {
	in := validInputs()
	in.FixedCostPct = 70
	in.VariableCostPct = 30

	m, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := m.Costs.FixedMonthly; math.Abs(got-3500) > 1e-9 {
		t.Errorf("fixed monthly: expected 3500, got %v", got)
	}
	if got := m.Costs.VariableMonthly; math.Abs(got-1500) > 1e-9 {
		t.Errorf("variable monthly: expected 1500, got %v", got)
	}
	// Startup split is a fixed 70/30 policy.
	if got := m.Costs.OneTimeStartup; math.Abs(got-14000) > 1e-9 {
		t.Errorf("one-time startup: expected 14000, got %v", got)
	}
	if got := m.Costs.OperatingStartup; math.Abs(got-6000) > 1e-9 {
		t.Errorf("operating startup: expected 6000, got %v", got)
	}
}

func TestComputeDefaultCostSplit(t *testing.T) {
	m, err := Compute(validInputs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Costs.FixedPct != defaultFixedPct || m.Costs.VariablePct != defaultVariablePct {
		t.Errorf("expected default %d/%d split, got %v/%v",
			defaultFixedPct, defaultVariablePct, m.Costs.FixedPct, m.Costs.VariablePct)
	}
}
