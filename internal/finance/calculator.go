// Package finance derives projection metrics from the four base inputs.
// All functions are pure; persistence happens in the service layer.
package finance

import (
	"errors"
	"math"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// Validation errors, in the order checks run.
var (
	ErrStartupCosts          = errors.New("startup costs must be positive")
	ErrMonthlyExpenses       = errors.New("monthly expenses must be positive")
	ErrProjectedRevenue      = errors.New("projected revenue must be positive")
	ErrBreakEvenMonths       = errors.New("break-even months must be positive")
	ErrExpensesExceedRevenue = errors.New("monthly expenses must be less than projected revenue")
	ErrInvalidCostSplit      = errors.New("fixed and variable cost percentages must sum to 100")
)

const (
	monthsPerYear = 12

	// One-time vs operating split of startup costs.
	oneTimeStartupShare   = 0.70
	operatingStartupShare = 0.30

	// Defaults applied when the caller supplies no monthly cost split.
	defaultFixedPct    = 60
	defaultVariablePct = 40

	costSplitTolerance = 0.01
)

// Inputs are the base figures a projection is built from.
type Inputs struct {
	StartupCosts     float64
	MonthlyExpenses  float64
	ProjectedRevenue float64
	BreakEvenMonths  int

	// FixedCostPct and VariableCostPct split monthly expenses. They must
	// sum to 100 when supplied; both zero selects the default split.
	FixedCostPct    float64
	VariableCostPct float64
}

// Validate checks the inputs. Each condition is a distinct rejectable
// error so handlers can report precisely what was wrong.
func Validate(in Inputs) error {
	switch {
	case in.StartupCosts <= 0:
		return ErrStartupCosts
	case in.MonthlyExpenses <= 0:
		return ErrMonthlyExpenses
	case in.ProjectedRevenue <= 0:
		return ErrProjectedRevenue
	case in.BreakEvenMonths <= 0:
		return ErrBreakEvenMonths
	case in.MonthlyExpenses >= in.ProjectedRevenue:
		return ErrExpensesExceedRevenue
	}

	if in.FixedCostPct != 0 || in.VariableCostPct != 0 {
		if math.Abs(in.FixedCostPct+in.VariableCostPct-100) > costSplitTolerance {
			return ErrInvalidCostSplit
		}
	}

	return nil
}

// Compute validates the inputs and derives the full metrics set.
func Compute(in Inputs) (model.ProjectionMetrics, error) {
	if err := Validate(in); err != nil {
		return model.ProjectionMetrics{}, err
	}

	monthlyProfit := in.ProjectedRevenue - in.MonthlyExpenses
	annualProfit := monthlyProfit * monthsPerYear

	m := model.ProjectionMetrics{
		MonthlyProfit: monthlyProfit,
		AnnualProfit:  annualProfit,
		ProfitMargin:  monthlyProfit / in.ProjectedRevenue * 100,
		AnnualROI:     annualProfit / in.StartupCosts * 100,
		PaybackMonths: in.StartupCosts / monthlyProfit,
		CashFlows:     cashFlows(in.ProjectedRevenue, in.MonthlyExpenses),
		Sensitivity:   sensitivity(in.ProjectedRevenue, in.MonthlyExpenses),
		Scenarios:     scenarios(in.ProjectedRevenue, in.MonthlyExpenses),
		Costs:         costBreakdown(in),
	}

	return m, nil
}

// cashFlows builds the first-year schedule with cumulative profit.
func cashFlows(revenue, expenses float64) []model.MonthlyCashFlow {
	profit := revenue - expenses
	flows := make([]model.MonthlyCashFlow, monthsPerYear)
	for i := range flows {
		month := i + 1
		flows[i] = model.MonthlyCashFlow{
			Month:            month,
			Revenue:          revenue,
			Expenses:         expenses,
			Profit:           profit,
			CumulativeProfit: profit * float64(month),
		}
	}
	return flows
}

func sensitivity(revenue, expenses float64) model.SensitivityAnalysis {
	base := (revenue - expenses) * monthsPerYear

	shift := func(rev, exp float64) model.SensitivityCase {
		annual := (rev - exp) * monthsPerYear
		return model.SensitivityCase{
			AnnualProfit: annual,
			ProfitImpact: annual - base,
		}
	}

	return model.SensitivityAnalysis{
		RevenueUp:    shift(revenue*1.1, expenses),
		RevenueDown:  shift(revenue*0.9, expenses),
		ExpensesUp:   shift(revenue, expenses*1.1),
		ExpensesDown: shift(revenue, expenses*0.9),
	}
}

func scenarios(revenue, expenses float64) model.ScenarioAnalysis {
	build := func(rev, exp float64) model.ScenarioCase {
		profit := rev - exp
		return model.ScenarioCase{
			MonthlyRevenue:  rev,
			MonthlyExpenses: exp,
			MonthlyProfit:   profit,
			AnnualProfit:    profit * monthsPerYear,
		}
	}

	return model.ScenarioAnalysis{
		BestCase:  build(revenue*1.2, expenses*0.9),
		WorstCase: build(revenue*0.8, expenses*1.1),
	}
}

func costBreakdown(in Inputs) model.CostBreakdown {
	fixedPct, variablePct := in.FixedCostPct, in.VariableCostPct
	if fixedPct == 0 && variablePct == 0 {
		fixedPct, variablePct = defaultFixedPct, defaultVariablePct
	}

	return model.CostBreakdown{
		FixedPct:         fixedPct,
		VariablePct:      variablePct,
		FixedMonthly:     in.MonthlyExpenses * fixedPct / 100,
		VariableMonthly:  in.MonthlyExpenses * variablePct / 100,
		OneTimeStartup:   in.StartupCosts * oneTimeStartupShare,
		OperatingStartup: in.StartupCosts * operatingStartupShare,
	}
}
