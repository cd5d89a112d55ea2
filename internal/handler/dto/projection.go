package dto

import (
	"time"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// CreateProjectionRequest represents the request body for a new projection.
// FixedCostPct and VariableCostPct are optional; both zero selects the
// default 60/40 split.
type CreateProjectionRequest struct {
	IdeaID           string  `json:"idea_id"`
	StartupCosts     float64 `json:"startup_costs"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	BreakEvenMonths  int     `json:"break_even_months"`
	WorkingCapital   float64 `json:"working_capital,omitempty"`
	GrowthRate       float64 `json:"growth_rate,omitempty"`
	FixedCostPct     float64 `json:"fixed_cost_pct,omitempty"`
	VariableCostPct  float64 `json:"variable_cost_pct,omitempty"`
}

// ProjectionResponse represents a projection with its derived metrics and
// parent idea summary.
type ProjectionResponse struct {
	ID               string  `json:"id"`
	IdeaID           string  `json:"idea_id"`
	StartupCosts     float64 `json:"startup_costs"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	BreakEvenMonths  int     `json:"break_even_months"`
	WorkingCapital   float64 `json:"working_capital"`
	GrowthRate       float64 `json:"growth_rate"`

	Metrics      model.ProjectionMetrics `json:"metrics"`
	BusinessIdea *model.IdeaSummary      `json:"business_idea,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProjectionResponse converts a FinancialProjection model.
func ToProjectionResponse(p *model.FinancialProjection) *ProjectionResponse {
	return &ProjectionResponse{
		ID:               p.ID,
		IdeaID:           p.IdeaID,
		StartupCosts:     p.StartupCosts,
		MonthlyExpenses:  p.MonthlyExpenses,
		ProjectedRevenue: p.ProjectedRevenue,
		BreakEvenMonths:  p.BreakEvenMonths,
		WorkingCapital:   p.WorkingCapital,
		GrowthRate:       p.GrowthRate,

		Metrics:      p.Metrics,
		BusinessIdea: p.BusinessIdea,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProjectionListResponse converts a slice of projections.
func ToProjectionListResponse(projections []*model.FinancialProjection) []ProjectionResponse {
	responses := make([]ProjectionResponse, len(projections))
	for i, p := range projections {
		responses[i] = *ToProjectionResponse(p)
	}
	return responses
}
