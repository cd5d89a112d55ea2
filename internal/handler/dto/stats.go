package dto

import "github.com/bizmatchke/bizmatchke/internal/model"

// StatsResponse represents the dashboard statistics payload.
type StatsResponse struct {
	TotalIdeas           int            `json:"total_ideas"`
	SavedIdeas           int            `json:"saved_ideas"`
	FinancialProjections int            `json:"financial_projections"`
	AverageStartupCost   int            `json:"average_startup_cost"`
	AverageBreakEven     int            `json:"average_break_even"`
	IdeasByIndustry      map[string]int `json:"ideas_by_industry"`
	IdeasByLocation      map[string]int `json:"ideas_by_location"`

	RecentIdeas       []IdeaResponse       `json:"recent_ideas"`
	RecentProjections []ProjectionResponse `json:"recent_projections"`
}

// ToStatsResponse converts a Stats model, rendering the recent entries
// through the same converters the list endpoints use.
func ToStatsResponse(stats *model.Stats) *StatsResponse {
	return &StatsResponse{
		TotalIdeas:           stats.TotalIdeas,
		SavedIdeas:           stats.SavedIdeas,
		FinancialProjections: stats.FinancialProjections,
		AverageStartupCost:   stats.AverageStartupCost,
		AverageBreakEven:     stats.AverageBreakEven,
		IdeasByIndustry:      stats.IdeasByIndustry,
		IdeasByLocation:      stats.IdeasByLocation,

		RecentIdeas:       ToIdeaListResponse(stats.RecentIdeas),
		RecentProjections: ToProjectionListResponse(stats.RecentProjections),
	}
}
