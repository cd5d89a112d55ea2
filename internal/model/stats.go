package model

// Stats aggregates one user's dashboard numbers.
// SavedIdeas mirrors TotalIdeas; there is no separate saved-ideas table.
type Stats struct {
	TotalIdeas           int            `json:"total_ideas"`
	SavedIdeas           int            `json:"saved_ideas"`
	FinancialProjections int            `json:"financial_projections"`
	AverageStartupCost   int            `json:"average_startup_cost"`
	AverageBreakEven     int            `json:"average_break_even"`
	IdeasByIndustry      map[string]int `json:"ideas_by_industry"`
	IdeasByLocation      map[string]int `json:"ideas_by_location"`

	RecentIdeas       []*BusinessIdea        `json:"recent_ideas"`
	RecentProjections []*FinancialProjection `json:"recent_projections"`
}
