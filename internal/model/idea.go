package model

import "time"

// EconomicData captures the market context attached to a business idea.
// Stored as a validated sub-record rather than an opaque blob so malformed
// data is caught at the boundary.
type EconomicData struct {
	GrowthPotential  string `json:"growth_potential"`
	MarketSaturation string `json:"market_saturation"`
	CompetitionLevel string `json:"competition_level"`
}

// BusinessIdea is a saved recommendation, AI-generated or user-entered,
// owned by exactly one profile.
type BusinessIdea struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Industry      string  `json:"industry"`
	Location      string  `json:"location"`
	InvestmentMin float64 `json:"investment_min"`
	InvestmentMax float64 `json:"investment_max"`

	// Enrichment fields from the idea generator; empty for hand-entered ideas.
	SkillsRequired      []string     `json:"skills_required"`
	TargetMarket        string       `json:"target_market"`
	PotentialChallenges []string     `json:"potential_challenges"`
	SuccessFactors      []string     `json:"success_factors"`
	MarketTrends        []string     `json:"market_trends"`
	SuccessRateEstimate string       `json:"success_rate_estimate"`
	EstimatedROI        string       `json:"estimated_roi"`
	EconomicData        EconomicData `json:"economic_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IdeaSummary is the denormalized idea projection attached to a
// financial projection row.
type IdeaSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
}
