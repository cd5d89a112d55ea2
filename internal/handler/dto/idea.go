package dto

import (
	"time"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// CreateIdeaRequest represents the request body for saving a business idea.
// Enrichment fields are optional; they are populated when the client saves
// a generated idea and empty for hand-entered ones.
type CreateIdeaRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Industry      string  `json:"industry"`
	Location      string  `json:"location"`
	InvestmentMin float64 `json:"investment_min"`
	InvestmentMax float64 `json:"investment_max"`

	SkillsRequired      []string           `json:"skills_required,omitempty"`
	TargetMarket        string             `json:"target_market,omitempty"`
	PotentialChallenges []string           `json:"potential_challenges,omitempty"`
	SuccessFactors      []string           `json:"success_factors,omitempty"`
	MarketTrends        []string           `json:"market_trends,omitempty"`
	SuccessRateEstimate string             `json:"success_rate_estimate,omitempty"`
	EstimatedROI        string             `json:"estimated_roi,omitempty"`
	EconomicData        model.EconomicData `json:"economic_data,omitempty"`
}

// IdeaResponse represents a business idea in API responses.
type IdeaResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Industry      string  `json:"industry"`
	Location      string  `json:"location"`
	InvestmentMin float64 `json:"investment_min"`
	InvestmentMax float64 `json:"investment_max"`

	SkillsRequired      []string           `json:"skills_required"`
	TargetMarket        string             `json:"target_market"`
	PotentialChallenges []string           `json:"potential_challenges"`
	SuccessFactors      []string           `json:"success_factors"`
	MarketTrends        []string           `json:"market_trends"`
	SuccessRateEstimate string             `json:"success_rate_estimate"`
	EstimatedROI        string             `json:"estimated_roi"`
	EconomicData        model.EconomicData `json:"economic_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToIdeaResponse converts a BusinessIdea model to IdeaResponse.
func ToIdeaResponse(idea *model.BusinessIdea) *IdeaResponse {
	return &IdeaResponse{
		ID:            idea.ID,
		Title:         idea.Title,
		Description:   idea.Description,
		Industry:      idea.Industry,
		Location:      idea.Location,
		InvestmentMin: idea.InvestmentMin,
		InvestmentMax: idea.InvestmentMax,

		SkillsRequired:      idea.SkillsRequired,
		TargetMarket:        idea.TargetMarket,
		PotentialChallenges: idea.PotentialChallenges,
		SuccessFactors:      idea.SuccessFactors,
		MarketTrends:        idea.MarketTrends,
		SuccessRateEstimate: idea.SuccessRateEstimate,
		EstimatedROI:        idea.EstimatedROI,
		EconomicData:        idea.EconomicData,

		CreatedAt: idea.CreatedAt,
		UpdatedAt: idea.UpdatedAt,
	}
}

// ToIdeaListResponse converts a slice of BusinessIdea models.
func ToIdeaListResponse(ideas []*model.BusinessIdea) []IdeaResponse {
	responses := make([]IdeaResponse, len(ideas))
	for i, idea := range ideas {
		responses[i] = *ToIdeaResponse(idea)
	}
	return responses
}
