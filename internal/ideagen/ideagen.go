// Package ideagen generates business-idea recommendations.
//
// It builds a prompt from the caller's profile, asks the model provider for
// structured JSON output, validates every candidate against the idea schema,
// and degrades to deterministic template ideas when the upstream call or its
// output cannot be used. Generate never returns an error: failures are
// logged and counted so operators can see when the provider is failing.
package ideagen

import (
	"context"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// IdeaCount is the number of ideas every generation returns.
const IdeaCount = 3

// GeneratedIdea is one recommendation in the generator's output schema.
type GeneratedIdea struct {
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	SkillsRequired      []string           `json:"skills_required"`
	TargetMarket        string             `json:"target_market"`
	StartupCosts        string             `json:"startup_costs"`
	PotentialChallenges []string           `json:"potential_challenges"`
	SuccessFactors      []string           `json:"success_factors"`
	MarketTrends        []string           `json:"market_trends"`
	SuccessRateEstimate string             `json:"success_rate_estimate"`
	EstimatedROI        string             `json:"estimated_roi"`
	EconomicData        model.EconomicData `json:"economic_data"`
}

// Request describes the entrepreneur profile ideas are generated for.
type Request struct {
	Skills    []string
	Interests []string
	Budget    string // budget band, e.g. "10000-50000"
	Location  string
}

// TextGenerator is the upstream model call. Implemented by the Gemini
// client; tests substitute canned or failing implementations.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}
