package ideagen

import (
	"fmt"
	"strings"
)

// BudgetLabel maps a budget band to the human-readable KES range embedded
// in prompts and fallback ideas.
func BudgetLabel(budget string) string {
	switch budget {
	case "0-10000":
		return "5,000 - 10,000 KES (low budget)"
	case "10000-50000":
		return "10,000 - 50,000 KES (medium-low budget)"
	case "50000-100000":
		return "50,000 - 100,000 KES (medium budget)"
	case "100000+":
		return "100,000+ KES (higher budget)"
	default:
		return "various budget levels"
	}
}

// buildPrompt assembles the generation prompt. The schema block is spelled
// out so the model's JSON mode has an exact target shape.
func buildPrompt(req Request) string {
	location := req.Location
	if location == "" {
		location = "Kenya"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are a business consultant specializing in entrepreneurship in Kenya.
Generate %d unique, practical business ideas for an entrepreneur with the following profile:

Skills: %s
Interests: %s
Budget: %s
Location: %s

For each business idea, provide:
1. A concise title (max 10 words)
2. A detailed description (2-3 sentences, at least 50 characters)
3. A list of 3-5 required skills
4. Target market description
5. Startup costs estimate in KES
6. 2-3 potential challenges
7. 2-3 success factors
8. 2-3 current market trends relevant to this business
9. Success rate estimate (Low/Medium/High with brief explanation)
10. Estimated ROI (Return on Investment) with timeframe
11. Economic data including growth potential, market saturation, and competition level

Respond with a JSON array of exactly %d objects in this shape:
[
  {
    "title": "Business Title",
    "description": "Description text",
    "skills_required": ["Skill 1", "Skill 2", "Skill 3"],
    "target_market": "Target market description",
    "startup_costs": "Cost estimate in KES",
    "potential_challenges": ["Challenge 1", "Challenge 2"],
    "success_factors": ["Factor 1", "Factor 2"],
    "market_trends": ["Trend 1", "Trend 2"],
    "success_rate_estimate": "Medium - explanation here",
    "estimated_roi": "X%% within Y months",
    "economic_data": {
      "growth_potential": "High - explanation",
      "market_saturation": "Low - explanation",
      "competition_level": "Medium - explanation"
    }
  }
]

Do not include any text before or after the JSON array.`,
		IdeaCount,
		strings.Join(req.Skills, ", "),
		strings.Join(req.Interests, ", "),
		BudgetLabel(req.Budget),
		location,
		IdeaCount,
	)

	return b.String()
}
