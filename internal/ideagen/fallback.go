package ideagen

import (
	"fmt"
	"strings"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// fallbackIdeas builds the deterministic template set served when the
// upstream call or its output cannot be used. Templates are parameterized
// by the caller's profile so the result still feels personal, and every
// template satisfies the schema check by construction.
func fallbackIdeas(req Request) []GeneratedIdea {
	location := req.Location
	if location == "" {
		location = "Kenya"
	}

	primarySkill := pick(req.Skills, 0, "Local")
	primaryInterest := pick(req.Interests, 0, "Digital")
	secondaryInterest := pick(req.Interests, 1, "Local")
	budget := fallbackBudgetRange(req.Budget)

	return []GeneratedIdea{
		{
			Title: fmt.Sprintf("%s Services in %s", primarySkill, location),
			Description: fmt.Sprintf(
				"A service business leveraging %s skills to serve the %s market. It addresses everyday local needs while keeping startup costs minimal.",
				primarySkill, location),
			SkillsRequired:      skillsOrDefault(req.Skills, []string{"Communication", "Customer Service", "Marketing"}),
			TargetMarket:        fmt.Sprintf("Residents and businesses in %s seeking %s services", location, primarySkill),
			StartupCosts:        budget,
			PotentialChallenges: []string{"Market competition", "Customer acquisition"},
			SuccessFactors:      []string{"Quality service delivery", "Strong local network"},
			MarketTrends:        []string{"Increasing demand for specialized services", "Growth in mobile service delivery"},
			SuccessRateEstimate: "Medium - Service businesses have moderate success rates with proper execution",
			EstimatedROI:        "30-40% within 12-18 months",
			EconomicData: model.EconomicData{
				GrowthPotential:  "Medium - Service sector is growing steadily in Kenya",
				MarketSaturation: "Medium - Varies by specific service type",
				CompetitionLevel: "Medium - Differentiation is key to success",
			},
		},
		{
			Title: fmt.Sprintf("%s Products Platform", primaryInterest),
			Description: fmt.Sprintf(
				"An online platform offering %s products to customers across Kenya. The business can be operated remotely with flexible hours and low overhead.",
				primaryInterest),
			SkillsRequired:      skillsOrDefault(req.Skills, []string{"Digital Marketing", "Content Creation", "Basic Tech Skills"}),
			TargetMarket:        fmt.Sprintf("Online customers interested in %s products and services", primaryInterest),
			StartupCosts:        budget,
			PotentialChallenges: []string{"Online visibility", "Payment processing"},
			SuccessFactors:      []string{"Unique product offering", "Effective digital marketing"},
			MarketTrends:        []string{"Increasing internet penetration in Kenya", "Growing comfort with online purchases"},
			SuccessRateEstimate: "Medium-High - Digital businesses have lower overhead and wider reach",
			EstimatedROI:        "50-70% within 12-24 months",
			EconomicData: model.EconomicData{
				GrowthPotential:  "High - Digital economy is rapidly expanding",
				MarketSaturation: "Low to Medium - Many niches still underserved",
				CompetitionLevel: "Medium - Varies by specific digital product category",
			},
		},
		{
			Title: fmt.Sprintf("%s Retail Business", secondaryInterest),
			Description: fmt.Sprintf(
				"A retail business focusing on %s products for the %s market. It combines a physical presence with online ordering for maximum reach.",
				secondaryInterest, location),
			SkillsRequired:      skillsOrDefault(req.Skills, []string{"Inventory Management", "Sales", "Customer Relations"}),
			TargetMarket:        fmt.Sprintf("Local consumers in %s interested in %s products", location, secondaryInterest),
			StartupCosts:        budget,
			PotentialChallenges: []string{"Inventory management", "Cash flow"},
			SuccessFactors:      []string{"Strategic location", "Product differentiation"},
			MarketTrends:        []string{"Growing middle class in urban areas", "Increasing preference for local products"},
			SuccessRateEstimate: "Medium - Retail requires careful planning and management",
			EstimatedROI:        "20-30% within 18-24 months",
			EconomicData: model.EconomicData{
				GrowthPotential:  "Medium - Retail sector grows with the economy",
				MarketSaturation: "Medium to High - Depends on product category",
				CompetitionLevel: "High - Established retail chains present challenges",
			},
		},
	}
}

// fallbackBudgetRange narrows the band for display in fallback ideas.
func fallbackBudgetRange(budget string) string {
	switch budget {
	case "0-10000":
		return "5,000 - 10,000 KES"
	case "10000-50000":
		return "15,000 - 40,000 KES"
	case "50000-100000":
		return "60,000 - 90,000 KES"
	case "100000+":
		return "100,000+ KES"
	default:
		return "Various budget levels"
	}
}

func pick(values []string, i int, fallback string) string {
	if i < len(values) && values[i] != "" {
		return values[i]
	}
	return fallback
}

// skillsOrDefault uses the caller's first three usable skills when enough
// were given, otherwise the template defaults. The schema requires three
// non-empty entries, so blank input must not leak into a template.
func skillsOrDefault(skills, defaults []string) []string {
	usable := make([]string, 0, minSkills)
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		usable = append(usable, s)
		if len(usable) == minSkills {
			return usable
		}
	}
	return defaults
}
