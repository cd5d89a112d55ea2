package ideagen

// Schema minimums an idea must meet to be shown to users.
const (
	minDescriptionLen = 50
	minSkills         = 3
	minChallenges     = 2
	minSuccessFactors = 2
)

// validIdea reports whether a candidate idea meets the schema check.
// Invalid entries are discarded, never repaired.
func validIdea(idea GeneratedIdea) bool {
	switch {
	case idea.Title == "",
		len(idea.Description) < minDescriptionLen,
		len(idea.SkillsRequired) < minSkills,
		idea.TargetMarket == "",
		idea.StartupCosts == "",
		len(idea.PotentialChallenges) < minChallenges,
		len(idea.SuccessFactors) < minSuccessFactors,
		len(idea.MarketTrends) == 0,
		idea.SuccessRateEstimate == "",
		idea.EstimatedROI == "",
		idea.EconomicData.GrowthPotential == "",
		idea.EconomicData.MarketSaturation == "",
		idea.EconomicData.CompetitionLevel == "":
		return false
	}

	for _, s := range idea.SkillsRequired {
		if s == "" {
			return false
		}
	}

	return true
}

// filterValid returns the schema-valid subset, preserving order.
func filterValid(ideas []GeneratedIdea) []GeneratedIdea {
	valid := make([]GeneratedIdea, 0, len(ideas))
	for _, idea := range ideas {
		if validIdea(idea) {
			valid = append(valid, idea)
		}
	}
	return valid
}
