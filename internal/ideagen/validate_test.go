package ideagen

import (
	"strings"
	"testing"
)

func TestValidIdea(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratedIdea)
		want   bool
	}{
		{"complete", func(i *GeneratedIdea) {}, true},
		{"missing_title", func(i *GeneratedIdea) { i.Title = "" }, false},
		{"short_description", func(i *GeneratedIdea) { i.Description = strings.Repeat("x", minDescriptionLen-1) }, false},
		{"boundary_description", func(i *GeneratedIdea) { i.Description = strings.Repeat("x", minDescriptionLen) }, true},
		{"two_skills", func(i *GeneratedIdea) { i.SkillsRequired = i.SkillsRequired[:2] }, false},
		{"empty_skill", func(i *GeneratedIdea) { i.SkillsRequired[1] = "" }, false},
		{"one_challenge", func(i *GeneratedIdea) { i.PotentialChallenges = i.PotentialChallenges[:1] }, false},
		{"one_success_factor", func(i *GeneratedIdea) { i.SuccessFactors = i.SuccessFactors[:1] }, false},
		{"no_trends", func(i *GeneratedIdea) { i.MarketTrends = nil }, false},
		{"missing_target_market", func(i *GeneratedIdea) { i.TargetMarket = "" }, false},
		{"missing_startup_costs", func(i *GeneratedIdea) { i.StartupCosts = "" }, false},
		{"missing_success_rate", func(i *GeneratedIdea) { i.SuccessRateEstimate = "" }, false},
		{"missing_roi", func(i *GeneratedIdea) { i.EstimatedROI = "" }, false},
		{"missing_growth_potential", func(i *GeneratedIdea) { i.EconomicData.GrowthPotential = "" }, false},
		{"missing_competition_level", func(i *GeneratedIdea) { i.EconomicData.CompetitionLevel = "" }, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			idea := fullModelIdea(1)
			test.mutate(&idea)
			if got := validIdea(idea); got != test.want {
				t.Fatalf("expected %v, got %v", test.want, got)
			}
		})
	}
}

func TestFilterValidPreservesOrder(t *testing.T) {
	ideas := []GeneratedIdea{
		fullModelIdea(1),
		{Title: "Invalid"},
		fullModelIdea(2),
	}

	valid := filterValid(ideas)
	if len(valid) != 2 {
		t.Fatalf("expected 2 valid ideas, got %d", len(valid))
	}
	if valid[0].Title != "Custom Furniture Workshop 1" || valid[1].Title != "Custom Furniture Workshop 2" {
		t.Errorf("order not preserved: %q, %q", valid[0].Title, valid[1].Title)
	}
}
