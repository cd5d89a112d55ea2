// Package main seeds a demo account with sample business ideas and
// financial projections. Intended for local development and demos.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/bizmatchke/bizmatchke/internal/config"
	"github.com/bizmatchke/bizmatchke/internal/model"
	"github.com/bizmatchke/bizmatchke/internal/repository"
	"github.com/bizmatchke/bizmatchke/internal/service"
)

const (
	demoEmail    = "demo@bizmatchke.co.ke"
	demoPassword = "demo-password-123"
	demoFullName = "Demo User"
)

func main() {
	log.Println("Starting seed script...")

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()
	log.Println("Connected to database")

	authService := service.NewAuthService(repo, nil)
	ideaService := service.NewIdeaService(repo, nil)
	projectionService := service.NewProjectionService(repo, nil)

	// Register the demo account, or reuse it if a previous run created it
	profile, err := authService.Register(ctx, service.RegisterInput{
		Email:    demoEmail,
		Password: demoPassword,
		FullName: demoFullName,
	})
	switch {
	case err == nil:
		log.Printf("Created demo account %s", demoEmail)
	case errors.Is(err, service.ErrEmailTaken):
		profile, err = repo.GetProfileByEmail(ctx, demoEmail)
		if err != nil {
			log.Fatalf("Failed to load existing demo account: %v", err)
		}
		log.Printf("Demo account %s already exists, reusing", demoEmail)
	default:
		log.Fatalf("Failed to register demo account: %v", err)
	}

	// Seed sample ideas
	created := 0
	var firstIdea *model.BusinessIdea
	for _, input := range sampleIdeas() {
		idea, err := ideaService.CreateIdea(ctx, profile.ID, input)
		if err != nil {
			log.Fatalf("Failed to create idea %q: %v", input.Title, err)
		}
		if firstIdea == nil {
			firstIdea = idea
		}
		created++
	}
	log.Printf("Created %d sample ideas", created)

	// Seed a projection against the first idea
	projection, err := projectionService.CreateProjection(ctx, profile.ID, service.CreateProjectionInput{
		IdeaID:           firstIdea.ID,
		StartupCosts:     80000,
		MonthlyExpenses:  25000,
		ProjectedRevenue: 45000,
		BreakEvenMonths:  6,
		WorkingCapital:   30000,
		GrowthRate:       5,
	})
	if err != nil {
		log.Fatalf("Failed to create projection: %v", err)
	}
	log.Printf("Created projection %s (monthly profit %.0f KES)", projection.ID, projection.Metrics.MonthlyProfit)

	log.Println("Seed completed successfully!")
	log.Printf("  - Login with %s / %s", demoEmail, demoPassword)
}

// sampleIdeas returns a small catalog of realistic Kenyan business ideas.
func sampleIdeas() []service.CreateIdeaInput {
	return []service.CreateIdeaInput{
		{
			Title:         "Mobile Phone Repair Shop",
			Description:   "Repair and refurbishment service for smartphones and tablets, located near a matatu stage for foot traffic. Offers screen replacement, battery swaps, and software fixes.",
			Industry:      "Technology",
			Location:      "Nairobi",
			InvestmentMin: 30000,
			InvestmentMax: 100000,
			SkillsRequired: []string{
				"Electronics repair",
				"Customer service",
				"Inventory management",
			},
			TargetMarket:        "Smartphone owners in high-density urban estates",
			PotentialChallenges: []string{"Counterfeit spare parts", "Price competition"},
			SuccessFactors:      []string{"Fast turnaround", "Genuine parts sourcing"},
			MarketTrends:        []string{"Rising smartphone penetration"},
			SuccessRateEstimate: "70%",
			EstimatedROI:        "12-18 months",
		},
		{
			Title:         "Poultry Farming for Eggs",
			Description:   "Layer poultry unit supplying eggs to local shops, hotels, and institutions. Starts with 200 birds and scales with retained earnings, using locally mixed feed to control costs.",
			Industry:      "Agriculture",
			Location:      "Nakuru",
			InvestmentMin: 50000,
			InvestmentMax: 150000,
			SkillsRequired: []string{
				"Animal husbandry",
				"Record keeping",
				"Basic veterinary care",
			},
			TargetMarket:        "Local shops, hotels, and schools",
			PotentialChallenges: []string{"Disease outbreaks", "Feed price volatility"},
			SuccessFactors:      []string{"Vaccination discipline", "Reliable buyers"},
			MarketTrends:        []string{"Growing demand for affordable protein"},
			SuccessRateEstimate: "65%",
			EstimatedROI:        "10-14 months",
		},
		{
			Title:         "Second-Hand Clothes (Mitumba) Stall",
			Description:   "Curated mitumba stall focusing on quality office wear sourced from Gikomba bales, sold at an open-air market with M-Pesa payments and a WhatsApp catalog for repeat customers.",
			Industry:      "Retail",
			Location:      "Kisumu",
			InvestmentMin: 15000,
			InvestmentMax: 60000,
			SkillsRequired: []string{
				"Bale selection",
				"Pricing",
				"Social media marketing",
			},
			TargetMarket:        "Young professionals and students",
			PotentialChallenges: []string{"Bale quality variance", "Market fees"},
			SuccessFactors:      []string{"Good sourcing relationships", "Repeat customers"},
			MarketTrends:        []string{"Online reselling via WhatsApp and Instagram"},
			SuccessRateEstimate: "75%",
			EstimatedROI:        "6-10 months",
		},
	}
}
