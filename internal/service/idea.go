package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bizmatchke/bizmatchke/internal/metrics"
	"github.com/bizmatchke/bizmatchke/internal/model"
	"github.com/bizmatchke/bizmatchke/internal/repository"
)

// Idea service errors.
var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrIndustryRequired    = errors.New("industry is required")
	ErrLocationRequired    = errors.New("location is required")
	ErrInvalidInvestment   = errors.New("investment range is invalid")
	ErrIdeaNotFound        = errors.New("business idea not found")
)

// IdeaService handles business idea CRUD logic.
type IdeaService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewIdeaService creates a new IdeaService.
func NewIdeaService(repo *repository.Repository, recorder metrics.Recorder) *IdeaService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &IdeaService{repo: repo, metrics: recorder}
}

// CreateIdeaInput defines input for saving a business idea. Enrichment
// fields are optional; hand-entered ideas leave them empty.
type CreateIdeaInput struct {
	Title         string
	Description   string
	Industry      string
	Location      string
	InvestmentMin float64
	InvestmentMax float64

	SkillsRequired      []string
	TargetMarket        string
	PotentialChallenges []string
	SuccessFactors      []string
	MarketTrends        []string
	SuccessRateEstimate string
	EstimatedROI        string
	EconomicData        model.EconomicData
}

// CreateIdea validates and persists a business idea for the user.
func (s *IdeaService) CreateIdea(ctx context.Context, userID string, input CreateIdeaInput) (*model.BusinessIdea, error) {
	if err := validateIdeaInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	idea := &model.BusinessIdea{
		ID:            newID(),
		UserID:        userID,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Industry:      strings.TrimSpace(input.Industry),
		Location:      strings.TrimSpace(input.Location),
		InvestmentMin: input.InvestmentMin,
		InvestmentMax: input.InvestmentMax,

		SkillsRequired:      emptyIfNil(input.SkillsRequired),
		TargetMarket:        input.TargetMarket,
		PotentialChallenges: emptyIfNil(input.PotentialChallenges),
		SuccessFactors:      emptyIfNil(input.SuccessFactors),
		MarketTrends:        emptyIfNil(input.MarketTrends),
		SuccessRateEstimate: input.SuccessRateEstimate,
		EstimatedROI:        input.EstimatedROI,
		EconomicData:        input.EconomicData,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateIdea(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	s.metrics.IncIdeaCreated()

	return idea, nil
}

// ListIdeas returns all of the user's ideas, newest first.
func (s *IdeaService) ListIdeas(ctx context.Context, userID string) ([]*model.BusinessIdea, error) {
	ideas, err := s.repo.ListIdeas(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return ideas, nil
}

// DeleteIdea removes an idea and its projections atomically.
func (s *IdeaService) DeleteIdea(ctx context.Context, ideaID, userID string) error {
	if err := s.repo.DeleteIdea(ctx, ideaID, userID); err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return ErrIdeaNotFound
		}
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	s.metrics.IncIdeaDeleted()

	return nil
}

func validateIdeaInput(input CreateIdeaInput) error {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return ErrTitleRequired
	case strings.TrimSpace(input.Description) == "":
		return ErrDescriptionRequired
	case strings.TrimSpace(input.Industry) == "":
		return ErrIndustryRequired
	case strings.TrimSpace(input.Location) == "":
		return ErrLocationRequired
	case input.InvestmentMin < 0, input.InvestmentMax < 0,
		input.InvestmentMin > input.InvestmentMax:
		return ErrInvalidInvestment
	}
	return nil
}

// emptyIfNil keeps JSONB columns as [] rather than null.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
