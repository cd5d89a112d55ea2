package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizmatchke/bizmatchke/internal/finance"
	"github.com/bizmatchke/bizmatchke/internal/metrics"
	"github.com/bizmatchke/bizmatchke/internal/model"
	"github.com/bizmatchke/bizmatchke/internal/repository"
)

// ErrProjectionNotFound indicates the projection is absent or not owned
// by the caller.
var ErrProjectionNotFound = errors.New("financial projection not found")

// ProjectionService handles financial projection logic.
type ProjectionService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService(repo *repository.Repository, recorder metrics.Recorder) *ProjectionService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ProjectionService{repo: repo, metrics: recorder}
}

// CreateProjectionInput defines input for a new projection.
type CreateProjectionInput struct {
	IdeaID           string
	StartupCosts     float64
	MonthlyExpenses  float64
	ProjectedRevenue float64
	BreakEvenMonths  int
	WorkingCapital   float64
	GrowthRate       float64
	FixedCostPct     float64
	VariableCostPct  float64
}

// CreateProjection validates the inputs, derives the full metrics set,
// and persists both. The parent idea must exist and belong to the user.
func (s *ProjectionService) CreateProjection(ctx context.Context, userID string, input CreateProjectionInput) (*model.FinancialProjection, error) {
	inputs := finance.Inputs{
		StartupCosts:     input.StartupCosts,
		MonthlyExpenses:  input.MonthlyExpenses,
		ProjectedRevenue: input.ProjectedRevenue,
		BreakEvenMonths:  input.BreakEvenMonths,
		FixedCostPct:     input.FixedCostPct,
		VariableCostPct:  input.VariableCostPct,
	}

	metricsBlob, err := finance.Compute(inputs)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.IdeaExists(ctx, input.IdeaID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check idea: %w", err)
	}
	if !exists {
		return nil, ErrIdeaNotFound
	}

	now := time.Now().UTC()
	projection := &model.FinancialProjection{
		ID:               newID(),
		UserID:           userID,
		IdeaID:           input.IdeaID,
		StartupCosts:     input.StartupCosts,
		MonthlyExpenses:  input.MonthlyExpenses,
		ProjectedRevenue: input.ProjectedRevenue,
		BreakEvenMonths:  input.BreakEvenMonths,
		WorkingCapital:   input.WorkingCapital,
		GrowthRate:       input.GrowthRate,
		Metrics:          metricsBlob,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.CreateProjection(ctx, projection); err != nil {
		return nil, fmt.Errorf("failed to create projection: %w", err)
	}

	s.metrics.IncProjectionCreated()

	return projection, nil
}

// ListProjections returns the user's projections with idea summaries.
func (s *ProjectionService) ListProjections(ctx context.Context, userID string) ([]*model.FinancialProjection, error) {
	projections, err := s.repo.ListProjections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projections: %w", err)
	}
	return projections, nil
}

// GetProjection returns one projection with its idea summary.
func (s *ProjectionService) GetProjection(ctx context.Context, id, userID string) (*model.FinancialProjection, error) {
	projection, err := s.repo.GetProjectionByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectionNotFound) {
			return nil, ErrProjectionNotFound
		}
		return nil, fmt.Errorf("failed to get projection: %w", err)
	}
	return projection, nil
}

// DeleteProjection removes one projection scoped to its owner.
func (s *ProjectionService) DeleteProjection(ctx context.Context, id, userID string) error {
	if err := s.repo.DeleteProjection(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrProjectionNotFound) {
			return ErrProjectionNotFound
		}
		return fmt.Errorf("failed to delete projection: %w", err)
	}

	s.metrics.IncProjectionDeleted()

	return nil
}
