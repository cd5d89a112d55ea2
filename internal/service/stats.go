package service

import (
	"context"
	"fmt"

	"github.com/bizmatchke/bizmatchke/internal/model"
	"github.com/bizmatchke/bizmatchke/internal/repository"
)

// StatsService aggregates dashboard statistics.
type StatsService struct {
	repo *repository.Repository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo *repository.Repository) *StatsService {
	return &StatsService{repo: repo}
}

// GetStats returns the user's dashboard aggregates.
func (s *StatsService) GetStats(ctx context.Context, userID string) (*model.Stats, error) {
	stats, err := s.repo.GetStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}
