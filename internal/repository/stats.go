package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

const recentItemsLimit = 5

// GetStats aggregates one user's dashboard statistics.
func (r *Repository) GetStats(ctx context.Context, userID string) (*model.Stats, error) {
	stats := &model.Stats{
		IdeasByIndustry: map[string]int{},
		IdeasByLocation: map[string]int{},
	}

	query := `SELECT COUNT(*) FROM business_ideas WHERE user_id = $1`
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&stats.TotalIdeas); err != nil {
		return nil, fmt.Errorf("failed to count business ideas: %w", err)
	}
	stats.SavedIdeas = stats.TotalIdeas

	query = `
		SELECT COUNT(*), COALESCE(AVG(startup_costs), 0), COALESCE(AVG(break_even_months), 0)
		FROM financial_projections
		WHERE user_id = $1
	`
	var avgStartup, avgBreakEven float64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&stats.FinancialProjections, &avgStartup, &avgBreakEven); err != nil {
		return nil, fmt.Errorf("failed to aggregate projections: %w", err)
	}
	stats.AverageStartupCost = int(math.Round(avgStartup))
	stats.AverageBreakEven = int(math.Round(avgBreakEven))

	if err := r.ideaCountsBy(ctx, userID, "industry", stats.IdeasByIndustry); err != nil {
		return nil, err
	}
	if err := r.ideaCountsBy(ctx, userID, "location", stats.IdeasByLocation); err != nil {
		return nil, err
	}

	recentIdeas, err := r.recentIdeas(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.RecentIdeas = recentIdeas

	recentProjections, err := r.recentProjections(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.RecentProjections = recentProjections

	return stats, nil
}

// ideaCountsBy fills counts grouped by the given column.
// column is always a compile-time constant, never user input.
func (r *Repository) ideaCountsBy(ctx context.Context, userID, column string, into map[string]int) error {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM business_ideas
		WHERE user_id = $1
		GROUP BY %s
	`, column, column)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to group ideas by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		into[key] = count
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating %s counts: %w", column, err)
	}

	return nil
}

func (r *Repository) recentIdeas(ctx context.Context, userID string) ([]*model.BusinessIdea, error) {
	query := `
		SELECT ` + ideaColumns + `
		FROM business_ideas
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, recentItemsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent ideas: %w", err)
	}
	defer rows.Close()

	ideas := []*model.BusinessIdea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent idea: %w", err)
		}
		ideas = append(ideas, idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent ideas: %w", err)
	}

	return ideas, nil
}

func (r *Repository) recentProjections(ctx context.Context, userID string) ([]*model.FinancialProjection, error) {
	query := projectionJoinQuery + `
		WHERE fp.user_id = $1
		ORDER BY fp.created_at DESC, fp.id DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, recentItemsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent projections: %w", err)
	}
	defer rows.Close()

	projections := []*model.FinancialProjection{}
	for rows.Next() {
		projection, err := scanProjection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent projection: %w", err)
		}
		projections = append(projections, projection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent projections: %w", err)
	}

	return projections, nil
}
