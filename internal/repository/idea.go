package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// ErrIdeaNotFound indicates the idea does not exist or belongs to another user.
var ErrIdeaNotFound = errors.New("business idea not found")

const ideaColumns = `
	id, user_id, title, description, industry, location,
	investment_min, investment_max,
	skills_required, target_market, potential_challenges, success_factors,
	market_trends, success_rate_estimate, estimated_roi, economic_data,
	created_at, updated_at
`

// CreateIdea inserts a new business idea into the database.
// Enrichment list and object fields are stored as JSONB.
func (r *Repository) CreateIdea(ctx context.Context, idea *model.BusinessIdea) error {
	query := `
		INSERT INTO business_ideas (` + ideaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.pool.Exec(ctx, query,
		idea.ID,
		idea.UserID,
		idea.Title,
		idea.Description,
		idea.Industry,
		idea.Location,
		idea.InvestmentMin,
		idea.InvestmentMax,
		idea.SkillsRequired,
		idea.TargetMarket,
		idea.PotentialChallenges,
		idea.SuccessFactors,
		idea.MarketTrends,
		idea.SuccessRateEstimate,
		idea.EstimatedROI,
		idea.EconomicData,
		idea.CreatedAt,
		idea.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create business idea: %w", err)
	}

	return nil
}

// GetIdeaByID retrieves a business idea scoped to its owner.
func (r *Repository) GetIdeaByID(ctx context.Context, id, userID string) (*model.BusinessIdea, error) {
	query := `
		SELECT ` + ideaColumns + `
		FROM business_ideas
		WHERE id = $1 AND user_id = $2
	`

	idea, err := scanIdea(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to get business idea: %w", err)
	}

	return idea, nil
}

// ListIdeas retrieves all of a user's business ideas, newest first.
func (r *Repository) ListIdeas(ctx context.Context, userID string) ([]*model.BusinessIdea, error) {
	query := `
		SELECT ` + ideaColumns + `
		FROM business_ideas
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list business ideas: %w", err)
	}
	defer rows.Close()

	ideas := []*model.BusinessIdea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business idea: %w", err)
		}
		ideas = append(ideas, idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business ideas: %w", err)
	}

	return ideas, nil
}

// IdeaExists checks that an idea exists and is owned by the user.
func (r *Repository) IdeaExists(ctx context.Context, id, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM business_ideas WHERE id = $1 AND user_id = $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check idea existence: %w", err)
	}

	return exists, nil
}

// DeleteIdea removes an idea and its financial projections in one
// transaction. Partial deletes never become visible: either both the
// projections and the idea row go, or neither does.
func (r *Repository) DeleteIdea(ctx context.Context, id, userID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM financial_projections WHERE idea_id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete idea projections: %w", err)
	}

	result, err := tx.Exec(ctx,
		`DELETE FROM business_ideas WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete business idea: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrIdeaNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit idea delete: %w", err)
	}

	return nil
}

// scanIdea scans a single row into a BusinessIdea model.
// JSONB columns decode directly through pgx's JSON codec.
func scanIdea(row pgx.Row) (*model.BusinessIdea, error) {
	var idea model.BusinessIdea
	err := row.Scan(
		&idea.ID,
		&idea.UserID,
		&idea.Title,
		&idea.Description,
		&idea.Industry,
		&idea.Location,
		&idea.InvestmentMin,
		&idea.InvestmentMax,
		&idea.SkillsRequired,
		&idea.TargetMarket,
		&idea.PotentialChallenges,
		&idea.SuccessFactors,
		&idea.MarketTrends,
		&idea.SuccessRateEstimate,
		&idea.EstimatedROI,
		&idea.EconomicData,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	)
	return &idea, err
}
