package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// ErrProjectionNotFound indicates the projection does not exist or belongs
// to another user.
var ErrProjectionNotFound = errors.New("financial projection not found")

// CreateProjection inserts a new financial projection. Raw inputs are
// stored as columns, the derived metrics as a JSONB blob.
func (r *Repository) CreateProjection(ctx context.Context, projection *model.FinancialProjection) error {
	query := `
		INSERT INTO financial_projections (
			id, user_id, idea_id,
			startup_costs, monthly_expenses, projected_revenue, break_even_months,
			working_capital, growth_rate, metrics,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		projection.ID,
		projection.UserID,
		projection.IdeaID,
		projection.StartupCosts,
		projection.MonthlyExpenses,
		projection.ProjectedRevenue,
		projection.BreakEvenMonths,
		projection.WorkingCapital,
		projection.GrowthRate,
		projection.Metrics,
		projection.CreatedAt,
		projection.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create financial projection: %w", err)
	}

	return nil
}

const projectionJoinQuery = `
	SELECT
		fp.id, fp.user_id, fp.idea_id,
		fp.startup_costs, fp.monthly_expenses, fp.projected_revenue, fp.break_even_months,
		fp.working_capital, fp.growth_rate, fp.metrics,
		fp.created_at, fp.updated_at,
		bi.title, bi.description, bi.industry, bi.location
	FROM financial_projections fp
	JOIN business_ideas bi ON fp.idea_id = bi.id
`

// GetProjectionByID retrieves a projection with its parent idea summary,
// scoped to the owner.
func (r *Repository) GetProjectionByID(ctx context.Context, id, userID string) (*model.FinancialProjection, error) {
	query := projectionJoinQuery + `
		WHERE fp.id = $1 AND fp.user_id = $2
	`

	projection, err := scanProjection(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectionNotFound
		}
		return nil, fmt.Errorf("failed to get financial projection: %w", err)
	}

	return projection, nil
}

// ListProjections retrieves all of a user's projections with their parent
// idea summaries, newest first.
func (r *Repository) ListProjections(ctx context.Context, userID string) ([]*model.FinancialProjection, error) {
	query := projectionJoinQuery + `
		WHERE fp.user_id = $1
		ORDER BY fp.created_at DESC, fp.id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial projections: %w", err)
	}
	defer rows.Close()

	projections := []*model.FinancialProjection{}
	for rows.Next() {
		projection, err := scanProjection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan financial projection: %w", err)
		}
		projections = append(projections, projection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating financial projections: %w", err)
	}

	return projections, nil
}

// DeleteProjection removes a single projection scoped to its owner.
func (r *Repository) DeleteProjection(ctx context.Context, id, userID string) error {
	query := `DELETE FROM financial_projections WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete financial projection: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProjectionNotFound
	}

	return nil
}

// scanProjection scans a joined projection row, including the idea summary.
func scanProjection(row pgx.Row) (*model.FinancialProjection, error) {
	var (
		projection model.FinancialProjection
		summary    model.IdeaSummary
	)
	err := row.Scan(
		&projection.ID,
		&projection.UserID,
		&projection.IdeaID,
		&projection.StartupCosts,
		&projection.MonthlyExpenses,
		&projection.ProjectedRevenue,
		&projection.BreakEvenMonths,
		&projection.WorkingCapital,
		&projection.GrowthRate,
		&projection.Metrics,
		&projection.CreatedAt,
		&projection.UpdatedAt,
		&summary.Title,
		&summary.Description,
		&summary.Industry,
		&summary.Location,
	)
	if err != nil {
		return nil, err
	}

	projection.BusinessIdea = &summary
	return &projection, nil
}
