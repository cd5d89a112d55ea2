// Package testutil provides helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 254254

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// migrationNames lists every migration in apply order.
var migrationNames = []string{
	"000001_profiles",
	"000002_business_ideas",
	"000003_financial_projections",
}

// ResetSchema drops and recreates the full schema for tests. Down
// migrations run in reverse order so foreign keys never block the drop.
func ResetSchema(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	for i := len(migrationNames) - 1; i >= 0; i-- {
		if err := applyMigration(ctx, pool, root, migrationNames[i]+".down.sql"); err != nil {
			return err
		}
	}

	for _, name := range migrationNames {
		if err := applyMigration(ctx, pool, root, name+".up.sql"); err != nil {
			return err
		}
	}

	return nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, root, filename string) error {
	sql, err := os.ReadFile(filepath.Join(root, "migrations", filename))
	if err != nil {
		return fmt.Errorf("read migration %s: %w", filename, err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply migration %s: %w", filename, err)
	}
	return nil
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestProfile creates a test profile with sensible defaults.
func NewTestProfile(t testing.TB, email string) *model.Profile {
	t.Helper()
	now := time.Now().UTC()
	return &model.Profile{
		ID:           UniqueID("profile"),
		Email:        email,
		PasswordHash: "$2a$12$test-hash-placeholder-not-a-real-hash-value",
		FullName:     "Test User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewTestIdea creates a test business idea owned by the given user.
func NewTestIdea(t testing.TB, userID string) *model.BusinessIdea {
	t.Helper()
	now := time.Now().UTC()
	return &model.BusinessIdea{
		ID:            UniqueID("idea"),
		UserID:        userID,
		Title:         "Mobile Phone Repair Shop",
		Description:   "Repair services for smartphones and accessories in a high-footfall area.",
		Industry:      "Technology",
		Location:      "Nairobi",
		InvestmentMin: 20000,
		InvestmentMax: 50000,
		SkillsRequired: []string{
			"Electronics Repair", "Customer Service", "Inventory Management",
		},
		TargetMarket:        "Smartphone owners in Nairobi CBD",
		PotentialChallenges: []string{"Spare part sourcing", "Competition"},
		SuccessFactors:      []string{"Fast turnaround", "Fair pricing"},
		MarketTrends:        []string{"Growing smartphone penetration"},
		SuccessRateEstimate: "High - steady repair demand",
		EstimatedROI:        "40% within 12 months",
		EconomicData: model.EconomicData{
			GrowthPotential:  "High",
			MarketSaturation: "Medium",
			CompetitionLevel: "Medium",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestProjection creates a test projection linking a user and idea.
// Metrics are left zero; tests that care compute them via finance.Compute.
func NewTestProjection(t testing.TB, userID, ideaID string) *model.FinancialProjection {
	t.Helper()
	now := time.Now().UTC()
	return &model.FinancialProjection{
		ID:               UniqueID("proj"),
		UserID:           userID,
		IdeaID:           ideaID,
		StartupCosts:     30000,
		MonthlyExpenses:  8000,
		ProjectedRevenue: 15000,
		BreakEvenMonths:  5,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// UniqueEmail generates a unique email address for tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
