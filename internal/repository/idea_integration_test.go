//go:build integration

package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bizmatchke/bizmatchke/internal/testutil"
)

// ============================================================================
// Business Idea Repository Integration Tests
// ============================================================================

func TestIntegrationIdeaRepository_CreateIdea(t *testing.T) {
	ctx, repo := newTestEnv(t)
	userID := seedProfile(ctx, t, repo)

	idea := testutil.NewTestIdea(t, userID)
	if err := repo.CreateIdea(ctx, idea); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	retrieved, err := repo.GetIdeaByID(ctx, idea.ID, userID)
	if err != nil {
		t.Fatalf("GetIdeaByID failed: %v", err)
	}

	if retrieved.Title != idea.Title {
		t.Errorf("Title mismatch: got %q, want %q", retrieved.Title, idea.Title)
	}
	if !reflect.DeepEqual(retrieved.SkillsRequired, idea.SkillsRequired) {
		t.Errorf("SkillsRequired mismatch: got %v, want %v", retrieved.SkillsRequired, idea.SkillsRequired)
	}
	if retrieved.EconomicData != idea.EconomicData {
		t.Errorf("EconomicData mismatch: got %+v, want %+v", retrieved.EconomicData, idea.EconomicData)
	}
}

func TestIntegrationIdeaRepository_GetIdeaByID_WrongOwner(t *testing.T) {
	ctx, repo := newTestEnv(t)
	userID := seedProfile(ctx, t, repo)
	otherID := seedProfile(ctx, t, repo)

	idea := testutil.NewTestIdea(t, userID)
	if err := repo.CreateIdea(ctx, idea); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	_, err := repo.GetIdeaByID(ctx, idea.ID, otherID)
	if !errors.Is(err, ErrIdeaNotFound) {
		t.Errorf("Expected ErrIdeaNotFound for wrong owner, got: %v", err)
	}
}

func TestIntegrationIdeaRepository_ListIdeas_NewestFirst(t *testing.T) {
	ctx, repo := newTestEnv(t)
	userID := seedProfile(ctx, t, repo)

	base := time.Now().UTC().Add(-time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		idea := testutil.NewTestIdea(t, userID)
		idea.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		idea.UpdatedAt = idea.CreatedAt
		if err := repo.CreateIdea(ctx, idea); err != nil {
			t.Fatalf("CreateIdea failed: %v", err)
		}
		ids = append(ids, idea.ID)
	}

	ideas, err := repo.ListIdeas(ctx, userID)
	if err != nil {
		t.Fatalf("ListIdeas failed: %v", err)
	}

	if len(ideas) != 3 {
		t.Fatalf("Expected 3 ideas, got %d", len(ideas))
	}
	// Newest first: last created should lead.
	if ideas[0].ID != ids[2] || ideas[2].ID != ids[0] {
		t.Errorf("Unexpected order: got %q first, want %q", ideas[0].ID, ids[2])
	}
}

func TestIntegrationIdeaRepository_ListIdeas_ScopedToOwner(t *testing.T) {
	ctx, repo := newTestEnv(t)
	userID := seedProfile(ctx, t, repo)
	otherID := seedProfile(ctx, t, repo)

	if err := repo.CreateIdea(ctx, testutil.NewTestIdea(t, userID)); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	ideas, err := repo.ListIdeas(ctx, otherID)
	if err != nil {
		t.Fatalf("ListIdeas failed: %v", err)
	}
	if len(ideas) != 0 {
		t.Errorf("Expected no ideas for other owner, got %d", len(ideas))
	}
}

func TestIntegrationIdeaRepository_DeleteIdea_CascadesProjections(t *testing.T) {
	ctx, repo := newTestEnv(t)
	userID := seedProfile(ctx, t, repo)

	idea := testutil.NewTestIdea(t, userID)
	if err := repo.CreateIdea(ctx, idea); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	projection := testutil.NewTestProjection(t, userID, idea.ID)
	if err := repo.CreateProjection(ctx, projection); err != nil {
		t.Fatalf("CreateProjection failed: %v", err)
	}

	if err := repo.DeleteIdea(ctx, idea.ID, userID); err != nil {
		t.Fatalf("DeleteIdea failed: %v", err)
	}

	if _, err := repo.GetIdeaByID(ctx, idea.ID, userID); !errors.Is(err, ErrIdeaNotFound) {
		t.Errorf("Expected ErrIdeaNotFound after delete, got: %v", err)
	}
	if _, err := repo.GetProjectionByID(ctx, projection.ID, userID); !errors.Is(err, ErrProjectionNotFound) {
		t.Errorf("Expected projections to be deleted with the idea, got: %v", err)
	}
}

func TestIntegrationIdeaRepository_DeleteIdea_WrongOwnerKeepsEverything(t *testing.T) {
	ctx, repo := newTestEnv(t)
	userID := seedProfile(ctx, t, repo)
	otherID := seedProfile(ctx, t, repo)

	idea := testutil.NewTestIdea(t, userID)
	if err := repo.CreateIdea(ctx, idea); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}
	projection := testutil.NewTestProjection(t, userID, idea.ID)
	if err := repo.CreateProjection(ctx, projection); err != nil {
		t.Fatalf("CreateProjection failed: %v", err)
	}

	err := repo.DeleteIdea(ctx, idea.ID, otherID)
	if !errors.Is(err, ErrIdeaNotFound) {
		t.Fatalf("Expected ErrIdeaNotFound for wrong owner, got: %v", err)
	}

	// The rolled-back transaction must leave both rows intact.
	if _, err := repo.GetIdeaByID(ctx, idea.ID, userID); err != nil {
		t.Errorf("Idea should survive a failed delete: %v", err)
	}
	if _, err := repo.GetProjectionByID(ctx, projection.ID, userID); err != nil {
		t.Errorf("Projection should survive a failed delete: %v", err)
	}
}

func TestIntegrationIdeaRepository_IdeaExists(t *testing.T) {
	ctx, repo := newTestEnv(t)
	userID := seedProfile(ctx, t, repo)

	idea := testutil.NewTestIdea(t, userID)

	exists, err := repo.IdeaExists(ctx, idea.ID, userID)
	if err != nil {
		t.Fatalf("IdeaExists failed: %v", err)
	}
	if exists {
		t.Error("Idea should not exist before creation")
	}

	if err := repo.CreateIdea(ctx, idea); err != nil {
		t.Fatalf("CreateIdea failed: %v", err)
	}

	exists, err = repo.IdeaExists(ctx, idea.ID, userID)
	if err != nil {
		t.Fatalf("IdeaExists (after create) failed: %v", err)
	}
	if !exists {
		t.Error("Idea should exist after creation")
	}
}

// seedProfile creates a throwaway owner row for FK constraints.
func seedProfile(ctx context.Context, t *testing.T, repo *Repository) string {
	t.Helper()
	profile := testutil.NewTestProfile(t, testutil.UniqueEmail("owner"))
	if err := repo.CreateProfile(ctx, profile); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile.ID
}
