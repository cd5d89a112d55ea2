package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// Common errors for profile repository operations.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// CreateProfile inserts a new profile into the database.
func (r *Repository) CreateProfile(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password_hash, full_name, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.PasswordHash,
		profile.FullName,
		profile.AvatarURL,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// GetProfileByID retrieves a profile by its ID.
func (r *Repository) GetProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}

	return profile, nil
}

// GetProfileByEmail retrieves a profile by its email address.
func (r *Repository) GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, avatar_url, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return profile, nil
}

// UpdateProfileName updates a profile's display name.
func (r *Repository) UpdateProfileName(ctx context.Context, id, fullName string) error {
	query := `
		UPDATE profiles
		SET full_name = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, fullName)
	if err != nil {
		return fmt.Errorf("failed to update profile name: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// UpdatePasswordHash replaces a profile's password hash.
func (r *Repository) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	query := `
		UPDATE profiles
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// scanProfile scans a single row into a Profile model.
func scanProfile(row pgx.Row) (*model.Profile, error) {
	var profile model.Profile
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	return &profile, err
}
