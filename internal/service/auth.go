// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bizmatchke/bizmatchke/internal/auth"
	"github.com/bizmatchke/bizmatchke/internal/metrics"
	"github.com/bizmatchke/bizmatchke/internal/model"
	"github.com/bizmatchke/bizmatchke/internal/repository"
)

// Auth service errors.
var (
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrFullNameRequired   = errors.New("full name is required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrProfileNotFound    = errors.New("profile not found")
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles registration, login, and profile management.
type AuthService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{repo: repo, metrics: recorder}
}

// RegisterInput defines input for creating an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.Profile, error) {
	email := normalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)

	if err := validateRegistration(email, input.Password, fullName); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile := &model.Profile{
		ID:           newID(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	s.metrics.IncUserRegistered()

	return profile, nil
}

// Login verifies credentials and returns the matching profile. Unknown
// email and wrong password return the same error so nothing leaks about
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Profile, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			s.metrics.IncAuthFailure()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if !auth.VerifyPassword(password, profile.PasswordHash) {
		s.metrics.IncAuthFailure()
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncUserLoggedIn()

	return profile, nil
}

// GetProfile returns the profile for an authenticated user.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.repo.GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile changes the display name and returns the fresh profile.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, fullName string) (*model.Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrFullNameRequired
	}

	if err := s.repo.UpdateProfileName(ctx, userID, fullName); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(ctx, userID)
}

// UpdatePassword verifies the current password before replacing it.
func (s *AuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	profile, err := s.repo.GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if !auth.VerifyPassword(currentPassword, profile.PasswordHash) {
		s.metrics.IncAuthFailure()
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func validateRegistration(email, password, fullName string) error {
	switch {
	case email == "":
		return ErrEmailRequired
	case !emailRegex.MatchString(email):
		return ErrInvalidEmail
	case password == "":
		return ErrPasswordRequired
	case len(password) < minPasswordLength:
		return ErrPasswordTooShort
	case fullName == "":
		return ErrFullNameRequired
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
