// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/bizmatchke/bizmatchke/internal/model"
)

// RegisterRequest represents the request body for creating an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents the request body for renaming a profile.
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
}

// UpdatePasswordRequest represents the request body for a password change.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UserResponse is the minimal user shape returned by register and login.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// AuthResponse wraps the user returned by register and login.
type AuthResponse struct {
	User UserResponse `json:"user"`
}

// ProfileResponse is the full profile shape returned by /api/auth/me.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SuccessResponse is the generic acknowledgement body.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a Profile model to the session user shape.
func ToUserResponse(profile *model.Profile) UserResponse {
	return UserResponse{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
	}
}

// ToProfileResponse converts a Profile model to ProfileResponse.
func ToProfileResponse(profile *model.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		CreatedAt: profile.CreatedAt,
	}
}
