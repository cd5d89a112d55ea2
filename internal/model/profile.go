// Package model defines domain entities for the application.
package model

import "time"

// Profile represents a registered user account.
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionUser is the minimal user projection stored in the session cookie.
type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Session is the client-held session state. It lives entirely in a
// signed cookie; there is no server-side session table.
type Session struct {
	User    SessionUser `json:"user"`
	Expires time.Time   `json:"expires"`
}

// IsExpired reports whether the session expiry has passed.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.Expires)
}

// SessionUserFromProfile builds the cookie projection for a profile.
func SessionUserFromProfile(p *Profile) SessionUser {
	return SessionUser{
		ID:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
	}
}
