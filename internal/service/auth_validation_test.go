package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRegisterValidationErrors(t *testing.T) {
	svc := &AuthService{}

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:    "missing_email",
			input:   RegisterInput{Password: "secret1", FullName: "Achieng Odhiambo"},
			wantErr: ErrEmailRequired,
		},
		{
			name:    "malformed_email",
			input:   RegisterInput{Email: "not-an-email", Password: "secret1", FullName: "Achieng Odhiambo"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing_password",
			input:   RegisterInput{Email: "achieng@example.com", FullName: "Achieng Odhiambo"},
			wantErr: ErrPasswordRequired,
		},
		{
			name:    "short_password",
			input:   RegisterInput{Email: "achieng@example.com", Password: "abc", FullName: "Achieng Odhiambo"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "missing_full_name",
			input:   RegisterInput{Email: "achieng@example.com", Password: "secret1"},
			wantErr: ErrFullNameRequired,
		},
		{
			name:    "whitespace_full_name",
			input:   RegisterInput{Email: "achieng@example.com", Password: "secret1", FullName: "   "},
			wantErr: ErrFullNameRequired,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc := &AuthService{}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty_email", "", "secret1"},
		{"empty_password", "user@example.com", ""},
		{"both_empty", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), test.email, test.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestUpdateProfileRequiresName(t *testing.T) {
	svc := &AuthService{}

	_, err := svc.UpdateProfile(context.Background(), "user-1", "  ")
	if !errors.Is(err, ErrFullNameRequired) {
		t.Fatalf("expected ErrFullNameRequired, got %v", err)
	}
}

func TestUpdatePasswordRejectsShortPassword(t *testing.T) {
	svc := &AuthService{}

	err := svc.UpdatePassword(context.Background(), "user-1", "old-secret", "abc")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  Jane.Doe@Example.COM "); got != "jane.doe@example.com" {
		t.Errorf("normalizeEmail: got %q", got)
	}
}

func TestEmailRegex(t *testing.T) {
	valid := []string{"a@b.co", "jane.doe+tag@example.com"}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "@example.com", strings.Repeat("a", 5)}

	for _, email := range valid {
		if !emailRegex.MatchString(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if emailRegex.MatchString(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}
