// Package auth provides password hashing and session-cookie handling.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing. Must stay >= 10.
const bcryptCost = 12

// ErrPasswordTooLong indicates the password exceeds bcrypt's 72-byte limit.
var ErrPasswordTooLong = errors.New("password exceeds maximum length")

// HashPassword creates a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword checks if the password matches the stored hash.
// bcrypt comparison is constant-time.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
