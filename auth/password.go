// Package auth holds the password policy shared by the registration
// surfaces and thin helpers over bcrypt.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/saytoai/shared/domain"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 128

	MaxLoginAttempts       = 5
	LockoutDurationMinutes = 30
)

// CheckPolicy validates a plaintext password against the shared policy.
func CheckPolicy(password string) error {
	if len(password) < PasswordMinLength {
		return fmt.Errorf("password shorter than %d characters: %w", PasswordMinLength, domain.ErrBadRequest)
	}
	if len(password) > PasswordMaxLength {
		return fmt.Errorf("password longer than %d characters: %w", PasswordMaxLength, domain.ErrBadRequest)
	}
	return nil
}

// Hash returns the bcrypt hash of a password that passes the policy.
func Hash(password string) (string, error) {
	if err := CheckPolicy(password); err != nil {
		return "", err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Verify reports whether the password matches the stored hash.
func Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
