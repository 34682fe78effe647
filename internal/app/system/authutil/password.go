// Package authutil provides bcrypt hashing and strength checks for the
// operator credential. The service has exactly one password, configured
// at startup; there are no user-managed passwords.
package authutil

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	BcryptCost        = 12
)

var (
	ErrPasswordTooShort = errors.New("operator password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("operator password must be less than 128 characters")
	ErrPasswordCommon   = errors.New("operator password is too common; choose a different one")
)

// weakPasswords are values nobody should guard an admin dashboard with.
// The configured dev default is rejected separately during config
// validation; this list catches the obvious substitutes.
var weakPasswords = map[string]bool{
	"12345678":  true,
	"123456789": true,
	"password":  true,
	"password1": true,
	"qwerty123": true,
	"admin123":  true,
	"letmein1":  true,
	"welcome1":  true,
	"changeme":  true,
	"iloveyou":  true,
	"sunshine":  true,
	"superman":  true,
}

// ValidatePassword checks whether a password is acceptable for the
// operator credential. Returns nil if valid, or an error describing
// the issue.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	if weakPasswords[strings.ToLower(password)] {
		return ErrPasswordCommon
	}
	return nil
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plain-text password with a bcrypt hash.
// Returns true if the password matches, false otherwise.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
