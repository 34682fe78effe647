package authutil

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "correct-horse-battery", nil},
		{"exactly minimum length", "abcdefgh", nil},
		{"too short", "abc1234", ErrPasswordTooShort},
		{"empty", "", ErrPasswordTooShort},
		{"too long", strings.Repeat("a", 129), ErrPasswordTooLong},
		{"exactly maximum length", strings.Repeat("a", 128), nil},
		{"common password", "password", ErrPasswordCommon},
		{"common password uppercased", "PASSWORD1", ErrPasswordCommon},
		{"common admin password", "admin123", ErrPasswordCommon},
		{"changeme", "ChangeMe", ErrPasswordCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	const password = "operator-secret-9"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == password {
		t.Fatal("hash equals plain-text password")
	}

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword("operator-secret-8", hash) {
		t.Error("CheckPassword accepted a wrong password")
	}
	if CheckPassword(password, "not-a-bcrypt-hash") {
		t.Error("CheckPassword accepted a malformed hash")
	}
}

func TestHashPasswordCost(t *testing.T) {
	hash, err := HashPassword("operator-secret-9")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost: %v", err)
	}
	if cost != BcryptCost {
		t.Errorf("cost = %d, want %d", cost, BcryptCost)
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("operator-secret-9")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("operator-secret-9")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}
}
