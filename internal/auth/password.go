package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"gigbook/internal/validation"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// dummyPasswordHash is compared against when the account does not exist so
// unknown and known usernames take the same time to reject.
var dummyPasswordHash = []byte("$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC")

// HashPassword returns the bcrypt hash of password. Passwords longer than
// MaxPasswordBytes are reported as a validation error on "password".
func HashPassword(password string) ([]byte, error) {
	if len(password) > MaxPasswordBytes {
		return nil, validation.New("password",
			fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// BurnPasswordCheck performs a throwaway comparison for missing accounts.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
}
