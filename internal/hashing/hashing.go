// Package hashing wraps password hashing and verification for the
// authentication flows.
package hashing

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash derives a password hash suitable for storage in the users table.
func Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
