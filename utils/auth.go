// utils/auth.go
package utils

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// NewSessionToken returns an opaque identifier for the session cookie.
// Nothing about the user is derivable from it; the token is only a key
// into the server-side session store.
func NewSessionToken() string {
	return uuid.NewString()
}
