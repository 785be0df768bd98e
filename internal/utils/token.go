package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewAdminToken returns a 64-character hex token from 32 random
// bytes. Uniqueness is not checked here; the unique index on
// users.admin_token is the backstop, and a collision surfaces as a
// store error rather than a retry.
func NewAdminToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
