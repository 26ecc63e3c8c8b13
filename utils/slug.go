package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSlug returns an unguessable URL token for a place's public feedback link.
func NewSlug() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
