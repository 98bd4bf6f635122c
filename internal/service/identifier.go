package service

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	identifierLength      = 10
	identifierAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	maxIdentifierAttempts = 10
)

var ErrIdentifierExhausted = errors.New("could not generate a unique identifier")

// randomIdentifier returns identifierLength characters drawn uniformly from
// identifierAlphabet.
func randomIdentifier() (string, error) {
	alphabetSize := big.NewInt(int64(len(identifierAlphabet)))
	b := make([]byte, identifierLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b[i] = identifierAlphabet[n.Int64()]
	}
	return string(b), nil
}

// IsIdentifier reports whether s has the shape of a generated identifier.
func IsIdentifier(s string) bool {
	if len(s) != identifierLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
