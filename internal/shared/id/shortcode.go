// Package id generates the short lookup codes attached to applications.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Lowercase hex alphabet. Six characters give a 16.7M code space,
	// plenty for one code per application.
	alphabet = "0123456789abcdef"

	// CodeLength is the length of generated short codes.
	CodeLength = 6
)

// GenerateCode creates a random short code of CodeLength hex characters.
// The code is cryptographically random; uniqueness is enforced by the
// short-code index, not here.
func GenerateCode() (string, error) {
	result := make([]byte, CodeLength)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < CodeLength; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NormalizeCode lowercases a user-supplied code so lookups are
// case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// IsValidCode reports whether a string looks like a short code.
func IsValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, c := range code {
		if !strings.ContainsRune(alphabet, c) {
			return false
		}
	}
	return true
}
