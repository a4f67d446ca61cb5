package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// bcrypt generates a fresh random salt per call and embeds it in the
// resulting digest, so two hashes of the same password never compare equal
// as strings; use [ComparePassword] for verification.
//
// The cost parameter is the bcrypt work factor. Values below
// [bcrypt.MinCost] fall back to [bcrypt.DefaultCost]. Hashing is
// deliberately expensive: the work factor is a security parameter, not a
// performance knob.
//
// Parameters:
//
//	password - the plaintext password to hash
//	cost     - bcrypt work factor (e.g. 10)
//
// Returns:
//
//	string - the bcrypt digest, safe to persist
//	error  - non-nil if the password exceeds bcrypt's length limit or hashing fails
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether the plaintext password matches the stored
// bcrypt digest. Returns nil on match and an error otherwise.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
