package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes password with bcrypt at cost. bcrypt substitutes DefaultCost for
// a cost below MinCost.
func HashPassword(password string, cost int) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword compares password with a stored hash.
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
