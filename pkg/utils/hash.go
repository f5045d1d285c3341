package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the rest of the platform's stored hashes use.
const bcryptCost = 10

// HashPassword hashes a plain password using bcrypt with a per-hash salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a plain password with a stored bcrypt hash.
func CheckPassword(plain, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
