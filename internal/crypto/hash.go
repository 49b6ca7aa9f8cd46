package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost factor. 10 keeps hashing around ~100ms on
// commodity hardware, which is enough to resist offline brute force.
const hashCost = 10

// HashPassword hashes a password with bcrypt. The salt is generated by
// bcrypt and embedded in the returned hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks whether a password matches the given bcrypt hash.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
