package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPassword checks the admin password. A configured bcrypt hash takes
// precedence; the plaintext comparison exists for dev setups and uses a
// constant-time compare.
func VerifyPassword(password, hash, plain string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if hash != "" {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return ErrIncorrectPassword
		}
		return nil
	}
	if plain == "" {
		return ErrNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(plain)) != 1 {
		return ErrIncorrectPassword
	}
	return nil
}
