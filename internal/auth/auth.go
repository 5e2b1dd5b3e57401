// Package auth implements the shared secret admin authentication.
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

const argon2idPrefix = "$argon2id$"

// VerifyAdminPassword compares a submitted password against the configured
// admin secret. If the secret is an argon2id hash the password is verified
// against the hash, otherwise the two strings are compared in constant time.
func VerifyAdminPassword(secret, password string) bool {
	if secret == "" {
		return false
	}

	if strings.HasPrefix(secret, argon2idPrefix) {
		match, err := argon2id.ComparePasswordAndHash(password, secret)
		if err != nil {
			log.Error().Err(err).Msg("failed to verify admin password hash")
			return false
		}

		return match
	}

	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}

// HashAdminPassword hashes a plaintext admin password with argon2id.
// The result can be used as ADMIN_PASSWORD instead of the plaintext secret.
func HashAdminPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}
