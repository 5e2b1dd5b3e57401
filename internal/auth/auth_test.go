package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAdminPasswordPlaintext(t *testing.T) {
	assert.True(t, VerifyAdminPassword("s3cr3t", "s3cr3t"))
	assert.False(t, VerifyAdminPassword("s3cr3t", "wrong"))
	assert.False(t, VerifyAdminPassword("s3cr3t", ""))
}

func TestVerifyAdminPasswordEmptySecret(t *testing.T) {
	// an unset secret never matches, not even an empty submission
	assert.False(t, VerifyAdminPassword("", ""))
	assert.False(t, VerifyAdminPassword("", "anything"))
}

func TestVerifyAdminPasswordArgon2id(t *testing.T) {
	hash, err := HashAdminPassword("s3cr3t")
	require.NoError(t, err)

	assert.True(t, VerifyAdminPassword(hash, "s3cr3t"))
	assert.False(t, VerifyAdminPassword(hash, "wrong"))
}

func TestVerifyAdminPasswordMalformedHash(t *testing.T) {
	assert.False(t, VerifyAdminPassword("$argon2id$not-a-real-hash", "s3cr3t"))
}
