package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash := HashPassword("changeme")

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash must carry the argon2id header")
	assert.NotContains(t, hash, "changeme")

	// the embedded salt makes every hash unique
	assert.NotEqual(t, hash, HashPassword("changeme"))
}

func TestVerifyPassword(t *testing.T) {
	user := User{
		Username: "admin",
		Password: HashPassword("changeme"),
	}

	assert.True(t, user.VerifyPassword("changeme"))
	assert.False(t, user.VerifyPassword("wrong"))
	assert.False(t, user.VerifyPassword(""))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	user := User{
		Username: "admin",
		Password: "not-a-hash",
	}

	assert.False(t, user.VerifyPassword("changeme"))
}
