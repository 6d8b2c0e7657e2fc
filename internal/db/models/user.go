package models

import (
	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User represents the admin account used to manage the site.
// There is normally exactly one row, created by the seed or the
// create-admin command.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique username for login.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// Password is the Argon2id hashed password. The salt is embedded in the
	// encoded hash string, '$'-delimited. Never serialized to clients.
	Password string `gorm:"size:255;not null" json:"-"`
}

// InsertUser is the payload accepted when creating a user.
type InsertUser struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// Credentials is the payload accepted by the login endpoint.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
