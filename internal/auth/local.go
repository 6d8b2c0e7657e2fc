package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/store"
)

// Service authenticates admin credentials against the store.
type Service struct {
	store store.Store
}

// NewService creates a new auth service.
func NewService(st store.Store) *Service {
	if st == nil {
		panic("auth: store cannot be nil")
	}

	return &Service{store: st}
}

// Authenticate looks up the user and verifies the password with a
// constant-time Argon2id comparison. The returned error never reveals
// whether the username or the password was at fault.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)

	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
