package auth

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/store"
)

func newTestService(t *testing.T) (*Service, store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.User{}))

	st := store.NewGorm(db)

	return NewService(st), st
}

func TestAuthenticate(t *testing.T) {
	s, st := newTestService(t)
	ctx := context.Background()

	_, err := st.CreateUser(ctx, &models.InsertUser{
		Username: "alice",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	testCases := []struct {
		name      string
		username  string
		password  string
		wantedErr error
	}{
		{"valid credentials", "alice", "correct horse battery", nil},
		{"wrong password", "alice", "wrong", ErrInvalidCredentials},
		{"unknown user", "mallory", "correct horse battery", ErrInvalidCredentials},
		{"empty password", "alice", "", ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := s.Authenticate(ctx, tc.username, tc.password)

			if tc.wantedErr != nil {
				assert.ErrorIs(t, err, tc.wantedErr)
				assert.Nil(t, user)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tc.username, user.Username)
		})
	}
}
