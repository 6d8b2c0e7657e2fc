package session

import (
	"testing"
	"time"

	sessionmemory "github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

func initTestStore() {
	Init(sessionmemory.New(sessionmemory.Config{GCInterval: time.Minute}))
}

func TestGenerateSessionID(t *testing.T) {
	id := GenerateSessionID()

	assert.Len(t, id, idLength)
	assert.NotEqual(t, id, GenerateSessionID())
}

func TestDataRoundTrip(t *testing.T) {
	initTestStore()

	sessionID := GenerateSessionID()

	in := &Data{User: models.User{ID: 7, Username: "admin"}}
	require.NoError(t, in.Write(sessionID, time.Minute))

	out := new(Data)
	require.NoError(t, out.Read(sessionID))
	assert.Equal(t, uint64(7), out.User.ID)
	assert.Equal(t, "admin", out.User.Username)
}

func TestDelete(t *testing.T) {
	initTestStore()

	sessionID := GenerateSessionID()

	in := &Data{User: models.User{ID: 7, Username: "admin"}}
	require.NoError(t, in.Write(sessionID, time.Minute))
	require.NoError(t, Delete(sessionID))

	out := new(Data)
	assert.Error(t, out.Read(sessionID), "reading a deleted session must fail")
}
