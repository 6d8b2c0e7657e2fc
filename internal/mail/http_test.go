package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
)

func TestHTTPNotifier(t *testing.T) {
	var (
		received   Message
		authHeader string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewHTTPNotifier(config.Mail{
		Enabled: true,
		URL:     server.URL,
		APIKey:  "test-key",
		From:    "noreply@example.com",
		To:      "owner@example.com",
		Timeout: 5 * time.Second,
	})

	err := n.Notify(context.Background(), Message{
		From:    "noreply@example.com",
		To:      "owner@example.com",
		Subject: "New contact message: Hello",
		Text:    "From: Carol <carol@example.com>\n\nHi there.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "owner@example.com", received.To)
	assert.Equal(t, "New contact message: Hello", received.Subject)
}

func TestHTTPNotifierServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := NewHTTPNotifier(config.Mail{URL: server.URL, Timeout: 5 * time.Second})

	err := n.Notify(context.Background(), Message{To: "owner@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPNotifierUnreachable(t *testing.T) {
	n := NewHTTPNotifier(config.Mail{URL: "http://127.0.0.1:1", Timeout: time.Second})

	err := n.Notify(context.Background(), Message{To: "owner@example.com"})
	assert.Error(t, err)
}

func TestNewPicksNotifier(t *testing.T) {
	assert.IsType(t, Nop{}, New(config.Mail{Enabled: false}))
	assert.IsType(t, &HTTPNotifier{}, New(config.Mail{Enabled: true, URL: "http://mail.local"}))
}

func TestContactNotification(t *testing.T) {
	cfg := config.Mail{From: "noreply@example.com", To: "owner@example.com"}

	msg := ContactNotification(cfg, &models.ContactMessage{
		Name:    "Carol",
		Email:   "carol@example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a project.",
	})

	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "New contact message: Project inquiry", msg.Subject)
	assert.Contains(t, msg.Text, "Carol <carol@example.com>")
	assert.Contains(t, msg.Text, "I would like to talk about a project.")
}
