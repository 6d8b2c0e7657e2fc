// Package mail delivers contact-message notifications through an external
// HTTP mail service. Delivery is best-effort: the contact endpoint persists
// the message first and only logs notification failures.
package mail

import (
	"context"
	"fmt"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
)

// Message is the payload handed to a Notifier.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Notifier sends a notification message.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Nop is a Notifier that silently drops every message. Used when outbound
// mail is not configured.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(_ context.Context, _ Message) error { return nil }

// New returns the Notifier matching the configuration: an HTTPNotifier when
// mail is enabled, a Nop otherwise.
func New(cfg config.Mail) Notifier {
	if !cfg.Enabled {
		return Nop{}
	}

	return NewHTTPNotifier(cfg)
}

// ContactNotification builds the notification for a newly received contact
// message.
func ContactNotification(cfg config.Mail, msg *models.ContactMessage) Message {
	return Message{
		From:    cfg.From,
		To:      cfg.To,
		Subject: fmt.Sprintf("New contact message: %s", msg.Subject),
		Text: fmt.Sprintf(
			"From: %s <%s>\n\n%s",
			msg.Name,
			msg.Email,
			msg.Message,
		),
	}
}
