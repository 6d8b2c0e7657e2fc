// Package contact implements the contact form endpoint (the only public
// write in the API) and the admin-side message listing and deletion.
package contact

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/mail"
	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	mwauth "github.com/GoFolio/GoFolio/internal/web/middleware/auth"
)

const (
	// Path is the path of the public contact form endpoint.
	Path = handler.APIPath + "/contact"

	// MessagesPath is the base path of the admin message endpoints.
	MessagesPath = handler.APIPath + "/contact-messages"

	notFoundMsg = "Contact message not found"
)

// Service is the contact handler service.
type Service struct {
	cfg      *config.Config
	store    store.Store
	notifier mail.Notifier
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store, notifier mail.Notifier) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	if notifier == nil {
		notifier = mail.Nop{}
	}

	s.cfg = cfg
	s.store = st
	s.notifier = notifier

	app.Post(Path, s.Create)
	app.Get(MessagesPath, mwauth.RequireAuth, s.List)
	app.Delete(MessagesPath+"/:id", mwauth.RequireAuth, s.Delete)

	return nil
}

// Create validates and persists an inbound contact message, then notifies
// the configured mail service best-effort.
func (s *Service) Create(c *fiber.Ctx) error {
	insert := new(models.InsertContactMessage)
	if ok, err := handler.Body(c, insert); !ok {
		return err
	}

	msg, err := s.store.SaveContactMessage(c.Context(), insert)
	if err != nil {
		log.Error().Err(err).Msg("failed to save contact message")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to process your message",
		})
	}

	// notification must not fail the request; the message is already stored
	if err := s.notifier.Notify(context.Background(), mail.ContactNotification(s.cfg.Mail, msg)); err != nil {
		log.Error().Err(err).Uint64("message_id", msg.ID).Msg("contact notification failed")
	}

	return c.JSON(fiber.Map{
		"message": "Message received successfully",
		"id":      msg.ID,
	})
}

// List returns all contact messages ordered by creation time.
func (s *Service) List(c *fiber.Ctx) error {
	messages, err := s.store.GetContactMessages(c.Context())
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(messages)
}

// Delete removes a contact message by id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	if err := s.store.DeleteContactMessage(c.Context(), id); err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(fiber.Map{"message": "Contact message deleted"})
}
