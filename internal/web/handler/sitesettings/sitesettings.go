// Package sitesettings implements the endpoints for the site settings
// singleton. Reads are public; the create-or-update write is admin only.
package sitesettings

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	mwauth "github.com/GoFolio/GoFolio/internal/web/middleware/auth"
)

const (
	// Path is the path of the site settings endpoints.
	Path = handler.APIPath + "/site-settings"

	notFoundMsg = "Site settings not found"
)

// Service is the site settings handler service.
type Service struct {
	cfg   *config.Config
	store store.Store
}

// Handler is the site settings handler.
var Handler = Service{}

// Init initializes the site settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st

	app.Get(Path, s.Get)
	app.Post(Path, mwauth.RequireAuth, s.CreateOrUpdate)

	return nil
}

// Get returns the settings singleton, or 404 until it has been written once.
func (s *Service) Get(c *fiber.Ctx) error {
	settings, err := s.store.GetSiteSettings(c.Context())
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(settings)
}

// CreateOrUpdate overwrites the settings singleton, creating it when absent.
func (s *Service) CreateOrUpdate(c *fiber.Ctx) error {
	insert := new(models.InsertSiteSettings)
	if ok, err := handler.Body(c, insert); !ok {
		return err
	}

	settings, err := s.store.CreateOrUpdateSiteSettings(c.Context(), insert)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(settings)
}
