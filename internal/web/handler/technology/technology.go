// Package technology implements the technology endpoints.
package technology

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
	// Path is the base path of the technology endpoints.
	Path = handler.APIPath + "/technologies"

	notFoundMsg = "Technology not found"
)

// Service is the technology handler service.
type Service struct {
	cfg   *config.Config
	store store.Store
}

// Handler is the technology handler.
var Handler = Service{}

// Init initializes the technology handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st

	app.Route(Path, func(router fiber.Router) {
		router.Get("/", s.List)
		router.Get("/:id", s.Get)
		router.Post("/", mwauth.RequireAuth, s.Create)
		router.Put("/:id", mwauth.RequireAuth, s.Update)
		router.Delete("/:id", mwauth.RequireAuth, s.Delete)
	})

	return nil
}

// List returns all technologies.
func (s *Service) List(c *fiber.Ctx) error {
	technologies, err := s.store.GetTechnologies(c.Context())
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(technologies)
}

// Get returns a single technology by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	tech, err := s.store.GetTechnology(c.Context(), id)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(tech)
}

// Create validates the insert payload and persists a new technology.
func (s *Service) Create(c *fiber.Ctx) error {
	insert := new(models.InsertTechnology)
	if ok, err := handler.Body(c, insert); !ok {
		return err
	}

	tech, err := s.store.CreateTechnology(c.Context(), insert)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.Status(fiber.StatusCreated).JSON(tech)
}

// Update applies a partial update to an existing technology.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	update := new(models.UpdateTechnology)
	if ok, err := handler.Body(c, update); !ok {
		return err
	}

	tech, err := s.store.UpdateTechnology(c.Context(), id, update)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(tech)
}

// Delete removes a technology by id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	if err := s.store.DeleteTechnology(c.Context(), id); err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(fiber.Map{"message": "Technology deleted"})
}
