// Package portfolio implements the portfolio item endpoints. Reads are
// public; every mutation requires an authenticated session.
package portfolio

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
	// Path is the base path of the portfolio endpoints.
	Path = handler.APIPath + "/portfolio"

	notFoundMsg = "Portfolio item not found"
)

// Service is the portfolio handler service.
type Service struct {
	cfg   *config.Config
	store store.Store
}

// Handler is the portfolio handler.
var Handler = Service{}

// Init initializes the portfolio handler.
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

// List returns all portfolio items.
func (s *Service) List(c *fiber.Ctx) error {
	items, err := s.store.GetPortfolioItems(c.Context())
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(items)
}

// Get returns a single portfolio item by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	item, err := s.store.GetPortfolioItem(c.Context(), id)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(item)
}

// Create validates the insert payload and persists a new portfolio item.
func (s *Service) Create(c *fiber.Ctx) error {
	insert := new(models.InsertPortfolioItem)
	if ok, err := handler.Body(c, insert); !ok {
		return err
	}

	item, err := s.store.CreatePortfolioItem(c.Context(), insert)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update applies a partial update to an existing portfolio item.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	update := new(models.UpdatePortfolioItem)
	if ok, err := handler.Body(c, update); !ok {
		return err
	}

	item, err := s.store.UpdatePortfolioItem(c.Context(), id, update)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(item)
}

// Delete removes a portfolio item by id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	if err := s.store.DeletePortfolioItem(c.Context(), id); err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(fiber.Map{"message": "Portfolio item deleted"})
}
