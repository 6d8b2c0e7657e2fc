// Package skill implements the skill endpoints. The public listing accepts
// an optional ?type=technical|soft filter.
package skill

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
	// Path is the base path of the skill endpoints.
	Path = handler.APIPath + "/skills"

	notFoundMsg = "Skill not found"
)

// Service is the skill handler service.
type Service struct {
	cfg   *config.Config
	store store.Store
}

// Handler is the skill handler.
var Handler = Service{}

// Init initializes the skill handler.
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

// List returns skills, filtered by the optional type query parameter.
func (s *Service) List(c *fiber.Ctx) error {
	skillType := c.Query("type")
	if skillType != "" &&
		skillType != models.SkillTypeTechnical &&
		skillType != models.SkillTypeSoft {
		return handler.BadRequest(c, "Invalid skill type")
	}

	skills, err := s.store.GetSkills(c.Context(), skillType)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(skills)
}

// Get returns a single skill by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	skill, err := s.store.GetSkill(c.Context(), id)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(skill)
}

// Create validates the insert payload and persists a new skill.
func (s *Service) Create(c *fiber.Ctx) error {
	insert := new(models.InsertSkill)
	if ok, err := handler.Body(c, insert); !ok {
		return err
	}

	skill, err := s.store.CreateSkill(c.Context(), insert)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

// Update applies a partial update to an existing skill.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	update := new(models.UpdateSkill)
	if ok, err := handler.Body(c, update); !ok {
		return err
	}

	skill, err := s.store.UpdateSkill(c.Context(), id, update)
	if err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(skill)
}

// Delete removes a skill by id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.InvalidID(c)
	}

	if err := s.store.DeleteSkill(c.Context(), id); err != nil {
		return handler.StorageError(c, err, notFoundMsg)
	}

	return c.JSON(fiber.Map{"message": "Skill deleted"})
}
