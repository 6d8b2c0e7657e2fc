// Package home renders the public landing page: hero, about, portfolio
// grid, skills, technologies and the contact form, all driven by store
// data and the site settings singleton.
package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "home"
)

// Service is the landing page handler service.
type Service struct {
	cfg   *config.Config
	store store.Store
}

// Handler is the landing page handler.
var Handler = Service{}

// Init initializes the landing page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st

	app.Get(Path, s.Get)

	return nil
}

// Get renders the landing page. A missing settings row falls back to the
// configured title so the page renders before the admin has saved settings.
func (s *Service) Get(c *fiber.Ctx) error {
	ctx := c.Context()

	settings, err := s.store.GetSiteSettings(ctx)
	if errors.Is(err, store.ErrNotFound) {
		settings = &models.SiteSettings{SiteTitle: s.cfg.Title}
	} else if err != nil {
		return s.renderError(c, err)
	}

	items, err := s.store.GetPortfolioItems(ctx)
	if err != nil {
		return s.renderError(c, err)
	}

	technical, err := s.store.GetSkills(ctx, models.SkillTypeTechnical)
	if err != nil {
		return s.renderError(c, err)
	}

	soft, err := s.store.GetSkills(ctx, models.SkillTypeSoft)
	if err != nil {
		return s.renderError(c, err)
	}

	technologies, err := s.store.GetTechnologies(ctx)
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Render(TemplateName, fiber.Map{
		"Nav":             navigation.Landing(settings.SiteTitle),
		"Settings":        settings,
		"PortfolioItems":  items,
		"TechnicalSkills": technical,
		"SoftSkills":      soft,
		"Technologies":    technologies,
	}, handler.BaseLayout)
}

func (s *Service) renderError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Msg("failed to load landing page data")

	return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
}
