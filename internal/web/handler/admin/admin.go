// Package admin renders the admin page shells. The login page and the
// dashboard are thin templates; all admin data flows through the JSON API.
package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	mwauth "github.com/GoFolio/GoFolio/internal/web/middleware/auth"
	"github.com/GoFolio/GoFolio/internal/web/navigation"
)

const (
	// Path is the path to the admin dashboard page.
	Path = handler.RootPath + "admin"

	// LoginPath is the path to the admin login page.
	LoginPath = Path + "/login"
)

// Service is the admin pages handler service.
type Service struct {
	cfg   *config.Config
	store store.Store
}

// Handler is the admin pages handler.
var Handler = Service{}

// Init initializes the admin pages handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st

	app.Get(LoginPath, s.Login)
	app.Get(Path, s.Dashboard)

	return nil
}

// Login renders the login page, redirecting users that already carry a
// valid session straight to the dashboard.
func (s *Service) Login(c *fiber.Ctx) error {
	if _, ok := mwauth.CurrentUser(c); ok {
		return c.Redirect(Path)
	}

	return c.Render("admin/login", fiber.Map{
		"Title": s.cfg.Title,
	}, handler.BaseLayout)
}

// Dashboard renders the dashboard shell, redirecting unauthenticated
// visitors to the login page.
func (s *Service) Dashboard(c *fiber.Ctx) error {
	user, ok := mwauth.CurrentUser(c)
	if !ok {
		return c.Redirect(LoginPath)
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Nav":   navigation.Admin(s.cfg.Title, "dashboard"),
		"Title": s.cfg.Title,
		"User":  user,
	}, handler.BaseLayout)
}
