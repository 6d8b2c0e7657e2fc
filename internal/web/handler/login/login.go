// Package login implements the session endpoints of the admin API:
// login, logout and the session probe.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio/GoFolio/internal/auth"
	"github.com/GoFolio/GoFolio/internal/config"
	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/web/handler"
	mwauth "github.com/GoFolio/GoFolio/internal/web/middleware/auth"
	"github.com/GoFolio/GoFolio/internal/web/session"
)

const (
	// Path is the path of the login endpoint.
	Path = handler.APIPath + "/login"

	// LogoutPath is the path of the logout endpoint.
	LogoutPath = handler.APIPath + "/logout"

	// ProbePath is the path of the session probe endpoint.
	ProbePath = handler.APIPath + "/user"
)

// Service is the login handler service.
type Service struct {
	cfg   *config.Config
	auth  *auth.Service
	store store.Store
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.store = st
	s.auth = auth.NewService(st)

	app.Post(Path, s.Login)
	app.Post(LogoutPath, s.Logout)
	app.Get(ProbePath, s.Probe)

	return nil
}

// Login handles the credential check and session establishment.
func (s *Service) Login(c *fiber.Ctx) error {
	creds := new(models.Credentials)
	if ok, err := handler.Body(c, creds); !ok {
		return err
	}

	user, err := s.auth.Authenticate(c.Context(), creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// same response for unknown user and wrong password
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid username or password",
			})
		}

		log.Error().Err(err).Msg("login failed against storage")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	sessionID := session.GenerateSessionID()

	userSession := &session.Data{User: *user}
	if err := userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	c.Cookie(s.sessionCookie(sessionID, int(s.cfg.Webserver.Session.ExpiryTime.Seconds())))

	return c.JSON(user)
}

// Logout clears the session and the cookie. It succeeds regardless of
// whether a session existed.
func (s *Service) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID != "" {
		if err := session.Delete(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.Cookie(s.sessionCookie("", -1))

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Probe reports the authenticated user, or 401 when the request carries no
// valid session. Clients use it as the authoritative auth check behind
// their locally cached flag.
func (s *Service) Probe(c *fiber.Ctx) error {
	user, ok := mwauth.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	return c.JSON(user)
}

// sessionCookie builds the session cookie with the hardening flags shared
// by login and logout.
func (s *Service) sessionCookie(value string, maxAge int) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    value,
		MaxAge:   maxAge,
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookie.Secure = false
	}

	return cookie
}
