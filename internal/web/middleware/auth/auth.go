// Package auth provides the session-checking middleware guarding the
// admin API routes.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio/GoFolio/internal/db/models"
	"github.com/GoFolio/GoFolio/internal/web/session"
)

// localsUserKey is the fiber.Locals key carrying the authenticated user.
const localsUserKey = "currentUser"

// RequireAuth is a Fiber middleware that rejects requests without a valid
// session. The rejection has no side effects; protected handlers run only
// after the session has been resolved to a user.
func RequireAuth(c *fiber.Ctx) error {
	user, ok := resolve(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	c.Locals(localsUserKey, user)

	return c.Next()
}

// CurrentUser returns the authenticated user for the request, resolving
// the session if RequireAuth has not populated it yet.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	if user, ok := c.Locals(localsUserKey).(*models.User); ok {
		return user, true
	}

	return resolve(c)
}

// resolve reads the session cookie and loads the associated user.
func resolve(c *fiber.Ctx) (*models.User, bool) {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return nil, false
	}

	sessData := new(session.Data)
	if err := sessData.Read(sessionID); err != nil {
		return nil, false
	}

	if sessData.User.ID == 0 {
		return nil, false
	}

	return &sessData.User, true
}
