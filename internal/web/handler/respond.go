// Package handler holds the shared plumbing of the web handlers: route
// constants, id parsing and the JSON error response shapes every endpoint
// uses.
package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoFolio/GoFolio/internal/store"
	"github.com/GoFolio/GoFolio/internal/validate"
)

// ErrInvalidID is returned by ParseID for a non-numeric path parameter.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses the :id path parameter as an unsigned integer.
func ParseID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	return id, nil
}

// InvalidID responds 400 for a non-numeric id path parameter.
func InvalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid id",
	})
}

// BadRequest responds 400 with the given message.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationFailed responds 400 with the per-field error list.
func ValidationFailed(c *fiber.Ctx, verr *validate.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  verr.Errors,
	})
}

// NotFound responds 404 with the given message.
func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": message,
	})
}

// StorageError translates a storage failure into the right client response:
// 404 for a missing row, otherwise a logged, opaque 500. The internal error
// detail never reaches the client.
func StorageError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return NotFound(c, notFoundMsg)
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("storage operation failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

// Body parses the JSON request body into out and validates it. A malformed
// body yields a 400 error message; constraint violations yield the
// structured validation response. Returns false when a response has been
// written.
func Body(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(out); err != nil {
		if verr, ok := validate.As(err); ok {
			return false, ValidationFailed(c, verr)
		}

		return false, err
	}

	return true, nil
}
