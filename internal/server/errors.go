package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/filatrack/filatrack/internal/common"
)

// detail mirrors the error body shape the frontend already expects,
// e.g. {"detail": "Product not found"}.
func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

// respondError maps repository and domain errors onto HTTP statuses.
// resource names the entity for 404 wording ("Product", "Spool").
func (s *Server) respondError(c *fiber.Ctx, err error, resource string) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return detail(c, fiber.StatusNotFound, resource+" not found")
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrValidation):
		return detail(c, fiber.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", "path", c.Path(), "error", err)
		return detail(c, fiber.StatusInternalServerError, err.Error())
	}
}

// parseID pulls a UUID path param; a malformed ID reads as "not found"
// rather than leaking parse errors.
func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}
