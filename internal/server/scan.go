package server

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/filatrack/filatrack/internal/scan"
)

// parseLabel accepts a multipart image upload under the "file" field and
// runs the label scanning pipeline on it.
func (s *Server) parseLabel(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "file field is required")
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return detail(c, fiber.StatusBadRequest, "File must be an image")
	}

	f, err := fh.Open()
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "cannot read uploaded file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "cannot read uploaded file")
	}
	if len(data) == 0 {
		return detail(c, fiber.StatusBadRequest, "Uploaded file is empty")
	}

	result, err := s.deps.Scanner.Scan(c.Context(), data)
	if err != nil {
		if errors.Is(err, scan.ErrInvalidImage) || errors.Is(err, scan.ErrEngineUnavailable) {
			return detail(c, fiber.StatusBadRequest, err.Error())
		}
		return s.respondError(c, err, "Label")
	}
	return c.JSON(result)
}
