package server

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/invoice"
)

func (s *Server) readPDFUpload(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, detail(c, fiber.StatusBadRequest, "file field is required")
	}
	if fh.Header.Get("Content-Type") != "application/pdf" {
		return nil, detail(c, fiber.StatusBadRequest, "File must be a PDF")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, detail(c, fiber.StatusBadRequest, "cannot read uploaded file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, detail(c, fiber.StatusBadRequest, "cannot read uploaded file")
	}
	if len(data) == 0 {
		return nil, detail(c, fiber.StatusBadRequest, "Uploaded file is empty")
	}
	return data, nil
}

func (s *Server) parseUpload(c *fiber.Ctx) (*entity.ParsedInvoice, error) {
	pdf, err := s.readPDFUpload(c)
	if pdf == nil {
		// readPDFUpload already wrote the response.
		return nil, err
	}
	inv, err := s.deps.Parser.Parse(c.Context(), pdf)
	if err != nil {
		if errors.Is(err, invoice.ErrNoItems) || errors.Is(err, invoice.ErrTooManyPages) {
			return nil, detail(c, fiber.StatusBadRequest, err.Error())
		}
		return nil, s.respondError(c, err, "Invoice")
	}
	return inv, nil
}

func (s *Server) parseInvoice(c *fiber.Ctx) error {
	inv, err := s.parseUpload(c)
	if inv == nil {
		return err
	}
	return c.JSON(inv)
}

func (s *Server) importInvoice(c *fiber.Ctx) error {
	inv, err := s.parseUpload(c)
	if inv == nil {
		return err
	}
	summary, err := s.deps.Importer.Import(c.Context(), inv)
	if err != nil {
		return s.respondError(c, err, "Invoice")
	}
	return c.JSON(summary)
}
