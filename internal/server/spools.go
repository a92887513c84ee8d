package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/filatrack/filatrack/constants"
	"github.com/filatrack/filatrack/internal/repository"
)

type spoolPayload struct {
	ProductID       uuid.UUID  `json:"product_id"`
	OrderID         *uuid.UUID `json:"order_id"`
	PurchaseDate    *time.Time `json:"purchase_date"`
	Vendor          *string    `json:"vendor"`
	Price           *float64   `json:"price"`
	StorageLocation *string    `json:"storage_location"`
	PhotoPath       *string    `json:"photo_path"`
	Status          string     `json:"status"`
}

// updateSpoolPayload distinguishes omitted fields from zero values.
type updateSpoolPayload struct {
	ProductID       *uuid.UUID `json:"product_id"`
	OrderID         *uuid.UUID `json:"order_id"`
	PurchaseDate    *time.Time `json:"purchase_date"`
	Vendor          *string    `json:"vendor"`
	Price           *float64   `json:"price"`
	StorageLocation *string    `json:"storage_location"`
	PhotoPath       *string    `json:"photo_path"`
	Status          *string    `json:"status"`
}

func (s *Server) createSpool(c *fiber.Ctx) error {
	var body spoolPayload
	if err := c.BodyParser(&body); err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ProductID == uuid.Nil {
		return detail(c, fiber.StatusBadRequest, "product_id is required")
	}
	if body.Status != "" && !constants.ValidSpoolStatus(body.Status) {
		return detail(c, fiber.StatusBadRequest, "invalid status: "+body.Status)
	}

	spool, err := s.deps.Spools.Create(c.Context(), repository.CreateSpoolRequest{
		ProductID:       body.ProductID,
		OrderID:         body.OrderID,
		PurchaseDate:    body.PurchaseDate,
		Vendor:          body.Vendor,
		Price:           body.Price,
		StorageLocation: body.StorageLocation,
		PhotoPath:       body.PhotoPath,
		Status:          body.Status,
	})
	if err != nil {
		return s.respondError(c, err, "Spool")
	}
	return c.JSON(spool)
}

func (s *Server) listSpools(c *fiber.Ctx) error {
	filter := repository.SpoolFilter{Status: c.Query("status")}
	if filter.Status != "" && !constants.ValidSpoolStatus(filter.Status) {
		return detail(c, fiber.StatusBadRequest, "invalid status: "+filter.Status)
	}
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return detail(c, fiber.StatusBadRequest, "invalid product_id")
		}
		filter.ProductID = &id
	}

	spools, err := s.deps.Spools.List(c.Context(), filter)
	if err != nil {
		return s.respondError(c, err, "Spool")
	}
	return c.JSON(spools)
}

func (s *Server) getSpool(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Spool not found")
	}
	spool, err := s.deps.Spools.GetByID(c.Context(), id)
	if err != nil {
		return s.respondError(c, err, "Spool")
	}
	return c.JSON(spool)
}

func (s *Server) updateSpool(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Spool not found")
	}
	var body updateSpoolPayload
	if err := c.BodyParser(&body); err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.Status != nil && !constants.ValidSpoolStatus(*body.Status) {
		return detail(c, fiber.StatusBadRequest, "invalid status: "+*body.Status)
	}
	spool, err := s.deps.Spools.Update(c.Context(), id, repository.UpdateSpoolRequest{
		ProductID:       body.ProductID,
		OrderID:         body.OrderID,
		PurchaseDate:    body.PurchaseDate,
		Vendor:          body.Vendor,
		Price:           body.Price,
		StorageLocation: body.StorageLocation,
		PhotoPath:       body.PhotoPath,
		Status:          body.Status,
	})
	if err != nil {
		return s.respondError(c, err, "Spool")
	}
	return c.JSON(spool)
}

func (s *Server) deleteSpool(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Spool not found")
	}
	if err := s.deps.Spools.Delete(c.Context(), id); err != nil {
		return s.respondError(c, err, "Spool")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) markSpoolUsed(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Spool not found")
	}
	spool, err := s.deps.Spools.MarkUsed(c.Context(), id)
	if err != nil {
		return s.respondError(c, err, "Spool")
	}
	return c.JSON(spool)
}
