package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/repository"
)

type productPayload struct {
	Brand      string  `json:"brand"`
	Line       *string `json:"line"`
	Material   string  `json:"material"`
	ColorName  string  `json:"color_name"`
	DiameterMM float64 `json:"diameter_mm"`
	Notes      *string `json:"notes"`
	Barcode    *string `json:"barcode"`
	SKU        *string `json:"sku"`
}

// updateProductPayload distinguishes omitted fields from zero values.
type updateProductPayload struct {
	Brand      *string  `json:"brand"`
	Line       *string  `json:"line"`
	Material   *string  `json:"material"`
	ColorName  *string  `json:"color_name"`
	DiameterMM *float64 `json:"diameter_mm"`
	Notes      *string  `json:"notes"`
	Barcode    *string  `json:"barcode"`
	SKU        *string  `json:"sku"`
}

func (s *Server) createProduct(c *fiber.Ctx) error {
	var body productPayload
	if err := c.BodyParser(&body); err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid request body")
	}

	v := common.NewValidator()
	v.Field("brand", body.Brand, common.Required)
	v.Field("material", body.Material, common.Required)
	v.Field("color_name", body.ColorName, common.Required)
	v.Field("diameter_mm", body.DiameterMM, common.Positive)
	if err := v.Error(); err != nil {
		return detail(c, fiber.StatusBadRequest, err.Error())
	}

	product, err := s.deps.Products.Create(c.Context(), repository.CreateProductRequest{
		Brand:      body.Brand,
		Line:       body.Line,
		Material:   body.Material,
		ColorName:  body.ColorName,
		DiameterMM: body.DiameterMM,
		Notes:      body.Notes,
		Barcode:    body.Barcode,
		SKU:        body.SKU,
	})
	if err != nil {
		return s.respondError(c, err, "Product")
	}
	return c.JSON(product)
}

func (s *Server) listProducts(c *fiber.Ctx) error {
	products, err := s.deps.Products.List(c.Context(), repository.ProductFilter{
		Brand:     c.Query("brand"),
		Material:  c.Query("material"),
		ColorName: c.Query("color_name"),
	})
	if err != nil {
		return s.respondError(c, err, "Product")
	}
	return c.JSON(products)
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Product not found")
	}
	product, err := s.deps.Products.GetByID(c.Context(), id)
	if err != nil {
		return s.respondError(c, err, "Product")
	}
	return c.JSON(product)
}

func (s *Server) updateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Product not found")
	}
	var body updateProductPayload
	if err := c.BodyParser(&body); err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid request body")
	}
	product, err := s.deps.Products.Update(c.Context(), id, repository.UpdateProductRequest{
		Brand:      body.Brand,
		Line:       body.Line,
		Material:   body.Material,
		ColorName:  body.ColorName,
		DiameterMM: body.DiameterMM,
		Notes:      body.Notes,
		Barcode:    body.Barcode,
		SKU:        body.SKU,
	})
	if err != nil {
		return s.respondError(c, err, "Product")
	}
	return c.JSON(product)
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Product not found")
	}
	if err := s.deps.Products.Delete(c.Context(), id); err != nil {
		return s.respondError(c, err, "Product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
