// Package server exposes the REST API consumed by the web frontend.
package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/export"
	"github.com/filatrack/filatrack/internal/invoice"
	"github.com/filatrack/filatrack/internal/repository"
	"github.com/filatrack/filatrack/internal/scan"
)

// Deps groups everything the handlers need.
type Deps struct {
	Products repository.ProductRepository
	Spools   repository.SpoolRepository
	Orders   repository.OrderRepository
	Scanner  *scan.Scanner
	Parser   *invoice.Parser
	Importer *invoice.Importer
	Exporter *export.Service
	Logger   *slog.Logger
}

type Server struct {
	app    *fiber.App
	deps   Deps
	logger *slog.Logger
}

func New(cfg common.ServerConfig, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	app := fiber.New(fiber.Config{
		AppName:      "Filatrack API",
		BodyLimit:    cfg.MaxUploadMB << 20,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	s := &Server{app: app, deps: deps, logger: deps.Logger}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.health)

	v1 := s.app.Group("/api/v1")

	v1.Post("/products", s.createProduct)
	v1.Get("/products", s.listProducts)
	v1.Get("/products/:id", s.getProduct)
	v1.Put("/products/:id", s.updateProduct)
	v1.Delete("/products/:id", s.deleteProduct)

	v1.Post("/spools", s.createSpool)
	v1.Get("/spools", s.listSpools)
	v1.Get("/spools/:id", s.getSpool)
	v1.Put("/spools/:id", s.updateSpool)
	v1.Delete("/spools/:id", s.deleteSpool)
	v1.Post("/spools/:id/mark-used", s.markSpoolUsed)

	v1.Get("/orders", s.listOrders)
	v1.Get("/orders/:id", s.getOrder)
	v1.Get("/orders/:id/items", s.listOrderItems)

	v1.Post("/ocr/parse-label", s.parseLabel)

	v1.Post("/invoice/parse", s.parseInvoice)
	v1.Post("/invoice/import", s.importInvoice)

	v1.Get("/export/inventory", s.exportInventory)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Listen blocks serving HTTP until Shutdown or a fatal error.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
