package server

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) listOrders(c *fiber.Ctx) error {
	orders, err := s.deps.Orders.List(c.Context())
	if err != nil {
		return s.respondError(c, err, "Order")
	}
	return c.JSON(orders)
}

func (s *Server) getOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Order not found")
	}
	order, err := s.deps.Orders.GetByID(c.Context(), id)
	if err != nil {
		return s.respondError(c, err, "Order")
	}
	return c.JSON(order)
}

func (s *Server) listOrderItems(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusNotFound, "Order not found")
	}
	// 404 for an order that never existed, empty list for one with no items.
	if _, err := s.deps.Orders.GetByID(c.Context(), id); err != nil {
		return s.respondError(c, err, "Order")
	}
	items, err := s.deps.Orders.ListItems(c.Context(), id)
	if err != nil {
		return s.respondError(c, err, "Order")
	}
	return c.JSON(items)
}
