package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/filatrack/filatrack/constants"
)

// exportInventory streams the inventory workbook. An optional ?status=
// narrows it to one spool status.
func (s *Server) exportInventory(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && !constants.ValidSpoolStatus(status) {
		return detail(c, fiber.StatusBadRequest, "invalid status: "+status)
	}

	xlsx, err := s.deps.Exporter.ExportInventoryXLSX(c.Context(), status)
	if err != nil {
		return s.respondError(c, err, "Inventory")
	}

	name := "inventory-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(xlsx)
}
