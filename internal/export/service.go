package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// inventory exports.
type Service struct {
	products repository.ProductRepository
	spools   repository.SpoolRepository
	logger   *slog.Logger
}

func NewService(products repository.ProductRepository, spools repository.SpoolRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{products: products, spools: spools, logger: logger}
}

// ExportInventoryXLSX returns an XLSX workbook (as bytes) listing every spool
// joined with its product. An empty status exports all spools.
func (s *Service) ExportInventoryXLSX(ctx context.Context, status string) ([]byte, error) {
	start := time.Now()

	spools, err := s.spools.List(ctx, repository.SpoolFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("query spools: %w", err)
	}
	products, err := s.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	f := excelize.NewFile()
	const sheet = "Inventory"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Brand",
		"Material",
		"Color",
		"Diameter (mm)",
		"Status",
		"Purchase Date",
		"Vendor",
		"Price",
		"Storage Location",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sp := range spools {
		p := byID[sp.ProductID]

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if p != nil {
			write(1, p.Brand)
			write(2, p.Material)
			write(3, p.ColorName)
			write(4, p.DiameterMM)
		}
		write(5, sp.Status)
		if sp.PurchaseDate != nil {
			write(6, sp.PurchaseDate.Format("2006-01-02"))
		} else {
			write(6, "")
		}
		write(7, strOrEmpty(sp.Vendor))
		if sp.Price != nil {
			write(8, *sp.Price)
		} else {
			write(8, "")
		}
		write(9, strOrEmpty(sp.StorageLocation))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // brand
	_ = f.SetColWidth(sheet, "B", "B", 12) // material
	_ = f.SetColWidth(sheet, "C", "C", 16) // color
	_ = f.SetColWidth(sheet, "E", "E", 12) // status
	_ = f.SetColWidth(sheet, "F", "F", 14) // date
	_ = f.SetColWidth(sheet, "G", "G", 20) // vendor
	_ = f.SetColWidth(sheet, "I", "I", 24) // location

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("inventory export built",
		"spools", len(spools),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
