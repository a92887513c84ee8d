package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/repository"
)

type memProducts struct{ rows []*entity.Product }

func (m *memProducts) Create(ctx context.Context, req repository.CreateProductRequest) (*entity.Product, error) {
	return nil, nil
}

func (m *memProducts) List(ctx context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return m.rows, nil
}

func (m *memProducts) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return nil, nil
}

func (m *memProducts) Update(ctx context.Context, id uuid.UUID, req repository.UpdateProductRequest) (*entity.Product, error) {
	return nil, nil
}

func (m *memProducts) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *memProducts) FindExact(ctx context.Context, brand, material, colorName string, diameterMM float64) (*entity.Product, error) {
	return nil, nil
}

type memSpools struct {
	rows       []*entity.Spool
	lastFilter repository.SpoolFilter
}

func (m *memSpools) Create(ctx context.Context, req repository.CreateSpoolRequest) (*entity.Spool, error) {
	return nil, nil
}

func (m *memSpools) List(ctx context.Context, f repository.SpoolFilter) ([]*entity.Spool, error) {
	m.lastFilter = f
	return m.rows, nil
}

func (m *memSpools) GetByID(ctx context.Context, id uuid.UUID) (*entity.Spool, error) {
	return nil, nil
}

func (m *memSpools) Update(ctx context.Context, id uuid.UUID, req repository.UpdateSpoolRequest) (*entity.Spool, error) {
	return nil, nil
}

func (m *memSpools) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *memSpools) MarkUsed(ctx context.Context, id uuid.UUID) (*entity.Spool, error) {
	return nil, nil
}

func TestExportInventoryXLSX(t *testing.T) {
	productID := uuid.New()
	purchase := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	vendor := "Amazon"
	price := 18.99
	location := "Shelf B"

	products := &memProducts{rows: []*entity.Product{{
		ID:         productID,
		Brand:      "Sunlu",
		Material:   "PLA+",
		ColorName:  "Yellow",
		DiameterMM: 1.75,
	}}}
	spools := &memSpools{rows: []*entity.Spool{{
		ID:              uuid.New(),
		ProductID:       productID,
		PurchaseDate:    &purchase,
		Vendor:          &vendor,
		Price:           &price,
		StorageLocation: &location,
		Status:          "in_stock",
	}}}

	svc := NewService(products, spools, nil)
	data, err := svc.ExportInventoryXLSX(context.Background(), "in_stock")
	if err != nil {
		t.Fatalf("ExportInventoryXLSX() error = %v", err)
	}
	if spools.lastFilter.Status != "in_stock" {
		t.Fatalf("status filter not forwarded: %+v", spools.lastFilter)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 spool", len(rows))
	}
	if rows[0][0] != "Brand" || rows[0][4] != "Status" {
		t.Fatalf("header = %v", rows[0])
	}
	got := rows[1]
	if got[0] != "Sunlu" || got[1] != "PLA+" || got[2] != "Yellow" {
		t.Fatalf("data row = %v", got)
	}
	if got[4] != "in_stock" || got[5] != "2024-03-18" {
		t.Fatalf("status/date = %v", got)
	}
}

func TestExportInventoryXLSXEmpty(t *testing.T) {
	svc := NewService(&memProducts{}, &memSpools{}, nil)
	data, err := svc.ExportInventoryXLSX(context.Background(), "")
	if err != nil {
		t.Fatalf("ExportInventoryXLSX() error = %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Inventory")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want header only", len(rows))
	}
}
