package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/filatrack/filatrack/constants"
	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/repository"
)

type fakeProducts struct {
	existing []*entity.Product
	created  []repository.CreateProductRequest
}

func (f *fakeProducts) Create(ctx context.Context, req repository.CreateProductRequest) (*entity.Product, error) {
	f.created = append(f.created, req)
	p := &entity.Product{
		ID:         uuid.New(),
		Brand:      req.Brand,
		Material:   req.Material,
		ColorName:  req.ColorName,
		DiameterMM: req.DiameterMM,
	}
	f.existing = append(f.existing, p)
	return p, nil
}

func (f *fakeProducts) List(ctx context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return f.existing, nil
}

func (f *fakeProducts) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.existing {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Update(ctx context.Context, id uuid.UUID, req repository.UpdateProductRequest) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProducts) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeProducts) FindExact(ctx context.Context, brand, material, colorName string, diameterMM float64) (*entity.Product, error) {
	for _, p := range f.existing {
		if p.Brand == brand && p.Material == material && p.ColorName == colorName && p.DiameterMM == diameterMM {
			return p, nil
		}
	}
	return nil, nil
}

type fakeSpools struct {
	created []repository.CreateSpoolRequest
}

func (f *fakeSpools) Create(ctx context.Context, req repository.CreateSpoolRequest) (*entity.Spool, error) {
	f.created = append(f.created, req)
	return &entity.Spool{ID: uuid.New(), ProductID: req.ProductID, Status: req.Status}, nil
}

func (f *fakeSpools) List(ctx context.Context, _ repository.SpoolFilter) ([]*entity.Spool, error) {
	return nil, nil
}

func (f *fakeSpools) GetByID(ctx context.Context, id uuid.UUID) (*entity.Spool, error) {
	return nil, nil
}

func (f *fakeSpools) Update(ctx context.Context, id uuid.UUID, req repository.UpdateSpoolRequest) (*entity.Spool, error) {
	return nil, nil
}

func (f *fakeSpools) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeSpools) MarkUsed(ctx context.Context, id uuid.UUID) (*entity.Spool, error) {
	return nil, nil
}

type fakeOrders struct {
	orders []repository.CreateOrderRequest
	items  []repository.CreateOrderItemRequest
}

func (f *fakeOrders) Create(ctx context.Context, req repository.CreateOrderRequest) (*entity.Order, error) {
	f.orders = append(f.orders, req)
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	return &entity.Order{
		ID:          uuid.New(),
		Vendor:      req.Vendor,
		OrderNumber: req.OrderNumber,
		OrderDate:   req.OrderDate,
		TotalAmount: req.TotalAmount,
		Currency:    currency,
	}, nil
}

func (f *fakeOrders) CreateItem(ctx context.Context, req repository.CreateOrderItemRequest) (*entity.OrderItem, error) {
	f.items = append(f.items, req)
	return &entity.OrderItem{ID: uuid.New(), OrderID: req.OrderID, Status: req.Status}, nil
}

func (f *fakeOrders) List(ctx context.Context) ([]*entity.Order, error) { return nil, nil }

func (f *fakeOrders) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrders) ListItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	return nil, nil
}

func sampleParsedInvoice() *entity.ParsedInvoice {
	date := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	price := 18.99
	return &entity.ParsedInvoice{
		Vendor:    "Amazon",
		OrderDate: &date,
		Currency:  "USD",
		Items: []entity.ParsedItem{
			{
				TitleRaw:   "SUNLU PLA+ Yellow 1.75mm",
				Brand:      "Sunlu",
				Material:   "PLA+",
				ColorName:  "Yellow",
				DiameterMM: 1.75,
				Quantity:   2,
				Price:      &price,
			},
			{TitleRaw: "mystery filament PLA", Material: "PLA", Quantity: 1},
		},
	}
}

func TestImportCreatesProductsSpoolsAndOrderItems(t *testing.T) {
	products := &fakeProducts{}
	spools := &fakeSpools{}
	orders := &fakeOrders{}
	im := NewImporter(products, spools, orders, nil)

	summary, err := im.Import(context.Background(), sampleParsedInvoice())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if !summary.Success {
		t.Fatalf("summary not marked successful")
	}
	if summary.ProductsCreated != 1 {
		t.Fatalf("ProductsCreated = %d, want 1", summary.ProductsCreated)
	}
	if summary.SpoolsCreated != 2 {
		t.Fatalf("SpoolsCreated = %d, want 2", summary.SpoolsCreated)
	}
	if summary.Vendor != "Amazon" || summary.OrderDate != "2024-03-18" {
		t.Fatalf("summary header = %+v", summary)
	}
	// Empty order numbers import under a stable placeholder.
	if summary.OrderNumber != "unknown" {
		t.Fatalf("OrderNumber = %q, want unknown", summary.OrderNumber)
	}

	if len(orders.items) != 2 {
		t.Fatalf("order items = %d, want 2", len(orders.items))
	}
	if orders.items[0].Status != string(constants.OrderItemStatusConfirmed) {
		t.Fatalf("first item status = %q", orders.items[0].Status)
	}
	// The incomplete second item stays pending with no product link.
	if orders.items[1].Status != string(constants.OrderItemStatusPendingMapping) {
		t.Fatalf("second item status = %q", orders.items[1].Status)
	}
	if orders.items[1].ProductID != nil {
		t.Fatalf("pending item should have no product")
	}

	if len(spools.created) != 2 {
		t.Fatalf("spools created = %d, want 2", len(spools.created))
	}
	for _, sp := range spools.created {
		if sp.Status != string(constants.SpoolStatusInStock) {
			t.Fatalf("spool status = %q", sp.Status)
		}
		if sp.Vendor == nil || *sp.Vendor != "Amazon" {
			t.Fatalf("spool vendor = %v", sp.Vendor)
		}
		if sp.PurchaseDate == nil || sp.PurchaseDate.Format("2006-01-02") != "2024-03-18" {
			t.Fatalf("spool purchase date = %v", sp.PurchaseDate)
		}
		if sp.OrderID == nil {
			t.Fatalf("spool not linked to the order")
		}
	}
}

func TestImportReusesExistingProduct(t *testing.T) {
	products := &fakeProducts{existing: []*entity.Product{{
		ID:         uuid.New(),
		Brand:      "Sunlu",
		Material:   "PLA+",
		ColorName:  "Yellow",
		DiameterMM: 1.75,
	}}}
	spools := &fakeSpools{}
	orders := &fakeOrders{}
	im := NewImporter(products, spools, orders, nil)

	inv := sampleParsedInvoice()
	inv.Items = inv.Items[:1]

	summary, err := im.Import(context.Background(), inv)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if summary.ProductsCreated != 0 {
		t.Fatalf("ProductsCreated = %d, want 0 for existing product", summary.ProductsCreated)
	}
	if len(products.created) != 0 {
		t.Fatalf("product creation called for an existing product")
	}
	if summary.SpoolsCreated != 2 {
		t.Fatalf("SpoolsCreated = %d, want 2", summary.SpoolsCreated)
	}
	if summary.Items[0].ProductID != products.existing[0].ID.String() {
		t.Fatalf("item not linked to existing product")
	}
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	im := NewImporter(&fakeProducts{}, &fakeSpools{}, &fakeOrders{}, nil)

	_, err := im.Import(context.Background(), &entity.ParsedInvoice{Vendor: "", Currency: "USD"})
	if err == nil {
		t.Fatalf("expected schema validation failure")
	}
}
