package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/filatrack/filatrack/constants"
	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/repository"
)

// Importer persists a parsed invoice: one Order, an OrderItem per line, a
// Product per distinct filament and a Spool per unit of quantity.
type Importer struct {
	products repository.ProductRepository
	spools   repository.SpoolRepository
	orders   repository.OrderRepository
	logger   *slog.Logger
}

func NewImporter(products repository.ProductRepository, spools repository.SpoolRepository, orders repository.OrderRepository, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{products: products, spools: spools, orders: orders, logger: logger}
}

// Import validates inv against the invoice schema and writes it to the
// database. Items missing any part of the product identity tuple
// (brand, material, color, diameter) are stored as pending_mapping order
// items with no product and no spools.
func (im *Importer) Import(ctx context.Context, inv *entity.ParsedInvoice) (*entity.ImportSummary, error) {
	doc, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("marshal invoice: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), doc); err != nil {
		return nil, common.NewAppError("INVOICE_INVALID", "parsed invoice failed validation", err)
	}

	orderNumber := inv.OrderNumber
	if orderNumber == "" {
		orderNumber = "unknown"
	}
	order, err := im.orders.Create(ctx, repository.CreateOrderRequest{
		Vendor:      inv.Vendor,
		OrderNumber: orderNumber,
		OrderDate:   inv.OrderDate,
		TotalAmount: inv.TotalAmount,
		Currency:    inv.Currency,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	summary := &entity.ImportSummary{
		Success:     true,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Vendor:      order.Vendor,
	}
	if order.OrderDate != nil {
		summary.OrderDate = order.OrderDate.Format("2006-01-02")
	}

	for _, item := range inv.Items {
		imported, createdProduct, err := im.importItem(ctx, order, item)
		if err != nil {
			return nil, err
		}
		if createdProduct {
			summary.ProductsCreated++
		}
		if imported.Status == string(constants.OrderItemStatusConfirmed) {
			summary.SpoolsCreated += imported.Quantity
		}
		summary.Items = append(summary.Items, *imported)
	}

	im.logger.Info("invoice imported",
		"order_id", summary.OrderID,
		"products_created", summary.ProductsCreated,
		"spools_created", summary.SpoolsCreated,
		"items", len(summary.Items))
	return summary, nil
}

func (im *Importer) importItem(ctx context.Context, order *entity.Order, item entity.ParsedItem) (*entity.ImportedItem, bool, error) {
	price := 0.0
	if item.Price != nil {
		price = *item.Price
	}

	// Incomplete identity tuple: keep the raw title for manual mapping later.
	if item.Brand == "" || item.Material == "" || item.ColorName == "" || item.DiameterMM == 0 {
		if _, err := im.orders.CreateItem(ctx, repository.CreateOrderItemRequest{
			OrderID:   order.ID,
			TitleRaw:  item.TitleRaw,
			Quantity:  item.Quantity,
			UnitPrice: price,
			Currency:  order.Currency,
			Status:    string(constants.OrderItemStatusPendingMapping),
		}); err != nil {
			return nil, false, fmt.Errorf("create order item: %w", err)
		}
		return &entity.ImportedItem{
			Brand:     item.Brand,
			Material:  item.Material,
			ColorName: item.ColorName,
			Quantity:  item.Quantity,
			Price:     price,
			Status:    string(constants.OrderItemStatusPendingMapping),
		}, false, nil
	}

	product, err := im.products.FindExact(ctx, item.Brand, item.Material, item.ColorName, item.DiameterMM)
	if err != nil {
		return nil, false, fmt.Errorf("find product: %w", err)
	}
	createdProduct := false
	if product == nil {
		product, err = im.products.Create(ctx, repository.CreateProductRequest{
			Brand:      item.Brand,
			Material:   item.Material,
			ColorName:  item.ColorName,
			DiameterMM: item.DiameterMM,
		})
		if err != nil {
			return nil, false, fmt.Errorf("create product: %w", err)
		}
		createdProduct = true
	}

	if _, err := im.orders.CreateItem(ctx, repository.CreateOrderItemRequest{
		OrderID:   order.ID,
		ProductID: &product.ID,
		TitleRaw:  item.TitleRaw,
		Quantity:  item.Quantity,
		UnitPrice: price,
		Currency:  order.Currency,
		Status:    string(constants.OrderItemStatusConfirmed),
	}); err != nil {
		return nil, false, fmt.Errorf("create order item: %w", err)
	}

	for i := 0; i < item.Quantity; i++ {
		if _, err := im.spools.Create(ctx, repository.CreateSpoolRequest{
			ProductID:    product.ID,
			OrderID:      &order.ID,
			PurchaseDate: order.OrderDate,
			Vendor:       &order.Vendor,
			Price:        item.Price,
			Status:       string(constants.SpoolStatusInStock),
		}); err != nil {
			return nil, false, fmt.Errorf("create spool: %w", err)
		}
	}

	return &entity.ImportedItem{
		ProductID: product.ID.String(),
		Brand:     product.Brand,
		Material:  product.Material,
		ColorName: product.ColorName,
		Quantity:  item.Quantity,
		Price:     price,
		Status:    string(constants.OrderItemStatusConfirmed),
	}, createdProduct, nil
}
