package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/filatrack/filatrack/gen/ent"
	"github.com/filatrack/filatrack/gen/ent/order"
	"github.com/filatrack/filatrack/gen/ent/orderitem"
	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/utils"
)

// CreateOrderRequest wraps the order header written during an invoice import.
type CreateOrderRequest struct {
	Vendor      string
	OrderNumber string
	OrderDate   *time.Time
	InvoicePath *string
	TotalAmount *float64
	Currency    string // empty -> USD
}

// CreateOrderItemRequest is one line item under an existing order.
type CreateOrderItemRequest struct {
	OrderID   uuid.UUID
	ProductID *uuid.UUID
	TitleRaw  string
	Quantity  int
	UnitPrice float64
	Currency  string // empty -> order currency
	Status    string // empty -> pending_mapping
}

type OrderRepository interface {
	Create(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)
	CreateItem(ctx context.Context, req CreateOrderItemRequest) (*entity.OrderItem, error)
	List(ctx context.Context) ([]*entity.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
}

type orderRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOrderRepository(client *ent.Client, logger *slog.Logger) OrderRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderRepository{client: client, logger: logger}
}

func (r *orderRepository) Create(ctx context.Context, req CreateOrderRequest) (*entity.Order, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	row, err := r.client.Order.Create().
		SetVendor(req.Vendor).
		SetOrderNumber(req.OrderNumber).
		SetNillableOrderDate(req.OrderDate).
		SetNillableInvoicePath(req.InvoicePath).
		SetNillableTotalAmount(req.TotalAmount).
		SetCurrency(currency).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create order", "order_number", req.OrderNumber, "error", err)
		return nil, common.WrapError(err, "create order")
	}
	return utils.ToOrder(row), nil
}

func (r *orderRepository) CreateItem(ctx context.Context, req CreateOrderItemRequest) (*entity.OrderItem, error) {
	b := r.client.OrderItem.Create().
		SetOrderID(req.OrderID).
		SetNillableProductID(req.ProductID).
		SetTitleRaw(req.TitleRaw).
		SetQuantity(req.Quantity).
		SetUnitPrice(req.UnitPrice)
	if req.Currency != "" {
		b = b.SetCurrency(req.Currency)
	}
	if req.Status != "" {
		b = b.SetStatus(orderitem.Status(req.Status))
	}

	row, err := b.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create order item", "order_id", req.OrderID, "error", err)
		return nil, common.WrapError(err, "create order item")
	}
	return utils.ToOrderItem(row), nil
}

func (r *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.client.Order.Query().Order(ent.Desc(order.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list orders", "error", err)
		return nil, common.WrapError(err, "list orders")
	}

	result := make([]*entity.Order, len(rows))
	for i, row := range rows {
		result[i] = utils.ToOrder(row)
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	row, err := r.client.Order.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("order %s: %w", id, common.ErrNotFound)
		}
		return nil, common.WrapError(err, "get order")
	}
	return utils.ToOrder(row), nil
}

func (r *orderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	rows, err := r.client.OrderItem.Query().
		Where(orderitem.OrderID(orderID)).
		Order(ent.Asc(orderitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list order items", "order_id", orderID, "error", err)
		return nil, common.WrapError(err, "list order items")
	}

	result := make([]*entity.OrderItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToOrderItem(row)
	}
	return result, nil
}
