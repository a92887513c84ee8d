package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a vendor purchase for data transfer between layers.
type Order struct {
	ID          uuid.UUID  `json:"id"`
	Vendor      string     `json:"vendor"`
	OrderNumber string     `json:"order_number"`
	OrderDate   *time.Time `json:"order_date,omitempty"`
	InvoicePath *string    `json:"invoice_path,omitempty"`
	TotalAmount *float64   `json:"total_amount,omitempty"`
	Currency    string     `json:"currency"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OrderItem represents one invoice line item.
type OrderItem struct {
	ID        uuid.UUID  `json:"id"`
	OrderID   uuid.UUID  `json:"order_id"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	TitleRaw  string     `json:"title_raw"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
