package entity

import (
	"time"

	"github.com/google/uuid"
)

// Spool represents a physical spool for data transfer between layers.
type Spool struct {
	ID              uuid.UUID  `json:"id"`
	ProductID       uuid.UUID  `json:"product_id"`
	OrderID         *uuid.UUID `json:"order_id,omitempty"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	Vendor          *string    `json:"vendor,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	StorageLocation *string    `json:"storage_location,omitempty"`
	PhotoPath       *string    `json:"photo_path,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
