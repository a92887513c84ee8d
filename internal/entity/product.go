package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a filament product for data transfer between layers.
type Product struct {
	ID         uuid.UUID `json:"id"`
	Brand      string    `json:"brand"`
	Line       *string   `json:"line,omitempty"`
	Material   string    `json:"material"`
	ColorName  string    `json:"color_name"`
	DiameterMM float64   `json:"diameter_mm"`
	Notes      *string   `json:"notes,omitempty"`
	Barcode    *string   `json:"barcode,omitempty"`
	SKU        *string   `json:"sku,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
