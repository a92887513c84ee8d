package entity

import "time"

// ParsedInvoice is the structured result of parsing a vendor invoice PDF.
type ParsedInvoice struct {
	Vendor      string       `json:"vendor"`
	OrderNumber string       `json:"order_number"`
	OrderDate   *time.Time   `json:"order_date,omitempty"`
	TotalAmount *float64     `json:"total_amount,omitempty"`
	Currency    string       `json:"currency"`
	Items       []ParsedItem `json:"items"`
}

// ParsedItem is one filament line item recognized on an invoice.
type ParsedItem struct {
	TitleRaw   string   `json:"title_raw"`
	Brand      string   `json:"brand,omitempty"`
	Material   string   `json:"material,omitempty"`
	ColorName  string   `json:"color_name,omitempty"`
	DiameterMM float64  `json:"diameter_mm,omitempty"`
	Quantity   int      `json:"quantity"`
	Price      *float64 `json:"price,omitempty"`
}
