package entity

// LabelFields holds the structured attributes recognized on a filament label.
// A nil field means the matcher found nothing; that is expected, not an error.
type LabelFields struct {
	Brand      *string  `json:"brand"`
	Material   *string  `json:"material"`
	ColorName  *string  `json:"color_name"`
	DiameterMM *float64 `json:"diameter_mm"`
	Barcode    *string  `json:"barcode"`
}

// ScanResult is the immutable outcome of one label scan. Confidence is the
// engine's mean word confidence in [0,100]; it is 0 exactly when RawText is
// empty or no valid OCR response was obtained.
type ScanResult struct {
	LabelFields
	RawText      string  `json:"raw_text"`
	Confidence   float64 `json:"ocr_confidence"`
	StrategyUsed string  `json:"strategy_used"`
	Error        string  `json:"error,omitempty"`
}

// ImportSummary reports what an invoice import created.
type ImportSummary struct {
	Success         bool           `json:"success"`
	ProductsCreated int            `json:"products_created"`
	SpoolsCreated   int            `json:"spools_created"`
	OrderID         string         `json:"order_id"`
	OrderNumber     string         `json:"order_number"`
	OrderDate       string         `json:"order_date,omitempty"`
	Vendor          string         `json:"vendor"`
	Items           []ImportedItem `json:"items"`
}

// ImportedItem is one line of an import summary.
type ImportedItem struct {
	ProductID string  `json:"product_id,omitempty"`
	Brand     string  `json:"brand"`
	Material  string  `json:"material"`
	ColorName string  `json:"color_name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
}
