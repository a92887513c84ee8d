package invoice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/filatrack/filatrack/internal/entity"
)

func TestInvoiceSchemaAcceptsParsedInvoice(t *testing.T) {
	date := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	price := 18.99
	total := 59.47
	inv := &entity.ParsedInvoice{
		Vendor:      "Amazon",
		OrderNumber: "112-9876543-1234567",
		OrderDate:   &date,
		TotalAmount: &total,
		Currency:    "USD",
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
			{TitleRaw: "mystery filament", Quantity: 1},
		},
	}

	doc, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), doc); err != nil {
		t.Fatalf("valid invoice rejected: %v", err)
	}
}

func TestInvoiceSchemaRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing vendor", `{"currency":"USD","items":[{"title_raw":"x","quantity":1}]}`},
		{"empty items", `{"vendor":"Amazon","currency":"USD","items":[]}`},
		{"zero quantity", `{"vendor":"Amazon","currency":"USD","items":[{"title_raw":"x","quantity":0}]}`},
		{"bad currency", `{"vendor":"Amazon","currency":"DOLLARS","items":[{"title_raw":"x","quantity":1}]}`},
		{"unknown field", `{"vendor":"Amazon","currency":"USD","surprise":true,"items":[{"title_raw":"x","quantity":1}]}`},
	}
	schema := BuildInvoiceJSONSchema()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tc.doc)); err == nil {
				t.Fatalf("schema accepted %s", tc.doc)
			}
		})
	}
}
