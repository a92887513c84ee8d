// Package utils converts generated ent rows into transport-friendly
// entity values so the layers above never touch the ORM types.
package utils

import (
	"github.com/filatrack/filatrack/gen/ent"
	"github.com/filatrack/filatrack/internal/entity"
)

func ToProduct(row *ent.Product) *entity.Product {
	return &entity.Product{
		ID:         row.ID,
		Brand:      row.Brand,
		Line:       row.Line,
		Material:   row.Material,
		ColorName:  row.ColorName,
		DiameterMM: row.DiameterMm,
		Notes:      row.Notes,
		Barcode:    row.Barcode,
		SKU:        row.Sku,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func ToSpool(row *ent.Spool) *entity.Spool {
	return &entity.Spool{
		ID:              row.ID,
		ProductID:       row.ProductID,
		OrderID:         row.OrderID,
		PurchaseDate:    row.PurchaseDate,
		Vendor:          row.Vendor,
		Price:           row.Price,
		StorageLocation: row.StorageLocation,
		PhotoPath:       row.PhotoPath,
		Status:          string(row.Status),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func ToOrder(row *ent.Order) *entity.Order {
	return &entity.Order{
		ID:          row.ID,
		Vendor:      row.Vendor,
		OrderNumber: row.OrderNumber,
		OrderDate:   row.OrderDate,
		InvoicePath: row.InvoicePath,
		TotalAmount: row.TotalAmount,
		Currency:    row.Currency,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func ToOrderItem(row *ent.OrderItem) *entity.OrderItem {
	return &entity.OrderItem{
		ID:        row.ID,
		OrderID:   row.OrderID,
		ProductID: row.ProductID,
		TitleRaw:  row.TitleRaw,
		Quantity:  row.Quantity,
		UnitPrice: row.UnitPrice,
		Currency:  row.Currency,
		Status:    string(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
