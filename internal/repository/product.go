package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/filatrack/filatrack/gen/ent"
	"github.com/filatrack/filatrack/gen/ent/product"
	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/utils"
)

// CreateProductRequest wraps parameters for creating a product.
type CreateProductRequest struct {
	Brand      string
	Line       *string
	Material   string
	ColorName  string
	DiameterMM float64
	Notes      *string
	Barcode    *string
	SKU        *string
}

// UpdateProductRequest carries the fields to change; nil means leave as-is.
type UpdateProductRequest struct {
	Brand      *string
	Line       *string
	Material   *string
	ColorName  *string
	DiameterMM *float64
	Notes      *string
	Barcode    *string
	SKU        *string
}

// ProductFilter narrows List; empty strings match everything. Matching is
// case-insensitive substring, same as the API's query params.
type ProductFilter struct {
	Brand     string
	Material  string
	ColorName string
}

type ProductRepository interface {
	Create(ctx context.Context, req CreateProductRequest) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// FindExact locates a product by its full identity tuple; used by the
	// invoice importer to avoid duplicates. Returns nil when absent.
	FindExact(ctx context.Context, brand, material, colorName string, diameterMM float64) (*entity.Product, error)
}

type productRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProductRepository(client *ent.Client, logger *slog.Logger) ProductRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &productRepository{client: client, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, req CreateProductRequest) (*entity.Product, error) {
	row, err := r.client.Product.Create().
		SetBrand(req.Brand).
		SetNillableLine(req.Line).
		SetMaterial(req.Material).
		SetColorName(req.ColorName).
		SetDiameterMm(req.DiameterMM).
		SetNillableNotes(req.Notes).
		SetNillableBarcode(req.Barcode).
		SetNillableSku(req.SKU).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create product", "brand", req.Brand, "error", err)
		return nil, common.WrapError(err, "create product")
	}
	return utils.ToProduct(row), nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error) {
	q := r.client.Product.Query()
	if filter.Brand != "" {
		q = q.Where(product.BrandContainsFold(filter.Brand))
	}
	if filter.Material != "" {
		q = q.Where(product.MaterialContainsFold(filter.Material))
	}
	if filter.ColorName != "" {
		q = q.Where(product.ColorNameContainsFold(filter.ColorName))
	}
	rows, err := q.Order(ent.Asc(product.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list products", "error", err)
		return nil, common.WrapError(err, "list products")
	}

	result := make([]*entity.Product, len(rows))
	for i, row := range rows {
		result[i] = utils.ToProduct(row)
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	row, err := r.client.Product.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("product %s: %w", id, common.ErrNotFound)
		}
		return nil, common.WrapError(err, "get product")
	}
	return utils.ToProduct(row), nil
}

func (r *productRepository) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*entity.Product, error) {
	b := r.client.Product.UpdateOneID(id)
	if req.Brand != nil {
		b = b.SetBrand(*req.Brand)
	}
	if req.Line != nil {
		b = b.SetLine(*req.Line)
	}
	if req.Material != nil {
		b = b.SetMaterial(*req.Material)
	}
	if req.ColorName != nil {
		b = b.SetColorName(*req.ColorName)
	}
	if req.DiameterMM != nil {
		b = b.SetDiameterMm(*req.DiameterMM)
	}
	if req.Notes != nil {
		b = b.SetNotes(*req.Notes)
	}
	if req.Barcode != nil {
		b = b.SetBarcode(*req.Barcode)
	}
	if req.SKU != nil {
		b = b.SetSku(*req.SKU)
	}

	row, err := b.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("product %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to update product", "id", id, "error", err)
		return nil, common.WrapError(err, "update product")
	}
	return utils.ToProduct(row), nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Product.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("product %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to delete product", "id", id, "error", err)
		return common.WrapError(err, "delete product")
	}
	return nil
}

func (r *productRepository) FindExact(ctx context.Context, brand, material, colorName string, diameterMM float64) (*entity.Product, error) {
	row, err := r.client.Product.Query().
		Where(
			product.BrandEqualFold(brand),
			product.MaterialEqualFold(material),
			product.ColorNameEqualFold(colorName),
			product.DiameterMm(diameterMM),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, common.WrapError(err, "find product")
	}
	return utils.ToProduct(row), nil
}
