package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/filatrack/filatrack/constants"
	"github.com/filatrack/filatrack/gen/ent"
	"github.com/filatrack/filatrack/gen/ent/spool"
	"github.com/filatrack/filatrack/internal/common"
	"github.com/filatrack/filatrack/internal/entity"
	"github.com/filatrack/filatrack/internal/utils"
)

// CreateSpoolRequest wraps parameters for creating a spool.
type CreateSpoolRequest struct {
	ProductID       uuid.UUID
	OrderID         *uuid.UUID
	PurchaseDate    *time.Time
	Vendor          *string
	Price           *float64
	StorageLocation *string
	PhotoPath       *string
	Status          string // empty -> in_stock
}

// UpdateSpoolRequest carries the fields to change; nil means leave as-is.
type UpdateSpoolRequest struct {
	ProductID       *uuid.UUID
	OrderID         *uuid.UUID
	PurchaseDate    *time.Time
	Vendor          *string
	Price           *float64
	StorageLocation *string
	PhotoPath       *string
	Status          *string
}

// SpoolFilter narrows List; zero values match everything.
type SpoolFilter struct {
	Status    string
	ProductID *uuid.UUID
}

type SpoolRepository interface {
	Create(ctx context.Context, req CreateSpoolRequest) (*entity.Spool, error)
	List(ctx context.Context, filter SpoolFilter) ([]*entity.Spool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Spool, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateSpoolRequest) (*entity.Spool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkUsed flips the spool to used_up in one step.
	MarkUsed(ctx context.Context, id uuid.UUID) (*entity.Spool, error)
}

type spoolRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSpoolRepository(client *ent.Client, logger *slog.Logger) SpoolRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &spoolRepository{client: client, logger: logger}
}

func (r *spoolRepository) Create(ctx context.Context, req CreateSpoolRequest) (*entity.Spool, error) {
	status := req.Status
	if status == "" {
		status = string(constants.SpoolStatusInStock)
	}
	row, err := r.client.Spool.Create().
		SetProductID(req.ProductID).
		SetNillableOrderID(req.OrderID).
		SetNillablePurchaseDate(req.PurchaseDate).
		SetNillableVendor(req.Vendor).
		SetNillablePrice(req.Price).
		SetNillableStorageLocation(req.StorageLocation).
		SetNillablePhotoPath(req.PhotoPath).
		SetStatus(spool.Status(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create spool", "product_id", req.ProductID, "error", err)
		return nil, common.WrapError(err, "create spool")
	}
	return utils.ToSpool(row), nil
}

func (r *spoolRepository) List(ctx context.Context, filter SpoolFilter) ([]*entity.Spool, error) {
	q := r.client.Spool.Query()
	if filter.Status != "" {
		q = q.Where(spool.StatusEQ(spool.Status(filter.Status)))
	}
	if filter.ProductID != nil {
		q = q.Where(spool.ProductID(*filter.ProductID))
	}
	rows, err := q.Order(ent.Asc(spool.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list spools", "error", err)
		return nil, common.WrapError(err, "list spools")
	}

	result := make([]*entity.Spool, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSpool(row)
	}
	return result, nil
}

func (r *spoolRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Spool, error) {
	row, err := r.client.Spool.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("spool %s: %w", id, common.ErrNotFound)
		}
		return nil, common.WrapError(err, "get spool")
	}
	return utils.ToSpool(row), nil
}

func (r *spoolRepository) Update(ctx context.Context, id uuid.UUID, req UpdateSpoolRequest) (*entity.Spool, error) {
	b := r.client.Spool.UpdateOneID(id)
	if req.ProductID != nil {
		b = b.SetProductID(*req.ProductID)
	}
	if req.OrderID != nil {
		b = b.SetOrderID(*req.OrderID)
	}
	if req.PurchaseDate != nil {
		b = b.SetPurchaseDate(*req.PurchaseDate)
	}
	if req.Vendor != nil {
		b = b.SetVendor(*req.Vendor)
	}
	if req.Price != nil {
		b = b.SetPrice(*req.Price)
	}
	if req.StorageLocation != nil {
		b = b.SetStorageLocation(*req.StorageLocation)
	}
	if req.PhotoPath != nil {
		b = b.SetPhotoPath(*req.PhotoPath)
	}
	if req.Status != nil {
		b = b.SetStatus(spool.Status(*req.Status))
	}

	row, err := b.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("spool %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to update spool", "id", id, "error", err)
		return nil, common.WrapError(err, "update spool")
	}
	return utils.ToSpool(row), nil
}

func (r *spoolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Spool.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("spool %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to delete spool", "id", id, "error", err)
		return common.WrapError(err, "delete spool")
	}
	return nil
}

func (r *spoolRepository) MarkUsed(ctx context.Context, id uuid.UUID) (*entity.Spool, error) {
	row, err := r.client.Spool.UpdateOneID(id).
		SetStatus(spool.Status(constants.SpoolStatusUsedUp)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("spool %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to mark spool used", "id", id, "error", err)
		return nil, common.WrapError(err, "mark spool used")
	}
	return utils.ToSpool(row), nil
}
