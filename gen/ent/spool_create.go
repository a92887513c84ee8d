// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filatrack/filatrack/gen/ent/order"
	"github.com/filatrack/filatrack/gen/ent/product"
	"github.com/filatrack/filatrack/gen/ent/spool"
	"github.com/google/uuid"
)

// SpoolCreate is the builder for creating a Spool entity.
type SpoolCreate struct {
	config
	mutation *SpoolMutation
	hooks    []Hook
}

// SetProductID sets the "product_id" field.
func (_c *SpoolCreate) SetProductID(v uuid.UUID) *SpoolCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *SpoolCreate) SetOrderID(v uuid.UUID) *SpoolCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *SpoolCreate) SetNillableOrderID(v *uuid.UUID) *SpoolCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetPurchaseDate sets the "purchase_date" field.
func (_c *SpoolCreate) SetPurchaseDate(v time.Time) *SpoolCreate {
	_c.mutation.SetPurchaseDate(v)
	return _c
}

// SetNillablePurchaseDate sets the "purchase_date" field if the given value is not nil.
func (_c *SpoolCreate) SetNillablePurchaseDate(v *time.Time) *SpoolCreate {
	if v != nil {
		_c.SetPurchaseDate(*v)
	}
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *SpoolCreate) SetVendor(v string) *SpoolCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_c *SpoolCreate) SetNillableVendor(v *string) *SpoolCreate {
	if v != nil {
		_c.SetVendor(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *SpoolCreate) SetPrice(v float64) *SpoolCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *SpoolCreate) SetNillablePrice(v *float64) *SpoolCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetStorageLocation sets the "storage_location" field.
func (_c *SpoolCreate) SetStorageLocation(v string) *SpoolCreate {
	_c.mutation.SetStorageLocation(v)
	return _c
}

// SetNillableStorageLocation sets the "storage_location" field if the given value is not nil.
func (_c *SpoolCreate) SetNillableStorageLocation(v *string) *SpoolCreate {
	if v != nil {
		_c.SetStorageLocation(*v)
	}
	return _c
}

// SetPhotoPath sets the "photo_path" field.
func (_c *SpoolCreate) SetPhotoPath(v string) *SpoolCreate {
	_c.mutation.SetPhotoPath(v)
	return _c
}

// SetNillablePhotoPath sets the "photo_path" field if the given value is not nil.
func (_c *SpoolCreate) SetNillablePhotoPath(v *string) *SpoolCreate {
	if v != nil {
		_c.SetPhotoPath(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SpoolCreate) SetStatus(v spool.Status) *SpoolCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SpoolCreate) SetNillableStatus(v *spool.Status) *SpoolCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpoolCreate) SetCreatedAt(v time.Time) *SpoolCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpoolCreate) SetNillableCreatedAt(v *time.Time) *SpoolCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SpoolCreate) SetUpdatedAt(v time.Time) *SpoolCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SpoolCreate) SetNillableUpdatedAt(v *time.Time) *SpoolCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpoolCreate) SetID(v uuid.UUID) *SpoolCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SpoolCreate) SetNillableID(v *uuid.UUID) *SpoolCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *SpoolCreate) SetProduct(v *Product) *SpoolCreate {
	return _c.SetProductID(v.ID)
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *SpoolCreate) SetOrder(v *Order) *SpoolCreate {
	return _c.SetOrderID(v.ID)
}

// Mutation returns the SpoolMutation object of the builder.
func (_c *SpoolCreate) Mutation() *SpoolMutation {
	return _c.mutation
}

// Save creates the Spool in the database.
func (_c *SpoolCreate) Save(ctx context.Context) (*Spool, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpoolCreate) SaveX(ctx context.Context) *Spool {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpoolCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpoolCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpoolCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := spool.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := spool.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := spool.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := spool.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpoolCreate) check() error {
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "Spool.product_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Spool.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := spool.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Spool.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Spool.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Spool.updated_at"`)}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "Spool.product"`)}
	}
	return nil
}

func (_c *SpoolCreate) sqlSave(ctx context.Context) (*Spool, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpoolCreate) createSpec() (*Spool, *sqlgraph.CreateSpec) {
	var (
		_node = &Spool{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(spool.Table, sqlgraph.NewFieldSpec(spool.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PurchaseDate(); ok {
		_spec.SetField(spool.FieldPurchaseDate, field.TypeTime, value)
		_node.PurchaseDate = &value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(spool.FieldVendor, field.TypeString, value)
		_node.Vendor = &value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(spool.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.StorageLocation(); ok {
		_spec.SetField(spool.FieldStorageLocation, field.TypeString, value)
		_node.StorageLocation = &value
	}
	if value, ok := _c.mutation.PhotoPath(); ok {
		_spec.SetField(spool.FieldPhotoPath, field.TypeString, value)
		_node.PhotoPath = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(spool.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(spool.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(spool.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   spool.ProductTable,
			Columns: []string{spool.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   spool.OrderTable,
			Columns: []string{spool.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrderID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SpoolCreateBulk is the builder for creating many Spool entities in bulk.
type SpoolCreateBulk struct {
	config
	err      error
	builders []*SpoolCreate
}

// Save creates the Spool entities in the database.
func (_c *SpoolCreateBulk) Save(ctx context.Context) ([]*Spool, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Spool, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpoolMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SpoolCreateBulk) SaveX(ctx context.Context) []*Spool {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpoolCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpoolCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
