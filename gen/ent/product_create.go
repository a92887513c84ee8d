// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filatrack/filatrack/gen/ent/orderitem"
	"github.com/filatrack/filatrack/gen/ent/product"
	"github.com/filatrack/filatrack/gen/ent/spool"
	"github.com/google/uuid"
)

// ProductCreate is the builder for creating a Product entity.
type ProductCreate struct {
	config
	mutation *ProductMutation
	hooks    []Hook
}

// SetBrand sets the "brand" field.
func (_c *ProductCreate) SetBrand(v string) *ProductCreate {
	_c.mutation.SetBrand(v)
	return _c
}

// SetLine sets the "line" field.
func (_c *ProductCreate) SetLine(v string) *ProductCreate {
	_c.mutation.SetLine(v)
	return _c
}

// SetNillableLine sets the "line" field if the given value is not nil.
func (_c *ProductCreate) SetNillableLine(v *string) *ProductCreate {
	if v != nil {
		_c.SetLine(*v)
	}
	return _c
}

// SetMaterial sets the "material" field.
func (_c *ProductCreate) SetMaterial(v string) *ProductCreate {
	_c.mutation.SetMaterial(v)
	return _c
}

// SetColorName sets the "color_name" field.
func (_c *ProductCreate) SetColorName(v string) *ProductCreate {
	_c.mutation.SetColorName(v)
	return _c
}

// SetDiameterMm sets the "diameter_mm" field.
func (_c *ProductCreate) SetDiameterMm(v float64) *ProductCreate {
	_c.mutation.SetDiameterMm(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ProductCreate) SetNotes(v string) *ProductCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ProductCreate) SetNillableNotes(v *string) *ProductCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetBarcode sets the "barcode" field.
func (_c *ProductCreate) SetBarcode(v string) *ProductCreate {
	_c.mutation.SetBarcode(v)
	return _c
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_c *ProductCreate) SetNillableBarcode(v *string) *ProductCreate {
	if v != nil {
		_c.SetBarcode(*v)
	}
	return _c
}

// SetSku sets the "sku" field.
func (_c *ProductCreate) SetSku(v string) *ProductCreate {
	_c.mutation.SetSku(v)
	return _c
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_c *ProductCreate) SetNillableSku(v *string) *ProductCreate {
	if v != nil {
		_c.SetSku(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductCreate) SetCreatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableCreatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProductCreate) SetUpdatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableUpdatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductCreate) SetID(v uuid.UUID) *ProductCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProductCreate) SetNillableID(v *uuid.UUID) *ProductCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSpoolIDs adds the "spools" edge to the Spool entity by IDs.
func (_c *ProductCreate) AddSpoolIDs(ids ...uuid.UUID) *ProductCreate {
	_c.mutation.AddSpoolIDs(ids...)
	return _c
}

// AddSpools adds the "spools" edges to the Spool entity.
func (_c *ProductCreate) AddSpools(v ...*Spool) *ProductCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSpoolIDs(ids...)
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_c *ProductCreate) AddOrderItemIDs(ids ...uuid.UUID) *ProductCreate {
	_c.mutation.AddOrderItemIDs(ids...)
	return _c
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_c *ProductCreate) AddOrderItems(v ...*OrderItem) *ProductCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderItemIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_c *ProductCreate) Mutation() *ProductMutation {
	return _c.mutation
}

// Save creates the Product in the database.
func (_c *ProductCreate) Save(ctx context.Context) (*Product, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductCreate) SaveX(ctx context.Context) *Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := product.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := product.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := product.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductCreate) check() error {
	if _, ok := _c.mutation.Brand(); !ok {
		return &ValidationError{Name: "brand", err: errors.New(`ent: missing required field "Product.brand"`)}
	}
	if v, ok := _c.mutation.Brand(); ok {
		if err := product.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Product.brand": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Material(); !ok {
		return &ValidationError{Name: "material", err: errors.New(`ent: missing required field "Product.material"`)}
	}
	if v, ok := _c.mutation.Material(); ok {
		if err := product.MaterialValidator(v); err != nil {
			return &ValidationError{Name: "material", err: fmt.Errorf(`ent: validator failed for field "Product.material": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ColorName(); !ok {
		return &ValidationError{Name: "color_name", err: errors.New(`ent: missing required field "Product.color_name"`)}
	}
	if v, ok := _c.mutation.ColorName(); ok {
		if err := product.ColorNameValidator(v); err != nil {
			return &ValidationError{Name: "color_name", err: fmt.Errorf(`ent: validator failed for field "Product.color_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiameterMm(); !ok {
		return &ValidationError{Name: "diameter_mm", err: errors.New(`ent: missing required field "Product.diameter_mm"`)}
	}
	if v, ok := _c.mutation.DiameterMm(); ok {
		if err := product.DiameterMmValidator(v); err != nil {
			return &ValidationError{Name: "diameter_mm", err: fmt.Errorf(`ent: validator failed for field "Product.diameter_mm": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Product.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Product.updated_at"`)}
	}
	return nil
}

func (_c *ProductCreate) sqlSave(ctx context.Context) (*Product, error) {
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

func (_c *ProductCreate) createSpec() (*Product, *sqlgraph.CreateSpec) {
	var (
		_node = &Product{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(product.Table, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Brand(); ok {
		_spec.SetField(product.FieldBrand, field.TypeString, value)
		_node.Brand = value
	}
	if value, ok := _c.mutation.Line(); ok {
		_spec.SetField(product.FieldLine, field.TypeString, value)
		_node.Line = &value
	}
	if value, ok := _c.mutation.Material(); ok {
		_spec.SetField(product.FieldMaterial, field.TypeString, value)
		_node.Material = value
	}
	if value, ok := _c.mutation.ColorName(); ok {
		_spec.SetField(product.FieldColorName, field.TypeString, value)
		_node.ColorName = value
	}
	if value, ok := _c.mutation.DiameterMm(); ok {
		_spec.SetField(product.FieldDiameterMm, field.TypeFloat64, value)
		_node.DiameterMm = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(product.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Barcode(); ok {
		_spec.SetField(product.FieldBarcode, field.TypeString, value)
		_node.Barcode = &value
	}
	if value, ok := _c.mutation.Sku(); ok {
		_spec.SetField(product.FieldSku, field.TypeString, value)
		_node.Sku = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SpoolsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.SpoolsTable,
			Columns: []string{product.SpoolsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spool.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrderItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.OrderItemsTable,
			Columns: []string{product.OrderItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductCreateBulk is the builder for creating many Product entities in bulk.
type ProductCreateBulk struct {
	config
	err      error
	builders []*ProductCreate
}

// Save creates the Product entities in the database.
func (_c *ProductCreateBulk) Save(ctx context.Context) ([]*Product, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Product, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductMutation)
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
func (_c *ProductCreateBulk) SaveX(ctx context.Context) []*Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
