// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/filatrack/filatrack/gen/ent/order"
	"github.com/filatrack/filatrack/gen/ent/predicate"
	"github.com/filatrack/filatrack/gen/ent/product"
	"github.com/filatrack/filatrack/gen/ent/spool"
	"github.com/google/uuid"
)

// SpoolUpdate is the builder for updating Spool entities.
type SpoolUpdate struct {
	config
	hooks    []Hook
	mutation *SpoolMutation
}

// Where appends a list predicates to the SpoolUpdate builder.
func (_u *SpoolUpdate) Where(ps ...predicate.Spool) *SpoolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *SpoolUpdate) SetProductID(v uuid.UUID) *SpoolUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *SpoolUpdate) SetNillableProductID(v *uuid.UUID) *SpoolUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *SpoolUpdate) SetOrderID(v uuid.UUID) *SpoolUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *SpoolUpdate) SetNillableOrderID(v *uuid.UUID) *SpoolUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *SpoolUpdate) ClearOrderID() *SpoolUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetPurchaseDate sets the "purchase_date" field.
func (_u *SpoolUpdate) SetPurchaseDate(v time.Time) *SpoolUpdate {
	_u.mutation.SetPurchaseDate(v)
	return _u
}

// SetNillablePurchaseDate sets the "purchase_date" field if the given value is not nil.
func (_u *SpoolUpdate) SetNillablePurchaseDate(v *time.Time) *SpoolUpdate {
	if v != nil {
		_u.SetPurchaseDate(*v)
	}
	return _u
}

// ClearPurchaseDate clears the value of the "purchase_date" field.
func (_u *SpoolUpdate) ClearPurchaseDate() *SpoolUpdate {
	_u.mutation.ClearPurchaseDate()
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *SpoolUpdate) SetVendor(v string) *SpoolUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *SpoolUpdate) SetNillableVendor(v *string) *SpoolUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// ClearVendor clears the value of the "vendor" field.
func (_u *SpoolUpdate) ClearVendor() *SpoolUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// SetPrice sets the "price" field.
func (_u *SpoolUpdate) SetPrice(v float64) *SpoolUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *SpoolUpdate) SetNillablePrice(v *float64) *SpoolUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *SpoolUpdate) AddPrice(v float64) *SpoolUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *SpoolUpdate) ClearPrice() *SpoolUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetStorageLocation sets the "storage_location" field.
func (_u *SpoolUpdate) SetStorageLocation(v string) *SpoolUpdate {
	_u.mutation.SetStorageLocation(v)
	return _u
}

// SetNillableStorageLocation sets the "storage_location" field if the given value is not nil.
func (_u *SpoolUpdate) SetNillableStorageLocation(v *string) *SpoolUpdate {
	if v != nil {
		_u.SetStorageLocation(*v)
	}
	return _u
}

// ClearStorageLocation clears the value of the "storage_location" field.
func (_u *SpoolUpdate) ClearStorageLocation() *SpoolUpdate {
	_u.mutation.ClearStorageLocation()
	return _u
}

// SetPhotoPath sets the "photo_path" field.
func (_u *SpoolUpdate) SetPhotoPath(v string) *SpoolUpdate {
	_u.mutation.SetPhotoPath(v)
	return _u
}

// SetNillablePhotoPath sets the "photo_path" field if the given value is not nil.
func (_u *SpoolUpdate) SetNillablePhotoPath(v *string) *SpoolUpdate {
	if v != nil {
		_u.SetPhotoPath(*v)
	}
	return _u
}

// ClearPhotoPath clears the value of the "photo_path" field.
func (_u *SpoolUpdate) ClearPhotoPath() *SpoolUpdate {
	_u.mutation.ClearPhotoPath()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpoolUpdate) SetStatus(v spool.Status) *SpoolUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpoolUpdate) SetNillableStatus(v *spool.Status) *SpoolUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpoolUpdate) SetUpdatedAt(v time.Time) *SpoolUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *SpoolUpdate) SetProduct(v *Product) *SpoolUpdate {
	return _u.SetProductID(v.ID)
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *SpoolUpdate) SetOrder(v *Order) *SpoolUpdate {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the SpoolMutation object of the builder.
func (_u *SpoolUpdate) Mutation() *SpoolMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *SpoolUpdate) ClearProduct() *SpoolUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *SpoolUpdate) ClearOrder() *SpoolUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpoolUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpoolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpoolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpoolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpoolUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := spool.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpoolUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := spool.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Spool.status": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Spool.product"`)
	}
	return nil
}

func (_u *SpoolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spool.Table, spool.Columns, sqlgraph.NewFieldSpec(spool.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PurchaseDate(); ok {
		_spec.SetField(spool.FieldPurchaseDate, field.TypeTime, value)
	}
	if _u.mutation.PurchaseDateCleared() {
		_spec.ClearField(spool.FieldPurchaseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(spool.FieldVendor, field.TypeString, value)
	}
	if _u.mutation.VendorCleared() {
		_spec.ClearField(spool.FieldVendor, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(spool.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(spool.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(spool.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StorageLocation(); ok {
		_spec.SetField(spool.FieldStorageLocation, field.TypeString, value)
	}
	if _u.mutation.StorageLocationCleared() {
		_spec.ClearField(spool.FieldStorageLocation, field.TypeString)
	}
	if value, ok := _u.mutation.PhotoPath(); ok {
		_spec.SetField(spool.FieldPhotoPath, field.TypeString, value)
	}
	if _u.mutation.PhotoPathCleared() {
		_spec.ClearField(spool.FieldPhotoPath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(spool.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(spool.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpoolUpdateOne is the builder for updating a single Spool entity.
type SpoolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpoolMutation
}

// SetProductID sets the "product_id" field.
func (_u *SpoolUpdateOne) SetProductID(v uuid.UUID) *SpoolUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *SpoolUpdateOne) SetNillableProductID(v *uuid.UUID) *SpoolUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *SpoolUpdateOne) SetOrderID(v uuid.UUID) *SpoolUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *SpoolUpdateOne) SetNillableOrderID(v *uuid.UUID) *SpoolUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *SpoolUpdateOne) ClearOrderID() *SpoolUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetPurchaseDate sets the "purchase_date" field.
func (_u *SpoolUpdateOne) SetPurchaseDate(v time.Time) *SpoolUpdateOne {
	_u.mutation.SetPurchaseDate(v)
	return _u
}

// SetNillablePurchaseDate sets the "purchase_date" field if the given value is not nil.
func (_u *SpoolUpdateOne) SetNillablePurchaseDate(v *time.Time) *SpoolUpdateOne {
	if v != nil {
		_u.SetPurchaseDate(*v)
	}
	return _u
}

// ClearPurchaseDate clears the value of the "purchase_date" field.
func (_u *SpoolUpdateOne) ClearPurchaseDate() *SpoolUpdateOne {
	_u.mutation.ClearPurchaseDate()
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *SpoolUpdateOne) SetVendor(v string) *SpoolUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *SpoolUpdateOne) SetNillableVendor(v *string) *SpoolUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// ClearVendor clears the value of the "vendor" field.
func (_u *SpoolUpdateOne) ClearVendor() *SpoolUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// SetPrice sets the "price" field.
func (_u *SpoolUpdateOne) SetPrice(v float64) *SpoolUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *SpoolUpdateOne) SetNillablePrice(v *float64) *SpoolUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *SpoolUpdateOne) AddPrice(v float64) *SpoolUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *SpoolUpdateOne) ClearPrice() *SpoolUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetStorageLocation sets the "storage_location" field.
func (_u *SpoolUpdateOne) SetStorageLocation(v string) *SpoolUpdateOne {
	_u.mutation.SetStorageLocation(v)
	return _u
}

// SetNillableStorageLocation sets the "storage_location" field if the given value is not nil.
func (_u *SpoolUpdateOne) SetNillableStorageLocation(v *string) *SpoolUpdateOne {
	if v != nil {
		_u.SetStorageLocation(*v)
	}
	return _u
}

// ClearStorageLocation clears the value of the "storage_location" field.
func (_u *SpoolUpdateOne) ClearStorageLocation() *SpoolUpdateOne {
	_u.mutation.ClearStorageLocation()
	return _u
}

// SetPhotoPath sets the "photo_path" field.
func (_u *SpoolUpdateOne) SetPhotoPath(v string) *SpoolUpdateOne {
	_u.mutation.SetPhotoPath(v)
	return _u
}

// SetNillablePhotoPath sets the "photo_path" field if the given value is not nil.
func (_u *SpoolUpdateOne) SetNillablePhotoPath(v *string) *SpoolUpdateOne {
	if v != nil {
		_u.SetPhotoPath(*v)
	}
	return _u
}

// ClearPhotoPath clears the value of the "photo_path" field.
func (_u *SpoolUpdateOne) ClearPhotoPath() *SpoolUpdateOne {
	_u.mutation.ClearPhotoPath()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpoolUpdateOne) SetStatus(v spool.Status) *SpoolUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpoolUpdateOne) SetNillableStatus(v *spool.Status) *SpoolUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpoolUpdateOne) SetUpdatedAt(v time.Time) *SpoolUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *SpoolUpdateOne) SetProduct(v *Product) *SpoolUpdateOne {
	return _u.SetProductID(v.ID)
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *SpoolUpdateOne) SetOrder(v *Order) *SpoolUpdateOne {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the SpoolMutation object of the builder.
func (_u *SpoolUpdateOne) Mutation() *SpoolMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *SpoolUpdateOne) ClearProduct() *SpoolUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *SpoolUpdateOne) ClearOrder() *SpoolUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// Where appends a list predicates to the SpoolUpdate builder.
func (_u *SpoolUpdateOne) Where(ps ...predicate.Spool) *SpoolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpoolUpdateOne) Select(field string, fields ...string) *SpoolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Spool entity.
func (_u *SpoolUpdateOne) Save(ctx context.Context) (*Spool, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpoolUpdateOne) SaveX(ctx context.Context) *Spool {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpoolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpoolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpoolUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := spool.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpoolUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := spool.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Spool.status": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Spool.product"`)
	}
	return nil
}

func (_u *SpoolUpdateOne) sqlSave(ctx context.Context) (_node *Spool, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spool.Table, spool.Columns, sqlgraph.NewFieldSpec(spool.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Spool.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, spool.FieldID)
		for _, f := range fields {
			if !spool.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != spool.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PurchaseDate(); ok {
		_spec.SetField(spool.FieldPurchaseDate, field.TypeTime, value)
	}
	if _u.mutation.PurchaseDateCleared() {
		_spec.ClearField(spool.FieldPurchaseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(spool.FieldVendor, field.TypeString, value)
	}
	if _u.mutation.VendorCleared() {
		_spec.ClearField(spool.FieldVendor, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(spool.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(spool.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(spool.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StorageLocation(); ok {
		_spec.SetField(spool.FieldStorageLocation, field.TypeString, value)
	}
	if _u.mutation.StorageLocationCleared() {
		_spec.ClearField(spool.FieldStorageLocation, field.TypeString)
	}
	if value, ok := _u.mutation.PhotoPath(); ok {
		_spec.SetField(spool.FieldPhotoPath, field.TypeString, value)
	}
	if _u.mutation.PhotoPathCleared() {
		_spec.ClearField(spool.FieldPhotoPath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(spool.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(spool.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Spool{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
