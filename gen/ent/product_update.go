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
	"github.com/filatrack/filatrack/gen/ent/orderitem"
	"github.com/filatrack/filatrack/gen/ent/predicate"
	"github.com/filatrack/filatrack/gen/ent/product"
	"github.com/filatrack/filatrack/gen/ent/spool"
	"github.com/google/uuid"
)

// ProductUpdate is the builder for updating Product entities.
type ProductUpdate struct {
	config
	hooks    []Hook
	mutation *ProductMutation
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdate) Where(ps ...predicate.Product) *ProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBrand sets the "brand" field.
func (_u *ProductUpdate) SetBrand(v string) *ProductUpdate {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableBrand(v *string) *ProductUpdate {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// SetLine sets the "line" field.
func (_u *ProductUpdate) SetLine(v string) *ProductUpdate {
	_u.mutation.SetLine(v)
	return _u
}

// SetNillableLine sets the "line" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableLine(v *string) *ProductUpdate {
	if v != nil {
		_u.SetLine(*v)
	}
	return _u
}

// ClearLine clears the value of the "line" field.
func (_u *ProductUpdate) ClearLine() *ProductUpdate {
	_u.mutation.ClearLine()
	return _u
}

// SetMaterial sets the "material" field.
func (_u *ProductUpdate) SetMaterial(v string) *ProductUpdate {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableMaterial(v *string) *ProductUpdate {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// SetColorName sets the "color_name" field.
func (_u *ProductUpdate) SetColorName(v string) *ProductUpdate {
	_u.mutation.SetColorName(v)
	return _u
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableColorName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetColorName(*v)
	}
	return _u
}

// SetDiameterMm sets the "diameter_mm" field.
func (_u *ProductUpdate) SetDiameterMm(v float64) *ProductUpdate {
	_u.mutation.ResetDiameterMm()
	_u.mutation.SetDiameterMm(v)
	return _u
}

// SetNillableDiameterMm sets the "diameter_mm" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableDiameterMm(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetDiameterMm(*v)
	}
	return _u
}

// AddDiameterMm adds value to the "diameter_mm" field.
func (_u *ProductUpdate) AddDiameterMm(v float64) *ProductUpdate {
	_u.mutation.AddDiameterMm(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ProductUpdate) SetNotes(v string) *ProductUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableNotes(v *string) *ProductUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ProductUpdate) ClearNotes() *ProductUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *ProductUpdate) SetBarcode(v string) *ProductUpdate {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableBarcode(v *string) *ProductUpdate {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *ProductUpdate) ClearBarcode() *ProductUpdate {
	_u.mutation.ClearBarcode()
	return _u
}

// SetSku sets the "sku" field.
func (_u *ProductUpdate) SetSku(v string) *ProductUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSku(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *ProductUpdate) ClearSku() *ProductUpdate {
	_u.mutation.ClearSku()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdate) SetUpdatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSpoolIDs adds the "spools" edge to the Spool entity by IDs.
func (_u *ProductUpdate) AddSpoolIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.AddSpoolIDs(ids...)
	return _u
}

// AddSpools adds the "spools" edges to the Spool entity.
func (_u *ProductUpdate) AddSpools(v ...*Spool) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpoolIDs(ids...)
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_u *ProductUpdate) AddOrderItemIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.AddOrderItemIDs(ids...)
	return _u
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_u *ProductUpdate) AddOrderItems(v ...*OrderItem) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderItemIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdate) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearSpools clears all "spools" edges to the Spool entity.
func (_u *ProductUpdate) ClearSpools() *ProductUpdate {
	_u.mutation.ClearSpools()
	return _u
}

// RemoveSpoolIDs removes the "spools" edge to Spool entities by IDs.
func (_u *ProductUpdate) RemoveSpoolIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.RemoveSpoolIDs(ids...)
	return _u
}

// RemoveSpools removes "spools" edges to Spool entities.
func (_u *ProductUpdate) RemoveSpools(v ...*Spool) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpoolIDs(ids...)
}

// ClearOrderItems clears all "order_items" edges to the OrderItem entity.
func (_u *ProductUpdate) ClearOrderItems() *ProductUpdate {
	_u.mutation.ClearOrderItems()
	return _u
}

// RemoveOrderItemIDs removes the "order_items" edge to OrderItem entities by IDs.
func (_u *ProductUpdate) RemoveOrderItemIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.RemoveOrderItemIDs(ids...)
	return _u
}

// RemoveOrderItems removes "order_items" edges to OrderItem entities.
func (_u *ProductUpdate) RemoveOrderItems(v ...*OrderItem) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdate) check() error {
	if v, ok := _u.mutation.Brand(); ok {
		if err := product.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Product.brand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Material(); ok {
		if err := product.MaterialValidator(v); err != nil {
			return &ValidationError{Name: "material", err: fmt.Errorf(`ent: validator failed for field "Product.material": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColorName(); ok {
		if err := product.ColorNameValidator(v); err != nil {
			return &ValidationError{Name: "color_name", err: fmt.Errorf(`ent: validator failed for field "Product.color_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiameterMm(); ok {
		if err := product.DiameterMmValidator(v); err != nil {
			return &ValidationError{Name: "diameter_mm", err: fmt.Errorf(`ent: validator failed for field "Product.diameter_mm": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(product.FieldBrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Line(); ok {
		_spec.SetField(product.FieldLine, field.TypeString, value)
	}
	if _u.mutation.LineCleared() {
		_spec.ClearField(product.FieldLine, field.TypeString)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(product.FieldMaterial, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorName(); ok {
		_spec.SetField(product.FieldColorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiameterMm(); ok {
		_spec.SetField(product.FieldDiameterMm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiameterMm(); ok {
		_spec.AddField(product.FieldDiameterMm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(product.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(product.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(product.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(product.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(product.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(product.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SpoolsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpoolsIDs(); len(nodes) > 0 && !_u.mutation.SpoolsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpoolsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrderItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrderItemsIDs(); len(nodes) > 0 && !_u.mutation.OrderItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductUpdateOne is the builder for updating a single Product entity.
type ProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductMutation
}

// SetBrand sets the "brand" field.
func (_u *ProductUpdateOne) SetBrand(v string) *ProductUpdateOne {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableBrand(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// SetLine sets the "line" field.
func (_u *ProductUpdateOne) SetLine(v string) *ProductUpdateOne {
	_u.mutation.SetLine(v)
	return _u
}

// SetNillableLine sets the "line" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableLine(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetLine(*v)
	}
	return _u
}

// ClearLine clears the value of the "line" field.
func (_u *ProductUpdateOne) ClearLine() *ProductUpdateOne {
	_u.mutation.ClearLine()
	return _u
}

// SetMaterial sets the "material" field.
func (_u *ProductUpdateOne) SetMaterial(v string) *ProductUpdateOne {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableMaterial(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// SetColorName sets the "color_name" field.
func (_u *ProductUpdateOne) SetColorName(v string) *ProductUpdateOne {
	_u.mutation.SetColorName(v)
	return _u
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableColorName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetColorName(*v)
	}
	return _u
}

// SetDiameterMm sets the "diameter_mm" field.
func (_u *ProductUpdateOne) SetDiameterMm(v float64) *ProductUpdateOne {
	_u.mutation.ResetDiameterMm()
	_u.mutation.SetDiameterMm(v)
	return _u
}

// SetNillableDiameterMm sets the "diameter_mm" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableDiameterMm(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetDiameterMm(*v)
	}
	return _u
}

// AddDiameterMm adds value to the "diameter_mm" field.
func (_u *ProductUpdateOne) AddDiameterMm(v float64) *ProductUpdateOne {
	_u.mutation.AddDiameterMm(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ProductUpdateOne) SetNotes(v string) *ProductUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableNotes(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ProductUpdateOne) ClearNotes() *ProductUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *ProductUpdateOne) SetBarcode(v string) *ProductUpdateOne {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableBarcode(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *ProductUpdateOne) ClearBarcode() *ProductUpdateOne {
	_u.mutation.ClearBarcode()
	return _u
}

// SetSku sets the "sku" field.
func (_u *ProductUpdateOne) SetSku(v string) *ProductUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSku(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *ProductUpdateOne) ClearSku() *ProductUpdateOne {
	_u.mutation.ClearSku()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdateOne) SetUpdatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSpoolIDs adds the "spools" edge to the Spool entity by IDs.
func (_u *ProductUpdateOne) AddSpoolIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.AddSpoolIDs(ids...)
	return _u
}

// AddSpools adds the "spools" edges to the Spool entity.
func (_u *ProductUpdateOne) AddSpools(v ...*Spool) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpoolIDs(ids...)
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by IDs.
func (_u *ProductUpdateOne) AddOrderItemIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.AddOrderItemIDs(ids...)
	return _u
}

// AddOrderItems adds the "order_items" edges to the OrderItem entity.
func (_u *ProductUpdateOne) AddOrderItems(v ...*OrderItem) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderItemIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdateOne) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearSpools clears all "spools" edges to the Spool entity.
func (_u *ProductUpdateOne) ClearSpools() *ProductUpdateOne {
	_u.mutation.ClearSpools()
	return _u
}

// RemoveSpoolIDs removes the "spools" edge to Spool entities by IDs.
func (_u *ProductUpdateOne) RemoveSpoolIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.RemoveSpoolIDs(ids...)
	return _u
}

// RemoveSpools removes "spools" edges to Spool entities.
func (_u *ProductUpdateOne) RemoveSpools(v ...*Spool) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpoolIDs(ids...)
}

// ClearOrderItems clears all "order_items" edges to the OrderItem entity.
func (_u *ProductUpdateOne) ClearOrderItems() *ProductUpdateOne {
	_u.mutation.ClearOrderItems()
	return _u
}

// RemoveOrderItemIDs removes the "order_items" edge to OrderItem entities by IDs.
func (_u *ProductUpdateOne) RemoveOrderItemIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.RemoveOrderItemIDs(ids...)
	return _u
}

// RemoveOrderItems removes "order_items" edges to OrderItem entities.
func (_u *ProductUpdateOne) RemoveOrderItems(v ...*OrderItem) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderItemIDs(ids...)
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdateOne) Where(ps ...predicate.Product) *ProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductUpdateOne) Select(field string, fields ...string) *ProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Product entity.
func (_u *ProductUpdateOne) Save(ctx context.Context) (*Product, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdateOne) SaveX(ctx context.Context) *Product {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdateOne) check() error {
	if v, ok := _u.mutation.Brand(); ok {
		if err := product.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Product.brand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Material(); ok {
		if err := product.MaterialValidator(v); err != nil {
			return &ValidationError{Name: "material", err: fmt.Errorf(`ent: validator failed for field "Product.material": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColorName(); ok {
		if err := product.ColorNameValidator(v); err != nil {
			return &ValidationError{Name: "color_name", err: fmt.Errorf(`ent: validator failed for field "Product.color_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiameterMm(); ok {
		if err := product.DiameterMmValidator(v); err != nil {
			return &ValidationError{Name: "diameter_mm", err: fmt.Errorf(`ent: validator failed for field "Product.diameter_mm": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdateOne) sqlSave(ctx context.Context) (_node *Product, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Product.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, product.FieldID)
		for _, f := range fields {
			if !product.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != product.FieldID {
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
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(product.FieldBrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Line(); ok {
		_spec.SetField(product.FieldLine, field.TypeString, value)
	}
	if _u.mutation.LineCleared() {
		_spec.ClearField(product.FieldLine, field.TypeString)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(product.FieldMaterial, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorName(); ok {
		_spec.SetField(product.FieldColorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiameterMm(); ok {
		_spec.SetField(product.FieldDiameterMm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiameterMm(); ok {
		_spec.AddField(product.FieldDiameterMm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(product.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(product.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(product.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(product.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(product.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(product.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SpoolsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpoolsIDs(); len(nodes) > 0 && !_u.mutation.SpoolsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpoolsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrderItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrderItemsIDs(); len(nodes) > 0 && !_u.mutation.OrderItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Product{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
