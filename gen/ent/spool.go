// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/filatrack/filatrack/gen/ent/order"
	"github.com/filatrack/filatrack/gen/ent/product"
	"github.com/filatrack/filatrack/gen/ent/spool"
	"github.com/google/uuid"
)

// Spool is the model entity for the Spool schema.
type Spool struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID uuid.UUID `json:"product_id,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID *uuid.UUID `json:"order_id,omitempty"`
	// PurchaseDate holds the value of the "purchase_date" field.
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	// Vendor holds the value of the "vendor" field.
	Vendor *string `json:"vendor,omitempty"`
	// Price holds the value of the "price" field.
	Price *float64 `json:"price,omitempty"`
	// StorageLocation holds the value of the "storage_location" field.
	StorageLocation *string `json:"storage_location,omitempty"`
	// PhotoPath holds the value of the "photo_path" field.
	PhotoPath *string `json:"photo_path,omitempty"`
	// Status holds the value of the "status" field.
	Status spool.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpoolQuery when eager-loading is set.
	Edges        SpoolEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpoolEdges holds the relations/edges for other nodes in the graph.
type SpoolEdges struct {
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// Order holds the value of the order edge.
	Order *Order `json:"order,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpoolEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// OrderOrErr returns the Order value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpoolEdges) OrderOrErr() (*Order, error) {
	if e.Order != nil {
		return e.Order, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: order.Label}
	}
	return nil, &NotLoadedError{edge: "order"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Spool) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case spool.FieldOrderID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case spool.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case spool.FieldVendor, spool.FieldStorageLocation, spool.FieldPhotoPath, spool.FieldStatus:
			values[i] = new(sql.NullString)
		case spool.FieldPurchaseDate, spool.FieldCreatedAt, spool.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case spool.FieldID, spool.FieldProductID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Spool fields.
func (_m *Spool) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case spool.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case spool.FieldProductID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value != nil {
				_m.ProductID = *value
			}
		case spool.FieldOrderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = new(uuid.UUID)
				*_m.OrderID = *value.S.(*uuid.UUID)
			}
		case spool.FieldPurchaseDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_date", values[i])
			} else if value.Valid {
				_m.PurchaseDate = new(time.Time)
				*_m.PurchaseDate = value.Time
			}
		case spool.FieldVendor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor", values[i])
			} else if value.Valid {
				_m.Vendor = new(string)
				*_m.Vendor = value.String
			}
		case spool.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = new(float64)
				*_m.Price = value.Float64
			}
		case spool.FieldStorageLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_location", values[i])
			} else if value.Valid {
				_m.StorageLocation = new(string)
				*_m.StorageLocation = value.String
			}
		case spool.FieldPhotoPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field photo_path", values[i])
			} else if value.Valid {
				_m.PhotoPath = new(string)
				*_m.PhotoPath = value.String
			}
		case spool.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = spool.Status(value.String)
			}
		case spool.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case spool.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Spool.
// This includes values selected through modifiers, order, etc.
func (_m *Spool) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProduct queries the "product" edge of the Spool entity.
func (_m *Spool) QueryProduct() *ProductQuery {
	return NewSpoolClient(_m.config).QueryProduct(_m)
}

// QueryOrder queries the "order" edge of the Spool entity.
func (_m *Spool) QueryOrder() *OrderQuery {
	return NewSpoolClient(_m.config).QueryOrder(_m)
}

// Update returns a builder for updating this Spool.
// Note that you need to call Spool.Unwrap() before calling this method if this Spool
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Spool) Update() *SpoolUpdateOne {
	return NewSpoolClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Spool entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Spool) Unwrap() *Spool {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Spool is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Spool) String() string {
	var builder strings.Builder
	builder.WriteString("Spool(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("product_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductID))
	builder.WriteString(", ")
	if v := _m.OrderID; v != nil {
		builder.WriteString("order_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PurchaseDate; v != nil {
		builder.WriteString("purchase_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Vendor; v != nil {
		builder.WriteString("vendor=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Price; v != nil {
		builder.WriteString("price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StorageLocation; v != nil {
		builder.WriteString("storage_location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhotoPath; v != nil {
		builder.WriteString("photo_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Spools is a parsable slice of Spool.
type Spools []*Spool
