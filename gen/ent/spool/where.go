// Code generated by ent, DO NOT EDIT.

package spool

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filatrack/filatrack/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldLTE(FieldID, id))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldProductID, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldOrderID, v))
}

// PurchaseDate applies equality check predicate on the "purchase_date" field. It's identical to PurchaseDateEQ.
func PurchaseDate(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldPurchaseDate, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldVendor, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldPrice, v))
}

// StorageLocation applies equality check predicate on the "storage_location" field. It's identical to StorageLocationEQ.
func StorageLocation(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldStorageLocation, v))
}

// PhotoPath applies equality check predicate on the "photo_path" field. It's identical to PhotoPathEQ.
func PhotoPath(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldPhotoPath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldProductID, vs...))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.Spool {
	return predicate.Spool(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.Spool {
	return predicate.Spool(sql.FieldNotNull(FieldOrderID))
}

// PurchaseDateEQ applies the EQ predicate on the "purchase_date" field.
func PurchaseDateEQ(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldPurchaseDate, v))
}

// PurchaseDateNEQ applies the NEQ predicate on the "purchase_date" field.
func PurchaseDateNEQ(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldPurchaseDate, v))
}

// PurchaseDateIn applies the In predicate on the "purchase_date" field.
func PurchaseDateIn(vs ...time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldPurchaseDate, vs...))
}

// PurchaseDateNotIn applies the NotIn predicate on the "purchase_date" field.
func PurchaseDateNotIn(vs ...time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldPurchaseDate, vs...))
}

// PurchaseDateGT applies the GT predicate on the "purchase_date" field.
func PurchaseDateGT(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldGT(FieldPurchaseDate, v))
}

// PurchaseDateGTE applies the GTE predicate on the "purchase_date" field.
func PurchaseDateGTE(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldGTE(FieldPurchaseDate, v))
}

// PurchaseDateLT applies the LT predicate on the "purchase_date" field.
func PurchaseDateLT(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldLT(FieldPurchaseDate, v))
}

// PurchaseDateLTE applies the LTE predicate on the "purchase_date" field.
func PurchaseDateLTE(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldLTE(FieldPurchaseDate, v))
}

// PurchaseDateIsNil applies the IsNil predicate on the "purchase_date" field.
func PurchaseDateIsNil() predicate.Spool {
	return predicate.Spool(sql.FieldIsNull(FieldPurchaseDate))
}

// PurchaseDateNotNil applies the NotNil predicate on the "purchase_date" field.
func PurchaseDateNotNil() predicate.Spool {
	return predicate.Spool(sql.FieldNotNull(FieldPurchaseDate))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.Spool {
	return predicate.Spool(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.Spool {
	return predicate.Spool(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.Spool {
	return predicate.Spool(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.Spool {
	return predicate.Spool(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.Spool {
	return predicate.Spool(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.Spool {
	return predicate.Spool(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.Spool {
	return predicate.Spool(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorIsNil applies the IsNil predicate on the "vendor" field.
func VendorIsNil() predicate.Spool {
	return predicate.Spool(sql.FieldIsNull(FieldVendor))
}

// VendorNotNil applies the NotNil predicate on the "vendor" field.
func VendorNotNil() predicate.Spool {
	return predicate.Spool(sql.FieldNotNull(FieldVendor))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.Spool {
	return predicate.Spool(sql.FieldContainsFold(FieldVendor, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Spool {
	return predicate.Spool(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Spool {
	return predicate.Spool(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Spool {
	return predicate.Spool(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Spool {
	return predicate.Spool(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.Spool {
	return predicate.Spool(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.Spool {
	return predicate.Spool(sql.FieldNotNull(FieldPrice))
}

// StorageLocationEQ applies the EQ predicate on the "storage_location" field.
func StorageLocationEQ(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldStorageLocation, v))
}

// StorageLocationNEQ applies the NEQ predicate on the "storage_location" field.
func StorageLocationNEQ(v string) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldStorageLocation, v))
}

// StorageLocationIn applies the In predicate on the "storage_location" field.
func StorageLocationIn(vs ...string) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldStorageLocation, vs...))
}

// StorageLocationNotIn applies the NotIn predicate on the "storage_location" field.
func StorageLocationNotIn(vs ...string) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldStorageLocation, vs...))
}

// StorageLocationGT applies the GT predicate on the "storage_location" field.
func StorageLocationGT(v string) predicate.Spool {
	return predicate.Spool(sql.FieldGT(FieldStorageLocation, v))
}

// StorageLocationGTE applies the GTE predicate on the "storage_location" field.
func StorageLocationGTE(v string) predicate.Spool {
	return predicate.Spool(sql.FieldGTE(FieldStorageLocation, v))
}

// StorageLocationLT applies the LT predicate on the "storage_location" field.
func StorageLocationLT(v string) predicate.Spool {
	return predicate.Spool(sql.FieldLT(FieldStorageLocation, v))
}

// StorageLocationLTE applies the LTE predicate on the "storage_location" field.
func StorageLocationLTE(v string) predicate.Spool {
	return predicate.Spool(sql.FieldLTE(FieldStorageLocation, v))
}

// StorageLocationContains applies the Contains predicate on the "storage_location" field.
func StorageLocationContains(v string) predicate.Spool {
	return predicate.Spool(sql.FieldContains(FieldStorageLocation, v))
}

// StorageLocationHasPrefix applies the HasPrefix predicate on the "storage_location" field.
func StorageLocationHasPrefix(v string) predicate.Spool {
	return predicate.Spool(sql.FieldHasPrefix(FieldStorageLocation, v))
}

// StorageLocationHasSuffix applies the HasSuffix predicate on the "storage_location" field.
func StorageLocationHasSuffix(v string) predicate.Spool {
	return predicate.Spool(sql.FieldHasSuffix(FieldStorageLocation, v))
}

// StorageLocationIsNil applies the IsNil predicate on the "storage_location" field.
func StorageLocationIsNil() predicate.Spool {
	return predicate.Spool(sql.FieldIsNull(FieldStorageLocation))
}

// StorageLocationNotNil applies the NotNil predicate on the "storage_location" field.
func StorageLocationNotNil() predicate.Spool {
	return predicate.Spool(sql.FieldNotNull(FieldStorageLocation))
}

// StorageLocationEqualFold applies the EqualFold predicate on the "storage_location" field.
func StorageLocationEqualFold(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEqualFold(FieldStorageLocation, v))
}

// StorageLocationContainsFold applies the ContainsFold predicate on the "storage_location" field.
func StorageLocationContainsFold(v string) predicate.Spool {
	return predicate.Spool(sql.FieldContainsFold(FieldStorageLocation, v))
}

// PhotoPathEQ applies the EQ predicate on the "photo_path" field.
func PhotoPathEQ(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldPhotoPath, v))
}

// PhotoPathNEQ applies the NEQ predicate on the "photo_path" field.
func PhotoPathNEQ(v string) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldPhotoPath, v))
}

// PhotoPathIn applies the In predicate on the "photo_path" field.
func PhotoPathIn(vs ...string) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldPhotoPath, vs...))
}

// PhotoPathNotIn applies the NotIn predicate on the "photo_path" field.
func PhotoPathNotIn(vs ...string) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldPhotoPath, vs...))
}

// PhotoPathGT applies the GT predicate on the "photo_path" field.
func PhotoPathGT(v string) predicate.Spool {
	return predicate.Spool(sql.FieldGT(FieldPhotoPath, v))
}

// PhotoPathGTE applies the GTE predicate on the "photo_path" field.
func PhotoPathGTE(v string) predicate.Spool {
	return predicate.Spool(sql.FieldGTE(FieldPhotoPath, v))
}

// PhotoPathLT applies the LT predicate on the "photo_path" field.
func PhotoPathLT(v string) predicate.Spool {
	return predicate.Spool(sql.FieldLT(FieldPhotoPath, v))
}

// PhotoPathLTE applies the LTE predicate on the "photo_path" field.
func PhotoPathLTE(v string) predicate.Spool {
	return predicate.Spool(sql.FieldLTE(FieldPhotoPath, v))
}

// PhotoPathContains applies the Contains predicate on the "photo_path" field.
func PhotoPathContains(v string) predicate.Spool {
	return predicate.Spool(sql.FieldContains(FieldPhotoPath, v))
}

// PhotoPathHasPrefix applies the HasPrefix predicate on the "photo_path" field.
func PhotoPathHasPrefix(v string) predicate.Spool {
	return predicate.Spool(sql.FieldHasPrefix(FieldPhotoPath, v))
}

// PhotoPathHasSuffix applies the HasSuffix predicate on the "photo_path" field.
func PhotoPathHasSuffix(v string) predicate.Spool {
	return predicate.Spool(sql.FieldHasSuffix(FieldPhotoPath, v))
}

// PhotoPathIsNil applies the IsNil predicate on the "photo_path" field.
func PhotoPathIsNil() predicate.Spool {
	return predicate.Spool(sql.FieldIsNull(FieldPhotoPath))
}

// PhotoPathNotNil applies the NotNil predicate on the "photo_path" field.
func PhotoPathNotNil() predicate.Spool {
	return predicate.Spool(sql.FieldNotNull(FieldPhotoPath))
}

// PhotoPathEqualFold applies the EqualFold predicate on the "photo_path" field.
func PhotoPathEqualFold(v string) predicate.Spool {
	return predicate.Spool(sql.FieldEqualFold(FieldPhotoPath, v))
}

// PhotoPathContainsFold applies the ContainsFold predicate on the "photo_path" field.
func PhotoPathContainsFold(v string) predicate.Spool {
	return predicate.Spool(sql.FieldContainsFold(FieldPhotoPath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Spool {
	return predicate.Spool(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.Spool {
	return predicate.Spool(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.Spool {
	return predicate.Spool(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrder applies the HasEdge predicate on the "order" edge.
func HasOrder() predicate.Spool {
	return predicate.Spool(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderWith applies the HasEdge predicate on the "order" edge with a given conditions (other predicates).
func HasOrderWith(preds ...predicate.Order) predicate.Spool {
	return predicate.Spool(func(s *sql.Selector) {
		step := newOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Spool) predicate.Spool {
	return predicate.Spool(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Spool) predicate.Spool {
	return predicate.Spool(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Spool) predicate.Spool {
	return predicate.Spool(sql.NotPredicates(p))
}
