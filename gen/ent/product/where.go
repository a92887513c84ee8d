// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filatrack/filatrack/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldID, id))
}

// Brand applies equality check predicate on the "brand" field. It's identical to BrandEQ.
func Brand(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBrand, v))
}

// Line applies equality check predicate on the "line" field. It's identical to LineEQ.
func Line(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldLine, v))
}

// Material applies equality check predicate on the "material" field. It's identical to MaterialEQ.
func Material(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldMaterial, v))
}

// ColorName applies equality check predicate on the "color_name" field. It's identical to ColorNameEQ.
func ColorName(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldColorName, v))
}

// DiameterMm applies equality check predicate on the "diameter_mm" field. It's identical to DiameterMmEQ.
func DiameterMm(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldDiameterMm, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldNotes, v))
}

// Barcode applies equality check predicate on the "barcode" field. It's identical to BarcodeEQ.
func Barcode(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBarcode, v))
}

// Sku applies equality check predicate on the "sku" field. It's identical to SkuEQ.
func Sku(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSku, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// BrandEQ applies the EQ predicate on the "brand" field.
func BrandEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBrand, v))
}

// BrandNEQ applies the NEQ predicate on the "brand" field.
func BrandNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldBrand, v))
}

// BrandIn applies the In predicate on the "brand" field.
func BrandIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldBrand, vs...))
}

// BrandNotIn applies the NotIn predicate on the "brand" field.
func BrandNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldBrand, vs...))
}

// BrandGT applies the GT predicate on the "brand" field.
func BrandGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldBrand, v))
}

// BrandGTE applies the GTE predicate on the "brand" field.
func BrandGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldBrand, v))
}

// BrandLT applies the LT predicate on the "brand" field.
func BrandLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldBrand, v))
}

// BrandLTE applies the LTE predicate on the "brand" field.
func BrandLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldBrand, v))
}

// BrandContains applies the Contains predicate on the "brand" field.
func BrandContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldBrand, v))
}

// BrandHasPrefix applies the HasPrefix predicate on the "brand" field.
func BrandHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldBrand, v))
}

// BrandHasSuffix applies the HasSuffix predicate on the "brand" field.
func BrandHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldBrand, v))
}

// BrandEqualFold applies the EqualFold predicate on the "brand" field.
func BrandEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldBrand, v))
}

// BrandContainsFold applies the ContainsFold predicate on the "brand" field.
func BrandContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldBrand, v))
}

// LineEQ applies the EQ predicate on the "line" field.
func LineEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldLine, v))
}

// LineNEQ applies the NEQ predicate on the "line" field.
func LineNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldLine, v))
}

// LineIn applies the In predicate on the "line" field.
func LineIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldLine, vs...))
}

// LineNotIn applies the NotIn predicate on the "line" field.
func LineNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldLine, vs...))
}

// LineGT applies the GT predicate on the "line" field.
func LineGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldLine, v))
}

// LineGTE applies the GTE predicate on the "line" field.
func LineGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldLine, v))
}

// LineLT applies the LT predicate on the "line" field.
func LineLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldLine, v))
}

// LineLTE applies the LTE predicate on the "line" field.
func LineLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldLine, v))
}

// LineContains applies the Contains predicate on the "line" field.
func LineContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldLine, v))
}

// LineHasPrefix applies the HasPrefix predicate on the "line" field.
func LineHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldLine, v))
}

// LineHasSuffix applies the HasSuffix predicate on the "line" field.
func LineHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldLine, v))
}

// LineIsNil applies the IsNil predicate on the "line" field.
func LineIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldLine))
}

// LineNotNil applies the NotNil predicate on the "line" field.
func LineNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldLine))
}

// LineEqualFold applies the EqualFold predicate on the "line" field.
func LineEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldLine, v))
}

// LineContainsFold applies the ContainsFold predicate on the "line" field.
func LineContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldLine, v))
}

// MaterialEQ applies the EQ predicate on the "material" field.
func MaterialEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldMaterial, v))
}

// MaterialNEQ applies the NEQ predicate on the "material" field.
func MaterialNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldMaterial, v))
}

// MaterialIn applies the In predicate on the "material" field.
func MaterialIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldMaterial, vs...))
}

// MaterialNotIn applies the NotIn predicate on the "material" field.
func MaterialNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldMaterial, vs...))
}

// MaterialGT applies the GT predicate on the "material" field.
func MaterialGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldMaterial, v))
}

// MaterialGTE applies the GTE predicate on the "material" field.
func MaterialGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldMaterial, v))
}

// MaterialLT applies the LT predicate on the "material" field.
func MaterialLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldMaterial, v))
}

// MaterialLTE applies the LTE predicate on the "material" field.
func MaterialLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldMaterial, v))
}

// MaterialContains applies the Contains predicate on the "material" field.
func MaterialContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldMaterial, v))
}

// MaterialHasPrefix applies the HasPrefix predicate on the "material" field.
func MaterialHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldMaterial, v))
}

// MaterialHasSuffix applies the HasSuffix predicate on the "material" field.
func MaterialHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldMaterial, v))
}

// MaterialEqualFold applies the EqualFold predicate on the "material" field.
func MaterialEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldMaterial, v))
}

// MaterialContainsFold applies the ContainsFold predicate on the "material" field.
func MaterialContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldMaterial, v))
}

// ColorNameEQ applies the EQ predicate on the "color_name" field.
func ColorNameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldColorName, v))
}

// ColorNameNEQ applies the NEQ predicate on the "color_name" field.
func ColorNameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldColorName, v))
}

// ColorNameIn applies the In predicate on the "color_name" field.
func ColorNameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldColorName, vs...))
}

// ColorNameNotIn applies the NotIn predicate on the "color_name" field.
func ColorNameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldColorName, vs...))
}

// ColorNameGT applies the GT predicate on the "color_name" field.
func ColorNameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldColorName, v))
}

// ColorNameGTE applies the GTE predicate on the "color_name" field.
func ColorNameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldColorName, v))
}

// ColorNameLT applies the LT predicate on the "color_name" field.
func ColorNameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldColorName, v))
}

// ColorNameLTE applies the LTE predicate on the "color_name" field.
func ColorNameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldColorName, v))
}

// ColorNameContains applies the Contains predicate on the "color_name" field.
func ColorNameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldColorName, v))
}

// ColorNameHasPrefix applies the HasPrefix predicate on the "color_name" field.
func ColorNameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldColorName, v))
}

// ColorNameHasSuffix applies the HasSuffix predicate on the "color_name" field.
func ColorNameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldColorName, v))
}

// ColorNameEqualFold applies the EqualFold predicate on the "color_name" field.
func ColorNameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldColorName, v))
}

// ColorNameContainsFold applies the ContainsFold predicate on the "color_name" field.
func ColorNameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldColorName, v))
}

// DiameterMmEQ applies the EQ predicate on the "diameter_mm" field.
func DiameterMmEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldDiameterMm, v))
}

// DiameterMmNEQ applies the NEQ predicate on the "diameter_mm" field.
func DiameterMmNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldDiameterMm, v))
}

// DiameterMmIn applies the In predicate on the "diameter_mm" field.
func DiameterMmIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldDiameterMm, vs...))
}

// DiameterMmNotIn applies the NotIn predicate on the "diameter_mm" field.
func DiameterMmNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldDiameterMm, vs...))
}

// DiameterMmGT applies the GT predicate on the "diameter_mm" field.
func DiameterMmGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldDiameterMm, v))
}

// DiameterMmGTE applies the GTE predicate on the "diameter_mm" field.
func DiameterMmGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldDiameterMm, v))
}

// DiameterMmLT applies the LT predicate on the "diameter_mm" field.
func DiameterMmLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldDiameterMm, v))
}

// DiameterMmLTE applies the LTE predicate on the "diameter_mm" field.
func DiameterMmLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldDiameterMm, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldNotes, v))
}

// BarcodeEQ applies the EQ predicate on the "barcode" field.
func BarcodeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBarcode, v))
}

// BarcodeNEQ applies the NEQ predicate on the "barcode" field.
func BarcodeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldBarcode, v))
}

// BarcodeIn applies the In predicate on the "barcode" field.
func BarcodeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldBarcode, vs...))
}

// BarcodeNotIn applies the NotIn predicate on the "barcode" field.
func BarcodeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldBarcode, vs...))
}

// BarcodeGT applies the GT predicate on the "barcode" field.
func BarcodeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldBarcode, v))
}

// BarcodeGTE applies the GTE predicate on the "barcode" field.
func BarcodeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldBarcode, v))
}

// BarcodeLT applies the LT predicate on the "barcode" field.
func BarcodeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldBarcode, v))
}

// BarcodeLTE applies the LTE predicate on the "barcode" field.
func BarcodeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldBarcode, v))
}

// BarcodeContains applies the Contains predicate on the "barcode" field.
func BarcodeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldBarcode, v))
}

// BarcodeHasPrefix applies the HasPrefix predicate on the "barcode" field.
func BarcodeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldBarcode, v))
}

// BarcodeHasSuffix applies the HasSuffix predicate on the "barcode" field.
func BarcodeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldBarcode, v))
}

// BarcodeIsNil applies the IsNil predicate on the "barcode" field.
func BarcodeIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldBarcode))
}

// BarcodeNotNil applies the NotNil predicate on the "barcode" field.
func BarcodeNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldBarcode))
}

// BarcodeEqualFold applies the EqualFold predicate on the "barcode" field.
func BarcodeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldBarcode, v))
}

// BarcodeContainsFold applies the ContainsFold predicate on the "barcode" field.
func BarcodeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldBarcode, v))
}

// SkuEQ applies the EQ predicate on the "sku" field.
func SkuEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSku, v))
}

// SkuNEQ applies the NEQ predicate on the "sku" field.
func SkuNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSku, v))
}

// SkuIn applies the In predicate on the "sku" field.
func SkuIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSku, vs...))
}

// SkuNotIn applies the NotIn predicate on the "sku" field.
func SkuNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSku, vs...))
}

// SkuGT applies the GT predicate on the "sku" field.
func SkuGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSku, v))
}

// SkuGTE applies the GTE predicate on the "sku" field.
func SkuGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSku, v))
}

// SkuLT applies the LT predicate on the "sku" field.
func SkuLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSku, v))
}

// SkuLTE applies the LTE predicate on the "sku" field.
func SkuLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSku, v))
}

// SkuContains applies the Contains predicate on the "sku" field.
func SkuContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSku, v))
}

// SkuHasPrefix applies the HasPrefix predicate on the "sku" field.
func SkuHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSku, v))
}

// SkuHasSuffix applies the HasSuffix predicate on the "sku" field.
func SkuHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSku, v))
}

// SkuIsNil applies the IsNil predicate on the "sku" field.
func SkuIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSku))
}

// SkuNotNil applies the NotNil predicate on the "sku" field.
func SkuNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSku))
}

// SkuEqualFold applies the EqualFold predicate on the "sku" field.
func SkuEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSku, v))
}

// SkuContainsFold applies the ContainsFold predicate on the "sku" field.
func SkuContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSku, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSpools applies the HasEdge predicate on the "spools" edge.
func HasSpools() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SpoolsTable, SpoolsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpoolsWith applies the HasEdge predicate on the "spools" edge with a given conditions (other predicates).
func HasSpoolsWith(preds ...predicate.Spool) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newSpoolsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrderItems applies the HasEdge predicate on the "order_items" edge.
func HasOrderItems() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrderItemsTable, OrderItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderItemsWith applies the HasEdge predicate on the "order_items" edge with a given conditions (other predicates).
func HasOrderItemsWith(preds ...predicate.OrderItem) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newOrderItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Product) predicate.Product {
	return predicate.Product(sql.NotPredicates(p))
}
