// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/filatrack/filatrack/db/ent/schema"
	"github.com/filatrack/filatrack/gen/ent/order"
	"github.com/filatrack/filatrack/gen/ent/orderitem"
	"github.com/filatrack/filatrack/gen/ent/product"
	"github.com/filatrack/filatrack/gen/ent/spool"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescVendor is the schema descriptor for vendor field.
	orderDescVendor := orderFields[1].Descriptor()
	// order.VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	order.VendorValidator = orderDescVendor.Validators[0].(func(string) error)
	// orderDescOrderNumber is the schema descriptor for order_number field.
	orderDescOrderNumber := orderFields[2].Descriptor()
	// order.OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	order.OrderNumberValidator = orderDescOrderNumber.Validators[0].(func(string) error)
	// orderDescCurrency is the schema descriptor for currency field.
	orderDescCurrency := orderFields[6].Descriptor()
	// order.DefaultCurrency holds the default value on creation for the currency field.
	order.DefaultCurrency = orderDescCurrency.Default.(string)
	// order.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	order.CurrencyValidator = func() func(string) error {
		validators := orderDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[7].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[8].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescTitleRaw is the schema descriptor for title_raw field.
	orderitemDescTitleRaw := orderitemFields[3].Descriptor()
	// orderitem.TitleRawValidator is a validator for the "title_raw" field. It is called by the builders before save.
	orderitem.TitleRawValidator = orderitemDescTitleRaw.Validators[0].(func(string) error)
	// orderitemDescQuantity is the schema descriptor for quantity field.
	orderitemDescQuantity := orderitemFields[4].Descriptor()
	// orderitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderitem.QuantityValidator = orderitemDescQuantity.Validators[0].(func(int) error)
	// orderitemDescCurrency is the schema descriptor for currency field.
	orderitemDescCurrency := orderitemFields[6].Descriptor()
	// orderitem.DefaultCurrency holds the default value on creation for the currency field.
	orderitem.DefaultCurrency = orderitemDescCurrency.Default.(string)
	// orderitem.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	orderitem.CurrencyValidator = func() func(string) error {
		validators := orderitemDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// orderitemDescCreatedAt is the schema descriptor for created_at field.
	orderitemDescCreatedAt := orderitemFields[8].Descriptor()
	// orderitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	orderitem.DefaultCreatedAt = orderitemDescCreatedAt.Default.(func() time.Time)
	// orderitemDescUpdatedAt is the schema descriptor for updated_at field.
	orderitemDescUpdatedAt := orderitemFields[9].Descriptor()
	// orderitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	orderitem.DefaultUpdatedAt = orderitemDescUpdatedAt.Default.(func() time.Time)
	// orderitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	orderitem.UpdateDefaultUpdatedAt = orderitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderitemDescID is the schema descriptor for id field.
	orderitemDescID := orderitemFields[0].Descriptor()
	// orderitem.DefaultID holds the default value on creation for the id field.
	orderitem.DefaultID = orderitemDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescBrand is the schema descriptor for brand field.
	productDescBrand := productFields[1].Descriptor()
	// product.BrandValidator is a validator for the "brand" field. It is called by the builders before save.
	product.BrandValidator = productDescBrand.Validators[0].(func(string) error)
	// productDescMaterial is the schema descriptor for material field.
	productDescMaterial := productFields[3].Descriptor()
	// product.MaterialValidator is a validator for the "material" field. It is called by the builders before save.
	product.MaterialValidator = productDescMaterial.Validators[0].(func(string) error)
	// productDescColorName is the schema descriptor for color_name field.
	productDescColorName := productFields[4].Descriptor()
	// product.ColorNameValidator is a validator for the "color_name" field. It is called by the builders before save.
	product.ColorNameValidator = productDescColorName.Validators[0].(func(string) error)
	// productDescDiameterMm is the schema descriptor for diameter_mm field.
	productDescDiameterMm := productFields[5].Descriptor()
	// product.DiameterMmValidator is a validator for the "diameter_mm" field. It is called by the builders before save.
	product.DiameterMmValidator = productDescDiameterMm.Validators[0].(func(float64) error)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[9].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[10].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	spoolFields := schema.Spool{}.Fields()
	_ = spoolFields
	// spoolDescCreatedAt is the schema descriptor for created_at field.
	spoolDescCreatedAt := spoolFields[9].Descriptor()
	// spool.DefaultCreatedAt holds the default value on creation for the created_at field.
	spool.DefaultCreatedAt = spoolDescCreatedAt.Default.(func() time.Time)
	// spoolDescUpdatedAt is the schema descriptor for updated_at field.
	spoolDescUpdatedAt := spoolFields[10].Descriptor()
	// spool.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	spool.DefaultUpdatedAt = spoolDescUpdatedAt.Default.(func() time.Time)
	// spool.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	spool.UpdateDefaultUpdatedAt = spoolDescUpdatedAt.UpdateDefault.(func() time.Time)
	// spoolDescID is the schema descriptor for id field.
	spoolDescID := spoolFields[0].Descriptor()
	// spool.DefaultID holds the default value on creation for the id field.
	spool.DefaultID = spoolDescID.Default.(func() uuid.UUID)
}
