package schema

import (
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

var errDiameter = errors.New("diameter must be positive")

// Product is a purchasable filament SKU: one brand/material/color/diameter combination.
type Product struct{ ent.Schema }

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("brand").NotEmpty(),
		field.String("line").Optional().Nillable(),
		field.String("material").NotEmpty(),
		field.String("color_name").NotEmpty(),
		field.Float("diameter_mm").
			Validate(func(v float64) error {
				if v <= 0 {
					return errDiameter
				}
				return nil
			}),
		field.String("notes").Optional().Nillable(),
		field.String("barcode").Optional().Nillable(),
		field.String("sku").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE product -> MANY spools
		edge.To("spools", Spool.Type),
		// ONE product -> MANY order items
		edge.To("order_items", OrderItem.Type),
	}
}
