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

	"github.com/filatrack/filatrack/constants"
)

var errQuantity = errors.New("quantity must be at least 1")

// OrderItem is one invoice line item; product_id stays unset until the
// line has been mapped to a product.
type OrderItem struct{ ent.Schema }

func (OrderItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_items"},
	}
}

func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("order_id", uuid.UUID{}),
		field.UUID("product_id", uuid.UUID{}).Optional().Nillable(),
		field.String("title_raw").NotEmpty(),
		field.Int("quantity").
			Validate(func(v int) error {
				if v < 1 {
					return errQuantity
				}
				return nil
			}),
		field.Float("unit_price"),
		field.String("currency").Default("USD").MinLen(3).MaxLen(3),
		field.Enum("status").
			Values(constants.OrderItemStatuses...).
			Default(string(constants.OrderItemStatusPendingMapping)),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE order (FK: order_items.order_id)
		edge.From("order", Order.Type).
			Ref("items").
			Field("order_id").
			Required().
			Unique(),
		// OPTIONAL: MANY items -> ONE product (FK: order_items.product_id)
		edge.From("product", Product.Type).
			Ref("order_items").
			Field("product_id").
			Unique(),
	}
}
