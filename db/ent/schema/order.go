package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Order is a vendor purchase, usually created by importing an invoice.
type Order struct{ ent.Schema }

func (Order) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orders"},
	}
}

func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("vendor").NotEmpty(),
		field.String("order_number").NotEmpty(),
		field.Time("order_date").Optional().Nillable(),
		field.String("invoice_path").Optional().Nillable(),
		field.Float("total_amount").Optional().Nillable(),
		field.String("currency").Default("USD").MinLen(3).MaxLen(3),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE order -> MANY line items
		edge.To("items", OrderItem.Type),
		// ONE order -> MANY spools
		edge.To("spools", Spool.Type),
	}
}
