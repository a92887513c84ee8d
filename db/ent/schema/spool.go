package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/filatrack/filatrack/constants"
)

// Spool is one physical spool of a product, tracked from purchase to disposal.
type Spool struct{ ent.Schema }

func (Spool) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "spools"},
	}
}

func (Spool) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("product_id", uuid.UUID{}),
		field.UUID("order_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("purchase_date").Optional().Nillable(),
		field.String("vendor").Optional().Nillable(),
		field.Float("price").Optional().Nillable(),
		field.String("storage_location").Optional().Nillable(),
		field.String("photo_path").Optional().Nillable(),
		field.Enum("status").
			Values(constants.SpoolStatuses...).
			Default(string(constants.SpoolStatusInStock)),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Spool) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY spools -> ONE product (FK: spools.product_id)
		edge.From("product", Product.Type).
			Ref("spools").
			Field("product_id").
			Required().
			Unique(),
		// OPTIONAL: MANY spools -> ONE order (FK: spools.order_id)
		edge.From("order", Order.Type).
			Ref("spools").
			Field("order_id").
			Unique(),
	}
}
