// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor", Type: field.TypeString},
		{Name: "order_number", Type: field.TypeString},
		{Name: "order_date", Type: field.TypeTime, Nullable: true},
		{Name: "invoice_path", Type: field.TypeString, Nullable: true},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "USD"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title_raw", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "USD"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_mapping", "confirmed"}, Default: "pending_mapping"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeUUID},
		{Name: "product_id", Type: field.TypeUUID, Nullable: true},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_orders_items",
				Columns:    []*schema.Column{OrderItemsColumns[8]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "order_items_products_order_items",
				Columns:    []*schema.Column{OrderItemsColumns[9]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "brand", Type: field.TypeString},
		{Name: "line", Type: field.TypeString, Nullable: true},
		{Name: "material", Type: field.TypeString},
		{Name: "color_name", Type: field.TypeString},
		{Name: "diameter_mm", Type: field.TypeFloat64},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "barcode", Type: field.TypeString, Nullable: true},
		{Name: "sku", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
	}
	// SpoolsColumns holds the columns for the "spools" table.
	SpoolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "purchase_date", Type: field.TypeTime, Nullable: true},
		{Name: "vendor", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, Nullable: true},
		{Name: "storage_location", Type: field.TypeString, Nullable: true},
		{Name: "photo_path", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_stock", "used_up", "donated", "lost"}, Default: "in_stock"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeUUID, Nullable: true},
		{Name: "product_id", Type: field.TypeUUID},
	}
	// SpoolsTable holds the schema information for the "spools" table.
	SpoolsTable = &schema.Table{
		Name:       "spools",
		Columns:    SpoolsColumns,
		PrimaryKey: []*schema.Column{SpoolsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spools_orders_spools",
				Columns:    []*schema.Column{SpoolsColumns[9]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "spools_products_spools",
				Columns:    []*schema.Column{SpoolsColumns[10]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OrdersTable,
		OrderItemsTable,
		ProductsTable,
		SpoolsTable,
	}
)

func init() {
	OrdersTable.Annotation = &entsql.Annotation{
		Table: "orders",
	}
	OrderItemsTable.ForeignKeys[0].RefTable = OrdersTable
	OrderItemsTable.ForeignKeys[1].RefTable = ProductsTable
	OrderItemsTable.Annotation = &entsql.Annotation{
		Table: "order_items",
	}
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	SpoolsTable.ForeignKeys[0].RefTable = OrdersTable
	SpoolsTable.ForeignKeys[1].RefTable = ProductsTable
	SpoolsTable.Annotation = &entsql.Annotation{
		Table: "spools",
	}
}
