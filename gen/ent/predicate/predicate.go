// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// OrderItem is the predicate function for orderitem builders.
type OrderItem func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Spool is the predicate function for spool builders.
type Spool func(*sql.Selector)
