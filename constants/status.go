package constants

// SpoolStatus is the canonical lifecycle status for rows in spools.
type SpoolStatus string

// Stable values (store these exact strings in DB).
const (
	SpoolStatusInStock SpoolStatus = "in_stock" // on the shelf, usable
	SpoolStatusUsedUp  SpoolStatus = "used_up"  // fully consumed
	SpoolStatusDonated SpoolStatus = "donated"  // given away
	SpoolStatusLost    SpoolStatus = "lost"     // unaccounted for
)

// SpoolStatuses holds the allowed values for the spool status field.
var SpoolStatuses = []string{
	string(SpoolStatusInStock),
	string(SpoolStatusUsedUp),
	string(SpoolStatusDonated),
	string(SpoolStatusLost),
}

// ValidSpoolStatus reports whether s is one of the stable spool statuses.
func ValidSpoolStatus(s string) bool {
	for _, v := range SpoolStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// OrderItemStatus tracks whether an imported line item has been mapped to a product.
type OrderItemStatus string

const (
	OrderItemStatusPendingMapping OrderItemStatus = "pending_mapping" // no confident product match yet
	OrderItemStatusConfirmed      OrderItemStatus = "confirmed"       // linked to a product
)

// OrderItemStatuses holds the allowed values for the order item status field.
var OrderItemStatuses = []string{
	string(OrderItemStatusPendingMapping),
	string(OrderItemStatusConfirmed),
}
