package localstore

import "github.com/Ramsagar705/aqua-blue-hydropack/internal/form"

// ContactRecord is a contact submission saved while the backend was
// unreachable.
type ContactRecord struct {
	form.ContactSubmission
	Timestamp string `json:"timestamp"`
}

// OrderRecord is an order submission saved while the backend was
// unreachable, together with the confirmation id shown to the customer.
type OrderRecord struct {
	form.OrderSubmission
	OrderID   string `json:"orderId"`
	Timestamp string `json:"timestamp"`
}
