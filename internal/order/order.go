package order

import "github.com/halimdz/tech-store-backend/internal/cart"

// Order statuses. New orders always start pending; completed and cancelled
// are terminal.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Order kinds. A direct order references a single product; a cart order
// carries the full line snapshot from checkout.
const (
	KindDirect = "direct"
	KindCart   = "cart"
)

// Order represents a placed order. Exactly one of the two shapes is filled
// depending on Kind: ProductID/ProductName for direct orders, Items for cart
// orders. TotalPrice is a snapshot taken at creation and never recomputed.
type Order struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`

	ProductID   int         `json:"productId,omitempty"`
	ProductName string      `json:"productName,omitempty"`
	Items       []cart.Line `json:"items,omitempty"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	Notes           string `json:"notes,omitempty"`

	TotalPrice int    `json:"totalPrice"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// ValidStatus reports whether s is one of the known status labels.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}
