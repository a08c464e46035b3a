package models

// OrderRequest represents a validated order submission.
// Orders are echoed back, never stored.
type OrderRequest struct {
	Data []OrderLine `json:"data"`
}

// OrderLine represents a single line item in an order
type OrderLine struct {
	ProductID int64   `json:"productId"`
	Qty       int64   `json:"qty"`
	Note      *string `json:"note,omitempty"`
}

// Order is an accepted submission. Reference correlates it with the
// server log; it is not part of the echoed body.
type Order struct {
	Reference string      `json:"-"`
	Data      []OrderLine `json:"data"`
}
