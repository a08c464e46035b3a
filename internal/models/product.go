package models

// RawProduct is a product record as it appears in the source dataset,
// with its category referenced by name.
type RawProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
	MinAmount   int    `json:"minAmount"`
	MaxAmount   int    `json:"maxAmount"`
	Image       string `json:"image"`
}

// Product is the normalized form served by the API.
// ID is the 1-based position in the source dataset.
type Product struct {
	ID          int    `json:"id"`
	CategoryID  int    `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Available   bool   `json:"available"`
	MinAmount   int    `json:"minAmount"`
	MaxAmount   int    `json:"maxAmount"`
	Image       string `json:"image"`
}

// Category groups products. IDs are assigned in first-seen order.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
