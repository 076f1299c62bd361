package models

import "time"

// CartEntry is one line of a visitor's cart, keyed by product slug.
type CartEntry struct {
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Cart maps product slug to entry. It lives in the visitor's session and
// is scoped to that one visitor; entries always have Quantity > 0.
type Cart map[string]CartEntry

// CartLine is a cart entry resolved against the catalog at render time:
// current effective unit price and line total, never cached.
type CartLine struct {
	Slug      string  `json:"slug"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
	LineTotal float64 `json:"total"`
}
