package models

import "time"

// CustomerInfo is the contact block captured from the checkout form.
// It is transient: used for the confirmation emails and then discarded.
type CustomerInfo struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Phone1  string `form:"phone1" binding:"required"`
	Phone2  string `form:"phone2"`
	Address string `form:"address" binding:"required"`
}

// OrderSnapshot is the full cart state frozen at checkout time, the
// input to the confirmation emails. Lines are already resolved against
// the catalog, so a later price change cannot alter a sent receipt.
type OrderSnapshot struct {
	Reference string       `json:"reference"`
	Customer  CustomerInfo `json:"customer"`
	Lines     []CartLine   `json:"lines"`
	Total     float64      `json:"total"`
	Currency  string       `json:"currency"`
	PlacedAt  time.Time    `json:"placed_at"`
}
