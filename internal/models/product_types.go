package models

// Sale carries the optional discount sub-record of a product.
// A product with no "sale" object in the data file gets the zero value,
// which means not on sale.
type Sale struct {
	OnSale          bool    `json:"on_sale"`
	DiscountPercent float64 `json:"discount_percent"`
}

// Product is one catalog item as it appears in data/products.json.
// The catalog is loaded once at startup and never mutated, so Product
// values are shared freely across request handlers.
type Product struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// --- Pricing ---
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Sale     Sale    `json:"sale,omitempty"`

	// --- Classification & media ---
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// Category is a storefront section from data/categories.json.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// GenericCategory is a curated product list from data/generic_categories.json.
// Products holds product slugs; they are resolved against the catalog when
// the page is rendered, and stale references are skipped.
type GenericCategory struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Products    []string `json:"products"`
}
