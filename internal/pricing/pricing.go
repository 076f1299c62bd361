// Package pricing derives effective prices and cart totals. Totals are
// always recomputed from the current catalog, never cached, so a price
// or sale change retroactively affects every open cart.
package pricing

import (
	"sort"

	"github.com/acasiostore/storefront-golang/internal/catalog"
	"github.com/acasiostore/storefront-golang/internal/models"
)

// EffectivePrice returns the unit price with the sale discount applied
// when the product's sale flag is active. No rounding happens here;
// formatting is a presentation concern.
func EffectivePrice(p models.Product) float64 {
	if p.Sale.OnSale {
		return p.Price * (1 - p.Sale.DiscountPercent/100)
	}
	return p.Price
}

// Lines resolves a cart against the catalog into renderable lines.
// Entries referencing a product that no longer exists are skipped, not
// an error. Lines come back slug-sorted so receipts are deterministic.
func Lines(cart models.Cart, store *catalog.Store) []models.CartLine {
	slugs := make([]string, 0, len(cart))
	for s := range cart {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)

	var lines []models.CartLine
	for _, s := range slugs {
		product, err := store.Product(s)
		if err != nil {
			continue
		}
		entry := cart[s]
		unit := EffectivePrice(product)
		lines = append(lines, models.CartLine{
			Slug:      s,
			Product:   product,
			Quantity:  entry.Quantity,
			UnitPrice: unit,
			LineTotal: unit * float64(entry.Quantity),
		})
	}
	return lines
}

// Total is the sum of line totals over all valid cart entries.
func Total(cart models.Cart, store *catalog.Store) float64 {
	var total float64
	for s, entry := range cart {
		product, err := store.Product(s)
		if err != nil {
			continue
		}
		total += EffectivePrice(product) * float64(entry.Quantity)
	}
	return total
}
