// Package cart implements the per-visitor shopping cart. The cart is a
// slug-keyed map carried in the visitor's session; every mutation goes
// through the Manager so the quantity invariant (always > 0) holds.
package cart

import (
	"time"

	"github.com/acasiostore/storefront-golang/internal/catalog"
	"github.com/acasiostore/storefront-golang/internal/models"
)

// Manager mutates carts, validating product slugs against the catalog.
type Manager struct {
	Catalog *catalog.Store
}

// NewManager returns a Manager bound to the given catalog.
func NewManager(store *catalog.Store) *Manager {
	return &Manager{Catalog: store}
}

// AddItem adds quantity of a product to the cart, incrementing the
// existing entry or creating one stamped with the current time.
// An unknown slug fails with catalog.ErrNotFound and leaves the cart
// untouched. Returns the updated total item count.
func (m *Manager) AddItem(c models.Cart, productSlug string, quantity int) (int, error) {
	if _, err := m.Catalog.Product(productSlug); err != nil {
		return ItemCount(c), err
	}

	if quantity <= 0 {
		quantity = 1
	}

	if entry, ok := c[productSlug]; ok {
		entry.Quantity += quantity
		c[productSlug] = entry
	} else {
		c[productSlug] = models.CartEntry{
			Quantity: quantity,
			AddedAt:  time.Now(),
		}
	}

	return ItemCount(c), nil
}

// SetQuantity upserts the quantity for a slug. Zero or negative removes
// the entry, a no-op when it is already absent. Returns the updated
// total item count.
func (m *Manager) SetQuantity(c models.Cart, productSlug string, quantity int) int {
	if quantity <= 0 {
		delete(c, productSlug)
		return ItemCount(c)
	}

	entry, ok := c[productSlug]
	if !ok {
		entry = models.CartEntry{AddedAt: time.Now()}
	}
	entry.Quantity = quantity
	c[productSlug] = entry

	return ItemCount(c)
}

// RemoveItem deletes the entry for a slug; removing an absent slug is a
// no-op, not an error. Returns the updated total item count.
func (m *Manager) RemoveItem(c models.Cart, productSlug string) int {
	delete(c, productSlug)
	return ItemCount(c)
}

// Clear empties the cart. Called after checkout, successful or not.
func Clear(c models.Cart) {
	for s := range c {
		delete(c, s)
	}
}

// ItemCount is the sum of all entry quantities, used for the UI badge.
func ItemCount(c models.Cart) int {
	count := 0
	for _, entry := range c {
		count += entry.Quantity
	}
	return count
}
