package handlers

import (
	"github.com/acasiostore/storefront-golang/internal/cart"
	"github.com/acasiostore/storefront-golang/internal/catalog"
	"github.com/acasiostore/storefront-golang/internal/config"
	"github.com/acasiostore/storefront-golang/internal/mailer"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Catalog *catalog.Store  // Immutable product catalog, loaded at startup
	Cart    *cart.Manager   // Session cart mutations
	Orders  *mailer.Service // Order confirmation emails
	Store   config.StoreInfo
}
