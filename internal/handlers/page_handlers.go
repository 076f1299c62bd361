package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/acasiostore/storefront-golang/internal/cart"
	"github.com/acasiostore/storefront-golang/internal/pricing"
)

// featuredCount is how many products the home page shows.
const featuredCount = 12

// render wraps c.HTML, adding the fields every page needs: the cart
// badge count, the store identity and any pending flash message.
func (h *Handlers) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CartCount"] = cart.ItemCount(cart.FromSession(sessions.Default(c)))
	data["Store"] = h.Store
	data["Flash"] = consumeFlash(c)
	c.HTML(status, name, data)
}

// notFound renders the 404 page.
func (h *Handlers) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Page Not Found"})
}

// Home is the handler for GET /
func (h *Handlers) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", gin.H{
		"Categories":  h.Catalog.Categories(),
		"Featured":    h.Catalog.Featured(featuredCount),
		"BestSellers": h.Catalog.BestSellers(),
	})
}

// CategoryPage is the handler for GET /category/:slug
func (h *Handlers) CategoryPage(c *gin.Context) {
	category, err := h.Catalog.Category(c.Param("slug"))
	if err != nil {
		h.notFound(c)
		return
	}

	h.render(c, http.StatusOK, "category.html", gin.H{
		"Category": category,
		"Products": h.Catalog.ByCategory(category.Slug),
	})
}

// ProductDetails is the handler for GET /product/:slug
func (h *Handlers) ProductDetails(c *gin.Context) {
	product, err := h.Catalog.Product(c.Param("slug"))
	if err != nil {
		h.notFound(c)
		return
	}

	data := gin.H{"Product": product}
	if product.Sale.OnSale {
		data["SalePrice"] = pricing.EffectivePrice(product)
	}
	h.render(c, http.StatusOK, "details.html", data)
}

// GenericCategoryPage is the handler for GET /generic/:slug
// It renders a curated product list, e.g. "gifts under 5000".
func (h *Handlers) GenericCategoryPage(c *gin.Context) {
	generic, err := h.Catalog.GenericCategory(c.Param("slug"))
	if err != nil {
		h.notFound(c)
		return
	}
	products, _ := h.Catalog.GenericProducts(generic.Slug)

	h.render(c, http.StatusOK, "category_generic.html", gin.H{
		"Title":       generic.Title,
		"Description": generic.Description,
		"Products":    products,
	})
}

// SalePage is the handler for GET /sale_page
func (h *Handlers) SalePage(c *gin.Context) {
	h.render(c, http.StatusOK, "sale.html", gin.H{
		"Products": h.Catalog.OnSale(),
	})
}

// Warranty is the handler for GET /warranty
func (h *Handlers) Warranty(c *gin.Context) {
	h.render(c, http.StatusOK, "warranty.html", nil)
}
