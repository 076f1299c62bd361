package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/acasiostore/storefront-golang/internal/cart"
	"github.com/acasiostore/storefront-golang/internal/catalog"
	"github.com/acasiostore/storefront-golang/internal/pricing"
)

//
// --- Cart Handlers ---
//

// QuantityInput binds the quantity field of the cart forms. A missing
// quantity means 1; a non-numeric one fails binding with a 400.
type QuantityInput struct {
	Quantity int `form:"quantity,default=1"`
}

// AddToCart is the handler for POST /add-to-cart/:slug
func (h *Handlers) AddToCart(c *gin.Context) {
	productSlug := c.Param("slug")

	var input QuantityInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quantity"})
		return
	}

	sess := sessions.Default(c)
	visitorCart := cart.FromSession(sess)

	count, err := h.Cart.AddItem(visitorCart, productSlug, input.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	if err := cart.Save(sess, visitorCart); err != nil {
		log.Printf("Failed to save cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	product, _ := h.Catalog.Product(productSlug)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    fmt.Sprintf("%s added to cart", product.Name),
		"cart_count": count,
	})
}

// UpdateCart is the handler for POST /update-cart/:slug
// Quantity 0 or below removes the entry, matching the storefront's
// "set to zero deletes" behaviour.
func (h *Handlers) UpdateCart(c *gin.Context) {
	productSlug := c.Param("slug")

	var input QuantityInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quantity"})
		return
	}

	sess := sessions.Default(c)
	visitorCart := cart.FromSession(sess)

	count := h.Cart.SetQuantity(visitorCart, productSlug, input.Quantity)

	if err := cart.Save(sess, visitorCart); err != nil {
		log.Printf("Failed to save cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cart_count": count})
}

// RemoveFromCart is the handler for POST /remove-from-cart/:slug
// Removing a slug that is not in the cart is a no-op, not an error.
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	sess := sessions.Default(c)
	visitorCart := cart.FromSession(sess)

	count := h.Cart.RemoveItem(visitorCart, c.Param("slug"))

	if err := cart.Save(sess, visitorCart); err != nil {
		log.Printf("Failed to save cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cart_count": count})
}

// ViewCart is the handler for GET /cart
func (h *Handlers) ViewCart(c *gin.Context) {
	visitorCart := cart.FromSession(sessions.Default(c))

	h.render(c, http.StatusOK, "cart.html", gin.H{
		"Lines": pricing.Lines(visitorCart, h.Catalog),
		"Total": pricing.Total(visitorCart, h.Catalog),
	})
}

// CartCount is the handler for GET /cart-count, the badge poll endpoint.
func (h *Handlers) CartCount(c *gin.Context) {
	count := cart.ItemCount(cart.FromSession(sessions.Default(c)))
	c.JSON(http.StatusOK, gin.H{"count": count})
}
