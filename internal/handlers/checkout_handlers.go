package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acasiostore/storefront-golang/internal/cart"
	"github.com/acasiostore/storefront-golang/internal/mailer"
	"github.com/acasiostore/storefront-golang/internal/models"
	"github.com/acasiostore/storefront-golang/internal/pricing"
)

//
// --- Checkout Flow ---
//
// CartOpen -> AwaitingSubmission (GET form) -> Processing (POST) -> Completed.
// The cart is cleared unconditionally once an order is accepted; only the
// flash message varies with how the confirmation emails fared.
//

// ShowCheckout is the handler for GET /checkout
func (h *Handlers) ShowCheckout(c *gin.Context) {
	visitorCart := cart.FromSession(sessions.Default(c))

	if len(visitorCart) == 0 {
		setFlash(c, "Your cart is empty!", "warning")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	h.render(c, http.StatusOK, "checkout.html", gin.H{
		"Lines": pricing.Lines(visitorCart, h.Catalog),
		"Total": pricing.Total(visitorCart, h.Catalog),
	})
}

// SubmitCheckout is the handler for POST /checkout
// It snapshots the cart, sends the confirmation emails and clears the
// cart regardless of how delivery went: a lost email never loses the
// order, the admin follow-up does.
func (h *Handlers) SubmitCheckout(c *gin.Context) {
	sess := sessions.Default(c)
	visitorCart := cart.FromSession(sess)

	if len(visitorCart) == 0 {
		setFlash(c, "Your cart is empty!", "warning")
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	var customer models.CustomerInfo
	if err := c.ShouldBind(&customer); err != nil {
		setFlash(c, "Please fill in your name, a valid email and a delivery address.", "warning")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	lines := pricing.Lines(visitorCart, h.Catalog)
	order := models.OrderSnapshot{
		Reference: newOrderReference(),
		Customer:  customer,
		Lines:     lines,
		Total:     pricing.Total(visitorCart, h.Catalog),
		Currency:  snapshotCurrency(lines),
		PlacedAt:  time.Now(),
	}

	result := h.Orders.SendOrderNotifications(order)
	log.Printf("Order %s placed by %s, notifications: %s", order.Reference, customer.Email, result)

	cart.Clear(visitorCart)
	if err := cart.Save(sess, visitorCart); err != nil {
		log.Printf("Failed to clear cart after checkout: %v", err)
	}

	if result == mailer.BothSent {
		setFlash(c, "Order placed successfully! Confirmation email has been sent.", "success")
	} else {
		setFlash(c, "Order received! We will contact you shortly. (Email confirmation pending)", "info")
	}
	c.Redirect(http.StatusFound, "/")
}

// newOrderReference builds a short human-quotable order id.
func newOrderReference() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// snapshotCurrency picks the display currency for the order total. All
// products in one store share a currency; fall back to the first line's.
func snapshotCurrency(lines []models.CartLine) string {
	if len(lines) > 0 {
		return lines[0].Product.Currency
	}
	return ""
}
