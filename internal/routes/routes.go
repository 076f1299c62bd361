package routes

import (
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/acasiostore/storefront-golang/internal/handlers"
	"github.com/acasiostore/storefront-golang/internal/pricing"
)

// Options carries the router wiring that differs between production and
// tests: where templates and static files live and the session secret.
type Options struct {
	SessionSecret string
	TemplateGlob  string
	StaticDir     string
}

// SetupRouter builds the gin engine: session middleware first, then the
// storefront pages, the cart JSON endpoints and the checkout flow.
func SetupRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	router := gin.Default()

	// The cart and flash messages ride a cookie session; it must be
	// installed before any handler runs.
	store := cookie.NewStore([]byte(opts.SessionSecret))
	router.Use(sessions.Sessions("storefront_session", store))

	router.SetFuncMap(template.FuncMap{
		"money":     pricing.FormatMoney,
		"effective": pricing.EffectivePrice,
	})
	if opts.TemplateGlob != "" {
		router.LoadHTMLGlob(opts.TemplateGlob)
	}
	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}

	// --- Storefront Pages ---
	router.GET("/", h.Home)
	router.GET("/category/:slug", h.CategoryPage)
	router.GET("/product/:slug", h.ProductDetails)
	router.GET("/generic/:slug", h.GenericCategoryPage)
	router.GET("/sale_page", h.SalePage)
	router.GET("/warranty", h.Warranty)

	// --- Cart ---
	router.POST("/add-to-cart/:slug", h.AddToCart)
	router.POST("/update-cart/:slug", h.UpdateCart)
	router.POST("/remove-from-cart/:slug", h.RemoveFromCart)
	router.GET("/cart", h.ViewCart)
	router.GET("/cart-count", h.CartCount)

	// --- Checkout ---
	router.GET("/checkout", h.ShowCheckout)
	router.POST("/checkout", h.SubmitCheckout)

	return router
}
