package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acasiostore/storefront-golang/internal/cart"
	"github.com/acasiostore/storefront-golang/internal/catalog"
	"github.com/acasiostore/storefront-golang/internal/config"
	"github.com/acasiostore/storefront-golang/internal/handlers"
	"github.com/acasiostore/storefront-golang/internal/mailer"
	"github.com/acasiostore/storefront-golang/internal/models"
	"github.com/acasiostore/storefront-golang/internal/routes"
)

// recordingSender counts deliveries; fail makes every send fail.
type recordingSender struct {
	sent []string
	fail bool
}

func (r *recordingSender) Send(to, subject, htmlBody string) error {
	if r.fail {
		return &mailer.DeliveryError{Recipient: to, Err: assert.AnError}
	}
	r.sent = append(r.sent, to)
	return nil
}

func newTestApp(t *testing.T) (*gin.Engine, *recordingSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.New(
		[]models.Category{{Slug: "watches", Name: "Watches"}},
		[]models.Product{
			{Slug: "alpha", Name: "Alpha", Price: 1000, Currency: "Rs.", Category: "watches"},
			{Slug: "beta", Name: "Beta", Price: 2000, Currency: "Rs.", Category: "watches",
				Sale: models.Sale{OnSale: true, DiscountPercent: 10}},
		},
		[]models.GenericCategory{{Slug: "picks", Title: "Staff Picks", Products: []string{"alpha"}}},
		[]string{"beta"},
	)
	require.NoError(t, err)

	sender := &recordingSender{}
	info := config.DefaultStoreInfo()
	app := &handlers.Handlers{
		Catalog: store,
		Cart:    cart.NewManager(store),
		Orders:  mailer.NewService(sender, "admin@example.com", info),
		Store:   info,
	}

	router := routes.SetupRouter(app, routes.Options{
		SessionSecret: "test-secret",
		TemplateGlob:  "../../web/templates/*.html",
	})
	return router, sender
}

// do runs a request, carrying the session cookie across calls.
func do(t *testing.T, router *gin.Engine, cookie, method, path string, form url.Values) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if set := w.Header().Get("Set-Cookie"); set != "" {
		cookie = set
	}
	return w, cookie
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAddToCart(t *testing.T) {
	router, _ := newTestApp(t)

	w, cookie := do(t, router, "", http.MethodPost, "/add-to-cart/alpha",
		url.Values{"quantity": {"2"}})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Alpha added to cart", resp["message"])
	assert.Equal(t, 2.0, resp["cart_count"])

	// Quantity defaults to 1 when the form omits it.
	w, cookie = do(t, router, cookie, http.MethodPost, "/add-to-cart/beta", nil)
	resp = decodeJSON(t, w)
	assert.Equal(t, 3.0, resp["cart_count"])

	w, _ = do(t, router, cookie, http.MethodGet, "/cart-count", nil)
	assert.Equal(t, 3.0, decodeJSON(t, w)["count"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	router, _ := newTestApp(t)

	w, cookie := do(t, router, "", http.MethodPost, "/add-to-cart/unknown-slug", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Product not found", resp["message"])

	// Cart unchanged.
	w, _ = do(t, router, cookie, http.MethodGet, "/cart-count", nil)
	assert.Equal(t, 0.0, decodeJSON(t, w)["count"])
}

func TestAddToCartMalformedQuantity(t *testing.T) {
	router, _ := newTestApp(t)

	w, _ := do(t, router, "", http.MethodPost, "/add-to-cart/alpha",
		url.Values{"quantity": {"two"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCart(t *testing.T) {
	router, _ := newTestApp(t)

	_, cookie := do(t, router, "", http.MethodPost, "/add-to-cart/alpha",
		url.Values{"quantity": {"2"}})

	w, cookie := do(t, router, cookie, http.MethodPost, "/update-cart/alpha",
		url.Values{"quantity": {"5"}})
	resp := decodeJSON(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, 5.0, resp["cart_count"])

	// Setting quantity to 0 removes the entry.
	w, _ = do(t, router, cookie, http.MethodPost, "/update-cart/alpha",
		url.Values{"quantity": {"0"}})
	assert.Equal(t, 0.0, decodeJSON(t, w)["cart_count"])
}

func TestRemoveFromCart(t *testing.T) {
	router, _ := newTestApp(t)

	_, cookie := do(t, router, "", http.MethodPost, "/add-to-cart/alpha", nil)

	w, cookie := do(t, router, cookie, http.MethodPost, "/remove-from-cart/alpha", nil)
	resp := decodeJSON(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, 0.0, resp["cart_count"])

	// Removing an absent slug stays a success no-op.
	w, _ = do(t, router, cookie, http.MethodPost, "/remove-from-cart/alpha", nil)
	assert.Equal(t, true, decodeJSON(t, w)["success"])
}

func TestViewCartShowsTotal(t *testing.T) {
	router, _ := newTestApp(t)

	_, cookie := do(t, router, "", http.MethodPost, "/add-to-cart/alpha",
		url.Values{"quantity": {"2"}})
	_, cookie = do(t, router, cookie, http.MethodPost, "/add-to-cart/beta", nil)

	w, _ := do(t, router, cookie, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Alpha")
	assert.Contains(t, body, "Beta")
	// 1000*2 + 2000*0.9 = 3800
	assert.Contains(t, body, "3,800")
}

func TestPageNotFound(t *testing.T) {
	router, _ := newTestApp(t)

	for _, path := range []string{"/product/nope", "/category/nope", "/generic/nope"} {
		w, _ := do(t, router, "", http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestHomePage(t *testing.T) {
	router, _ := newTestApp(t)

	w, _ := do(t, router, "", http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Watches")
	assert.Contains(t, body, "Alpha")
	// Best seller rail resolves the beta slug.
	assert.Contains(t, body, "Beta")
}

func TestSalePage(t *testing.T) {
	router, _ := newTestApp(t)

	w, _ := do(t, router, "", http.MethodGet, "/sale_page", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Beta")
	assert.NotContains(t, w.Body.String(), "Alpha")
}

func TestCheckoutEmptyCartRedirects(t *testing.T) {
	router, sender := newTestApp(t)

	w, _ := do(t, router, "", http.MethodGet, "/checkout", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	w, _ = do(t, router, "", http.MethodPost, "/checkout", url.Values{
		"name": {"X"}, "email": {"x@example.com"}, "phone1": {"1"}, "address": {"Y"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	// An empty cart never reaches the mailer.
	assert.Empty(t, sender.sent)
}

func TestCheckoutPlacesOrder(t *testing.T) {
	router, sender := newTestApp(t)

	_, cookie := do(t, router, "", http.MethodPost, "/add-to-cart/alpha",
		url.Values{"quantity": {"2"}})

	w, cookie := do(t, router, cookie, http.MethodPost, "/checkout", url.Values{
		"name":    {"Ayesha Khan"},
		"email":   {"ayesha@example.com"},
		"phone1":  {"+92 300 1234567"},
		"address": {"House 12, Karachi"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Customer first, then admin.
	require.Equal(t, []string{"ayesha@example.com", "admin@example.com"}, sender.sent)

	// Cart cleared.
	w, _ = do(t, router, cookie, http.MethodGet, "/cart-count", nil)
	assert.Equal(t, 0.0, decodeJSON(t, w)["count"])
}

func TestCheckoutClearsCartWhenMailFails(t *testing.T) {
	router, sender := newTestApp(t)
	sender.fail = true

	_, cookie := do(t, router, "", http.MethodPost, "/add-to-cart/alpha", nil)

	w, cookie := do(t, router, cookie, http.MethodPost, "/checkout", url.Values{
		"name":    {"Ayesha Khan"},
		"email":   {"ayesha@example.com"},
		"phone1":  {"+92 300 1234567"},
		"address": {"House 12, Karachi"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Delivery failure degrades the confirmation only; the cart still clears.
	w, _ = do(t, router, cookie, http.MethodGet, "/cart-count", nil)
	assert.Equal(t, 0.0, decodeJSON(t, w)["count"])
}

func TestCheckoutInvalidFormRedirectsBack(t *testing.T) {
	router, sender := newTestApp(t)

	_, cookie := do(t, router, "", http.MethodPost, "/add-to-cart/alpha", nil)

	w, cookie := do(t, router, cookie, http.MethodPost, "/checkout", url.Values{
		"name":    {"Ayesha"},
		"email":   {"not-an-email"},
		"phone1":  {"1"},
		"address": {"Somewhere"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/checkout", w.Header().Get("Location"))
	assert.Empty(t, sender.sent)

	// Cart untouched.
	w, _ = do(t, router, cookie, http.MethodGet, "/cart-count", nil)
	assert.Equal(t, 1.0, decodeJSON(t, w)["count"])
}
