package cart

import (
	"encoding/json"
	"log"

	"github.com/gin-contrib/sessions"

	"github.com/acasiostore/storefront-golang/internal/models"
)

// cartKey is the session key holding the serialized cart.
const cartKey = "cart"

// FromSession reads the visitor's cart out of the session. The cart is
// stored as a JSON string to keep the cookie codec simple. A missing or
// corrupt value degrades to an empty cart rather than failing the
// request; the visitor just starts over.
func FromSession(sess sessions.Session) models.Cart {
	raw := sess.Get(cartKey)
	if raw == nil {
		return models.Cart{}
	}

	str, ok := raw.(string)
	if !ok {
		log.Printf("Unexpected cart session value of type %T, resetting cart", raw)
		return models.Cart{}
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(str), &c); err != nil {
		log.Printf("Failed to decode session cart, resetting: %v", err)
		return models.Cart{}
	}
	return c
}

// Save writes the cart back into the session and persists the session.
func Save(sess sessions.Session, c models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	sess.Set(cartKey, string(data))
	return sess.Save()
}
