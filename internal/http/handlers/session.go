package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"folio/internal/cart"
	"github.com/jmoiron/sqlx"
)

// ensureSID returns the visitor's session id, minting a cookie on first
// contact. The id keys both auth sessions and the cart slot.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

// cartFor builds the request-scoped cart manager over the visitor's slot.
func cartFor(db *sqlx.DB, c *fiber.Ctx) *cart.Manager {
	return cart.NewManager(cart.NewSQLStore(db, ensureSID(c)))
}
