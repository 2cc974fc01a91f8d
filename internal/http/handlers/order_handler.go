package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"folio/internal/content"
	"folio/internal/inquiry"
	applog "folio/internal/log"
)

type OrderHandler struct {
	DB      *sqlx.DB
	Content *content.Client
	Gateway *inquiry.Gateway
}

// Submit sends one order inquiry for either a single product (productId form
// field set) or the whole cart. A successful inquiry does not clear the
// cart: leaving it intact is deliberate, so the visitor can follow up with a
// second inquiry or keep browsing.
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	contact := inquiry.Contact{
		Name:  c.FormValue("name"),
		Email: c.FormValue("email"),
		Phone: c.FormValue("phone"),
	}

	var target inquiry.Target
	if raw := c.FormValue("productId"); raw != "" {
		p, ok := fetchProduct(c, h.Content, raw)
		if !ok {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
		}
		target = inquiry.ProductTarget(p)
	} else {
		m := cartFor(h.DB, c)
		entries, err := m.Entries()
		if err != nil {
			applog.Error(c, "order.cart.load", err, nil)
			return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
		}
		total, err := m.Total()
		if err != nil {
			applog.Error(c, "order.cart.load", err, nil)
			return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
		}
		target = inquiry.CartTarget(entries, total)
	}

	msg, err := h.Gateway.Submit(c.UserContext(), contact, target)
	if err != nil {
		if inquiry.IsValidation(err) {
			applog.Security(c, "order.validation.fail", map[string]any{"reason": err.Error()})
			return c.Status(fiber.StatusBadRequest).Render("order_result", fiber.Map{"Err": err.Error()})
		}
		applog.Error(c, "order.submit.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("order_result", fiber.Map{
			"Err": "Failed to submit order. Please try again.",
		})
	}

	applog.Audit(c, "order.submit", map[string]any{"email": contact.Email})
	return render(c, "order_result", fiber.Map{"Message": msg})
}
