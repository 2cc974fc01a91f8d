package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"folio/internal/content"
	applog "folio/internal/log"
	"folio/internal/validate"
)

type CartHandler struct {
	DB      *sqlx.DB
	Content *content.Client
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	m := cartFor(h.DB, c)
	entries, err := m.Entries()
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	total, err := m.Total()
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	return render(c, "cart", fiber.Map{"Entries": entries, "Total": total, "Count": len(entries)})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	p, ok := fetchProduct(c, h.Content, c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing or unknown productId")
	}
	if err := cartFor(h.DB, c).Add(p); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": p.ID})
		return c.Status(500).SendString("Could not add item")
	}
	applog.Info(c, "cart.add", map[string]any{"product": p.ID})
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	// Removing an id that is not in the cart is a successful no-op.
	id, _ := validate.IntID(c.FormValue("productId"))
	if id > 0 {
		if err := cartFor(h.DB, c).Remove(id); err != nil {
			applog.Error(c, "cart.remove.fail", err, map[string]any{"product": id})
			return c.Status(500).SendString("Could not remove item")
		}
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := cartFor(h.DB, c).Clear(); err != nil {
		applog.Error(c, "cart.clear.fail", err, nil)
		return c.Status(500).SendString("Could not clear cart")
	}
	applog.Info(c, "cart.clear", nil)
	return c.Redirect("/cart")
}
