package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"folio/internal/content"
	"folio/internal/domain"
	applog "folio/internal/log"
	"folio/internal/validate"
)

type MarketHandler struct {
	Content *content.Client
}

// List renders the marketplace grid. Category, keyword and price filters are
// applied here over the fetched listing, mirroring how the storefront
// filters the already-loaded product set.
func (h *MarketHandler) List(c *fiber.Ctx) error {
	data, err := h.Content.Marketplace(c.UserContext())
	if err != nil {
		applog.Error(c, "market.list.load", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Could not load the marketplace. Please retry."})
	}

	catSlug := strings.TrimSpace(c.Query("category"))
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	minP, hasMin := parsePrice(c.Query("min"))
	maxP, hasMax := parsePrice(c.Query("max"))

	products := data.Products[:0:0]
	for _, p := range data.Products {
		if catSlug != "" && (p.Category == nil || p.Category.Slug != catSlug) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if hasMin && p.Price.LessThan(minP) {
			continue
		}
		if hasMax && p.Price.GreaterThan(maxP) {
			continue
		}
		products = append(products, p)
	}

	return render(c, "marketplace", fiber.Map{
		"Products":   products,
		"Categories": data.Categories,
		"Active":     catSlug,
		"Q":          c.Query("q"),
	})
}

func (h *MarketHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Content.Product(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			applog.Error(c, "market.detail.load", err, map[string]any{"product": id})
		}
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p})
}

func parsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// fetchProduct is shared by the cart and order handlers: both only ever act
// on a product the catalog can still resolve.
func fetchProduct(c *fiber.Ctx, cl *content.Client, raw string) (domain.Product, bool) {
	id, ok := validate.IntID(raw)
	if !ok {
		return domain.Product{}, false
	}
	p, err := cl.Product(c.UserContext(), id)
	if err != nil {
		return domain.Product{}, false
	}
	return p, true
}
