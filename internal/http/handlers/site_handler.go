package handlers

import (
	"github.com/gofiber/fiber/v2"

	"folio/internal/content"
	applog "folio/internal/log"
)

type SiteHandler struct {
	Content *content.Client
}

func (h *SiteHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()
	// The landing page degrades gracefully: a content API hiccup renders the
	// static hero without the recent-work strips.
	projects, err := h.Content.Projects(ctx)
	if err != nil {
		applog.Error(c, "home.projects.load", err, nil)
	}
	posts, err := h.Content.Posts(ctx)
	if err != nil {
		applog.Error(c, "home.posts.load", err, nil)
	}
	if len(projects) > 3 {
		projects = projects[:3]
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}
	return render(c, "home", fiber.Map{"Projects": projects, "Posts": posts})
}

func (h *SiteHandler) About(c *fiber.Ctx) error {
	about, err := h.Content.About(c.UserContext())
	if err != nil {
		applog.Error(c, "about.load", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Could not load this page. Please retry."})
	}
	return render(c, "about", fiber.Map{"About": about})
}

func (h *SiteHandler) Portfolio(c *fiber.Ctx) error {
	projects, err := h.Content.Projects(c.UserContext())
	if err != nil {
		applog.Error(c, "portfolio.load", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Could not load the portfolio. Please retry."})
	}
	return render(c, "portfolio", fiber.Map{"Projects": projects})
}
