package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"folio/internal/content"
	applog "folio/internal/log"
	"folio/internal/validate"
)

type BlogHandler struct {
	Content *content.Client
}

func (h *BlogHandler) Index(c *fiber.Ctx) error {
	posts, err := h.Content.Posts(c.UserContext())
	if err != nil {
		applog.Error(c, "blog.index.load", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Could not load the blog. Please retry."})
	}
	return render(c, "blog_home", fiber.Map{"Posts": posts})
}

func (h *BlogHandler) Post(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "slug"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Post not found"})
	}
	post, err := h.Content.Post(c.UserContext(), slug)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			applog.Error(c, "blog.post.load", err, map[string]any{"slug": slug})
		}
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Post not found"})
	}
	// Related posts share the category; best effort.
	var related []any
	if post.Category != nil {
		if posts, err := h.Content.CategoryPosts(c.UserContext(), post.Category.Slug); err == nil {
			for _, p := range posts {
				if p.ID != post.ID && len(related) < 3 {
					related = append(related, p)
				}
			}
		}
	}
	return render(c, "blog_post", fiber.Map{"Post": post, "Related": related})
}

func (h *BlogHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Content.BlogCategories(c.UserContext())
	if err != nil {
		applog.Error(c, "blog.categories.load", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Could not load categories. Please retry."})
	}
	return render(c, "blog_categories", fiber.Map{"Categories": cats})
}

func (h *BlogHandler) Category(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	posts, err := h.Content.CategoryPosts(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
		}
		applog.Error(c, "blog.category.load", err, map[string]any{"slug": slug})
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Could not load this category. Please retry."})
	}
	return render(c, "blog_category", fiber.Map{"Slug": slug, "Posts": posts})
}

func (h *BlogHandler) Readlists(c *fiber.Ctx) error {
	lists, err := h.Content.Readlists(c.UserContext())
	if err != nil {
		applog.Error(c, "blog.readlists.load", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Could not load reading lists. Please retry."})
	}
	return render(c, "readlists", fiber.Map{"Readlists": lists})
}

func (h *BlogHandler) Readlist(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Reading list not found"})
	}
	list, err := h.Content.Readlist(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Reading list not found"})
		}
		applog.Error(c, "blog.readlist.load", err, map[string]any{"slug": slug})
		return c.Status(fiber.StatusServiceUnavailable).Render("notfound", fiber.Map{"Message": "Could not load this list. Please retry."})
	}
	return render(c, "readlist", fiber.Map{"Readlist": list})
}

func (h *BlogHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if rawQ == "" {
		return render(c, "blog_search", fiber.Map{"Q": "", "Posts": []any{}, "Count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).Render("blog_search", fiber.Map{
			"Q": "", "Posts": []any{}, "Count": 0, "Err": "Enter a valid keyword (letters/numbers only)",
		})
	}
	posts, err := h.Content.SearchPosts(c.UserContext(), q)
	if err != nil {
		applog.Error(c, "blog.search.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load results. Please retry."})
	}
	return render(c, "blog_search", fiber.Map{"Q": q, "Posts": posts, "Count": len(posts)})
}
