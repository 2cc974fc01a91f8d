package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"folio/internal/content"
	"folio/internal/domain"
	applog "folio/internal/log"
	"folio/internal/validate"
)

// AdminHandler drives the dashboard: thin CRUD screens over the content API.
// Content is the token-bearing client; the API owns validation and storage.
type AdminHandler struct {
	Content *content.Client
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.Content.Stats(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.stats.fail", err, nil)
	}
	return render(c, "admin_dashboard", fiber.Map{"Stats": stats})
}

// ---------- Posts ----------

func (h *AdminHandler) Posts(c *fiber.Ctx) error {
	posts, err := h.Content.Posts(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.posts.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load posts"})
	}
	return render(c, "admin_posts", fiber.Map{"Posts": posts})
}

// SavePost creates or updates depending on whether an id was posted.
func (h *AdminHandler) SavePost(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.FormValue("slug"))
	if !ok {
		return c.Status(400).SendString("invalid slug")
	}
	p := domain.Post{
		Title:   strings.TrimSpace(c.FormValue("title")),
		Slug:    slug,
		Excerpt: c.FormValue("excerpt"),
		Content: c.FormValue("content"),
	}
	if p.Title == "" {
		return c.Status(400).SendString("missing title")
	}

	var err error
	if id, ok := validate.IntID(c.FormValue("id")); ok {
		p.ID = id
		err = h.Content.UpdatePost(c.UserContext(), p)
	} else {
		_, err = h.Content.CreatePost(c.UserContext(), p)
	}
	if err != nil {
		applog.Error(c, "admin.posts.save.fail", err, map[string]any{"slug": slug})
		return c.Status(400).SendString("could not save post")
	}
	applog.Audit(c, "admin.posts.save", map[string]any{"slug": slug})
	return c.Redirect("/admin/posts")
}

func (h *AdminHandler) DeletePost(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Content.DeletePost(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.posts.delete.fail", err, map[string]any{"post": id})
		return c.Status(400).SendString("could not delete post")
	}
	applog.Audit(c, "admin.posts.delete", map[string]any{"post": id})
	return c.Redirect("/admin/posts")
}

// ---------- Blog categories ----------

func (h *AdminHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Content.BlogCategories(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.categories.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	return render(c, "admin_categories", fiber.Map{"Categories": cats})
}

// SaveCategory creates a category; the slug is derived from the name.
func (h *AdminHandler) SaveCategory(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	slug := validate.Slugify(name)
	if name == "" || slug == "" {
		return c.Status(400).SendString("missing name")
	}
	cat := domain.Category{Name: name, Slug: slug}
	if _, err := h.Content.CreateCategory(c.UserContext(), cat); err != nil {
		applog.Error(c, "admin.categories.save.fail", err, map[string]any{"slug": slug})
		return c.Status(400).SendString("could not save category")
	}
	applog.Audit(c, "admin.categories.save", map[string]any{"slug": slug})
	return c.Redirect("/admin/categories")
}

func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Content.DeleteCategory(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.categories.delete.fail", err, map[string]any{"category": id})
		return c.Status(400).SendString("could not delete category")
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"category": id})
	return c.Redirect("/admin/categories")
}

// ---------- Readlists ----------

func (h *AdminHandler) Readlists(c *fiber.Ctx) error {
	lists, err := h.Content.Readlists(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.readlists.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load reading lists"})
	}
	return render(c, "admin_readlists", fiber.Map{"Readlists": lists})
}

func (h *AdminHandler) SaveReadlist(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	slug := validate.Slugify(title)
	if title == "" || slug == "" {
		return c.Status(400).SendString("missing title")
	}
	r := domain.Readlist{
		Title:       title,
		Slug:        slug,
		Description: c.FormValue("description"),
	}

	var err error
	if id, ok := validate.IntID(c.FormValue("id")); ok {
		r.ID = id
		err = h.Content.UpdateReadlist(c.UserContext(), r)
	} else {
		_, err = h.Content.CreateReadlist(c.UserContext(), r)
	}
	if err != nil {
		applog.Error(c, "admin.readlists.save.fail", err, map[string]any{"slug": slug})
		return c.Status(400).SendString("could not save reading list")
	}
	applog.Audit(c, "admin.readlists.save", map[string]any{"slug": slug})
	return c.Redirect("/admin/readlists")
}

func (h *AdminHandler) DeleteReadlist(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Content.DeleteReadlist(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.readlists.delete.fail", err, map[string]any{"readlist": id})
		return c.Status(400).SendString("could not delete reading list")
	}
	applog.Audit(c, "admin.readlists.delete", map[string]any{"readlist": id})
	return c.Redirect("/admin/readlists")
}

// ManageReadlist shows one list's membership next to the full post catalog.
func (h *AdminHandler) ManageReadlist(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Reading list not found"})
	}
	list, err := h.Content.AdminReadlist(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "admin.readlists.load.fail", err, map[string]any{"readlist": id})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Reading list not found"})
	}
	posts, err := h.Content.Posts(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.readlists.posts.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load posts"})
	}
	// Offer only posts not already in the list.
	in := make(map[int]bool, len(list.Posts))
	for _, p := range list.Posts {
		in[p.ID] = true
	}
	available := posts[:0:0]
	for _, p := range posts {
		if !in[p.ID] {
			available = append(available, p)
		}
	}
	return render(c, "admin_readlist", fiber.Map{"Readlist": list, "Available": available})
}

// SaveReadlistPosts replaces the membership with the posted id list, first to
// last; the manage page submits the whole ordering on every change.
func (h *AdminHandler) SaveReadlistPosts(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	var posts []domain.Post
	if raw := strings.TrimSpace(c.FormValue("posts")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			pid, ok := validate.IntID(part)
			if !ok {
				return c.Status(400).SendString("invalid post list")
			}
			posts = append(posts, domain.Post{ID: pid})
		}
	}
	if err := h.Content.UpdateReadlistPosts(c.UserContext(), id, posts); err != nil {
		applog.Error(c, "admin.readlists.posts.save.fail", err, map[string]any{"readlist": id})
		return c.Status(400).SendString("could not update reading list")
	}
	applog.Audit(c, "admin.readlists.posts.save", map[string]any{"readlist": id, "count": len(posts)})
	return c.Redirect("/admin/readlists/" + c.Params("id"))
}

// ---------- About page ----------

func (h *AdminHandler) AboutEdit(c *fiber.Ctx) error {
	about, err := h.Content.About(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.about.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the about page"})
	}
	return render(c, "admin_about", fiber.Map{"About": about})
}

func (h *AdminHandler) SaveAbout(c *fiber.Ctx) error {
	a := domain.About{
		Headline: strings.TrimSpace(c.FormValue("headline")),
		Body:     c.FormValue("body"),
		PhotoURL: c.FormValue("photoUrl"),
	}
	if a.Headline == "" {
		return c.Status(400).SendString("missing headline")
	}
	if err := h.Content.SaveAbout(c.UserContext(), a); err != nil {
		applog.Error(c, "admin.about.save.fail", err, nil)
		return c.Status(400).SendString("could not save the about page")
	}
	applog.Audit(c, "admin.about.save", nil)
	return c.Redirect("/admin/about")
}

// ---------- Products ----------

func (h *AdminHandler) Products(c *fiber.Ctx) error {
	data, err := h.Content.Marketplace(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "admin_products", fiber.Map{"Products": data.Products, "Categories": data.Categories})
}

func (h *AdminHandler) SaveProduct(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	price, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("price")))
	if name == "" || err != nil || price.IsNegative() {
		return c.Status(400).SendString("invalid name or price")
	}
	p := domain.Product{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		ImageURL:    c.FormValue("imageUrl"),
		FileURL:     c.FormValue("fileUrl"),
	}

	if id, ok := validate.IntID(c.FormValue("id")); ok {
		p.ID = id
		err = h.Content.UpdateProduct(c.UserContext(), p)
	} else {
		_, err = h.Content.CreateProduct(c.UserContext(), p)
	}
	if err != nil {
		applog.Error(c, "admin.products.save.fail", err, map[string]any{"name": name})
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "admin.products.save", map[string]any{"name": name})
	return c.Redirect("/admin/products")
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Content.DeleteProduct(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product": id})
	return c.Redirect("/admin/products")
}

// ---------- Orders ----------

func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	orders, err := h.Content.Orders(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "admin_orders", fiber.Map{"Orders": orders})
}

func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	status := c.FormValue("status")
	if !ok || status == "" {
		return c.Status(400).SendString("missing id or status")
	}
	if err := h.Content.UpdateOrderStatus(c.UserContext(), id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order": id, "status": status})
	return c.Redirect("/admin/orders")
}

// ---------- Bookings ----------

func (h *AdminHandler) Bookings(c *fiber.Ctx) error {
	bookings, err := h.Content.Bookings(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.bookings.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load bookings"})
	}
	return render(c, "admin_bookings", fiber.Map{"Bookings": bookings})
}

func (h *AdminHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	status := c.FormValue("status")
	if !ok || (status != "CONFIRMED" && status != "DECLINED") {
		return c.Status(400).SendString("missing id or status")
	}
	if err := h.Content.UpdateBookingStatus(c.UserContext(), id, status); err != nil {
		applog.Error(c, "admin.bookings.update.fail", err, map[string]any{"booking": id})
		return c.Status(400).SendString("could not update booking")
	}
	applog.Audit(c, "admin.bookings.update", map[string]any{"booking": id, "status": status})
	return c.Redirect("/admin/bookings")
}

// ---------- Projects ----------

func (h *AdminHandler) Projects(c *fiber.Ctx) error {
	projects, err := h.Content.Projects(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.projects.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load projects"})
	}
	return render(c, "admin_projects", fiber.Map{"Projects": projects})
}

func (h *AdminHandler) SaveProject(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Status(400).SendString("missing title")
	}
	p := domain.Project{
		Title:       title,
		Description: c.FormValue("description"),
		ImageURL:    c.FormValue("imageUrl"),
		LiveURL:     c.FormValue("liveUrl"),
		RepoURL:     c.FormValue("repoUrl"),
	}

	var err error
	if id, ok := validate.IntID(c.FormValue("id")); ok {
		p.ID = id
		err = h.Content.UpdateProject(c.UserContext(), p)
	} else {
		_, err = h.Content.CreateProject(c.UserContext(), p)
	}
	if err != nil {
		applog.Error(c, "admin.projects.save.fail", err, map[string]any{"title": title})
		return c.Status(400).SendString("could not save project")
	}
	applog.Audit(c, "admin.projects.save", map[string]any{"title": title})
	return c.Redirect("/admin/projects")
}

func (h *AdminHandler) DeleteProject(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Content.DeleteProject(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.projects.delete.fail", err, map[string]any{"project": id})
		return c.Status(400).SendString("could not delete project")
	}
	applog.Audit(c, "admin.projects.delete", map[string]any{"project": id})
	return c.Redirect("/admin/projects")
}

// ReorderProjects persists the display order posted as a comma-separated id
// list (the drag handle on the manager page submits it).
func (h *AdminHandler) ReorderProjects(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.FormValue("order"))
	if raw == "" {
		return c.Status(400).SendString("missing order")
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, ok := validate.IntID(part)
		if !ok {
			return c.Status(400).SendString("invalid order list")
		}
		ids = append(ids, id)
	}
	if err := h.Content.ReorderProjects(c.UserContext(), ids); err != nil {
		applog.Error(c, "admin.projects.reorder.fail", err, nil)
		return c.Status(400).SendString("could not reorder projects")
	}
	applog.Audit(c, "admin.projects.reorder", map[string]any{"count": len(ids)})
	return c.Redirect("/admin/projects")
}
