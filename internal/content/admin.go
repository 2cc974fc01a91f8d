package content

import (
	"context"
	"fmt"
	"net/http"

	"folio/internal/domain"
)

// Admin writes go through the same API under the admin prefix. Authentication
// is the bearer token set with WithToken; the API enforces it.

func (c *Client) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var out domain.DashboardStats
	err := c.get(ctx, "/api/marketplace/admin/stats", &out)
	return out, err
}

// ---------- Posts ----------

func (c *Client) CreatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	var out domain.Post
	err := c.do(ctx, http.MethodPost, "/api/blog/admin/posts", p, &out)
	return out, err
}

func (c *Client) UpdatePost(ctx context.Context, p domain.Post) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/blog/admin/posts/%d", p.ID), p, nil)
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/blog/admin/posts/%d", id), nil, nil)
}

// ---------- Blog categories ----------

func (c *Client) CreateCategory(ctx context.Context, cat domain.Category) (domain.Category, error) {
	var out domain.Category
	err := c.do(ctx, http.MethodPost, "/api/blog/admin/categories", cat, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/blog/admin/categories/%d", id), nil, nil)
}

// ---------- Readlists ----------

// AdminReadlist fetches a list with its full post membership for editing.
func (c *Client) AdminReadlist(ctx context.Context, id int) (domain.Readlist, error) {
	var out domain.Readlist
	err := c.get(ctx, fmt.Sprintf("/api/blog/admin/readlists/%d", id), &out)
	return out, err
}

func (c *Client) CreateReadlist(ctx context.Context, r domain.Readlist) (domain.Readlist, error) {
	var out domain.Readlist
	err := c.do(ctx, http.MethodPost, "/api/blog/admin/readlists", r, &out)
	return out, err
}

func (c *Client) UpdateReadlist(ctx context.Context, r domain.Readlist) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/blog/admin/readlists/%d", r.ID), r, nil)
}

func (c *Client) DeleteReadlist(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/blog/admin/readlists/%d", id), nil, nil)
}

// UpdateReadlistPosts replaces the list's membership with the given posts,
// first to last. Add, remove and reorder are all this one call.
func (c *Client) UpdateReadlistPosts(ctx context.Context, id int, posts []domain.Post) error {
	in := map[string][]domain.Post{"posts": posts}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/blog/admin/readlists/%d", id), in, nil)
}

// ---------- About ----------

func (c *Client) SaveAbout(ctx context.Context, a domain.About) error {
	return c.do(ctx, http.MethodPost, "/api/about/", a, nil)
}

// ---------- Products ----------

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodPost, "/api/marketplace/admin/products", p, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, p domain.Product) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/marketplace/admin/products/%d", p.ID), p, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/marketplace/admin/products/%d", id), nil, nil)
}

// ---------- Orders ----------

func (c *Client) Orders(ctx context.Context) ([]domain.OrderSummary, error) {
	var out []domain.OrderSummary
	err := c.get(ctx, "/api/marketplace/admin/orders", &out)
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	in := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/marketplace/admin/orders/%d", id), in, nil)
}

// ---------- Bookings ----------

func (c *Client) Bookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := c.get(ctx, "/api/booking/admin/bookings", &out)
	return out, err
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status string) error {
	in := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/booking/admin/bookings/%d", id), in, nil)
}

// ---------- Projects ----------

func (c *Client) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	var out domain.Project
	err := c.do(ctx, http.MethodPost, "/api/portfolio/projects", p, &out)
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, p domain.Project) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/portfolio/projects/%d", p.ID), p, nil)
}

func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/portfolio/projects/%d", id), nil, nil)
}

// ReorderProjects persists a full display ordering, ids first to last.
func (c *Client) ReorderProjects(ctx context.Context, ids []int) error {
	in := map[string][]int{"order": ids}
	return c.do(ctx, http.MethodPut, "/api/portfolio/projects/reorder", in, nil)
}
