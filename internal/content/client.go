// Package content is the read/write client for the external content API that
// owns posts, products, projects, bookings and orders. The API is a
// collaborator: this client translates and transports, it owns no logic.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"folio/internal/domain"
)

// ErrNotFound maps the API's 404 responses so handlers can render their own
// not-found pages instead of a generic failure.
var ErrNotFound = errors.New("content not found")

type Client struct {
	base   string
	token  string // admin bearer token, empty for public reads
	client *http.Client
}

func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: base, client: httpClient}
}

// WithToken returns a copy of the client that authenticates admin calls.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("content api: %s", e.Error)
		}
		return fmt.Errorf("content api: status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// ---------- Marketplace ----------

// MarketplaceData is the products listing plus its category index, fetched in
// one round trip the way the listing page consumes it.
type MarketplaceData struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
}

func (c *Client) Marketplace(ctx context.Context) (MarketplaceData, error) {
	var out MarketplaceData
	err := c.get(ctx, "/api/marketplace/products", &out)
	return out, err
}

func (c *Client) Product(ctx context.Context, id int) (domain.Product, error) {
	var out domain.Product
	err := c.get(ctx, fmt.Sprintf("/api/marketplace/products/%d", id), &out)
	return out, err
}

// ---------- Blog ----------

func (c *Client) Posts(ctx context.Context) ([]domain.Post, error) {
	var out []domain.Post
	err := c.get(ctx, "/api/blog/posts", &out)
	return out, err
}

func (c *Client) Post(ctx context.Context, slug string) (domain.Post, error) {
	var out domain.Post
	err := c.get(ctx, "/api/blog/posts/"+url.PathEscape(slug), &out)
	return out, err
}

func (c *Client) SearchPosts(ctx context.Context, q string) ([]domain.Post, error) {
	var out []domain.Post
	err := c.get(ctx, "/api/blog/posts?q="+url.QueryEscape(q), &out)
	return out, err
}

func (c *Client) BlogCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := c.get(ctx, "/api/blog/categories", &out)
	return out, err
}

func (c *Client) CategoryPosts(ctx context.Context, slug string) ([]domain.Post, error) {
	var out []domain.Post
	err := c.get(ctx, "/api/blog/categories/"+url.PathEscape(slug), &out)
	return out, err
}

func (c *Client) Readlists(ctx context.Context) ([]domain.Readlist, error) {
	var out []domain.Readlist
	err := c.get(ctx, "/api/blog/readlists", &out)
	return out, err
}

func (c *Client) Readlist(ctx context.Context, slug string) (domain.Readlist, error) {
	var out domain.Readlist
	err := c.get(ctx, "/api/blog/readlists/"+url.PathEscape(slug), &out)
	return out, err
}

// ---------- Portfolio & about ----------

func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	err := c.get(ctx, "/api/portfolio/projects", &out)
	return out, err
}

func (c *Client) About(ctx context.Context) (domain.About, error) {
	var out domain.About
	err := c.get(ctx, "/api/about/", &out)
	return out, err
}

// ---------- Booking ----------

func (c *Client) Availability(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	var out []domain.AvailabilitySlot
	err := c.get(ctx, "/api/booking/availability", &out)
	return out, err
}

func (c *Client) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	var out domain.Booking
	err := c.do(ctx, http.MethodPost, "/api/booking/bookings", b, &out)
	return out, err
}
