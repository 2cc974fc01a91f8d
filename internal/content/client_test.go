package content_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
	"folio/internal/domain"
)

func TestMarketplaceDecodesProductsAndCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/marketplace/products", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"products":[{"id":1,"name":"Icon Pack","price":12.5,"image_url":"/m/1.png","category":{"id":3,"name":"Design","slug":"design"}}],
			"categories":[{"id":3,"name":"Design","slug":"design"}]
		}`))
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client())
	data, err := c.Marketplace(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Products, 1)
	require.True(t, data.Products[0].Price.Equal(decimal.RequireFromString("12.5")))
	require.Equal(t, "design", data.Categories[0].Slug)
}

func TestProductNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client())
	_, err := c.Product(context.Background(), 99)
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestErrorBodySurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "slug already taken"})
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client()).WithToken("tok")
	_, err := c.CreatePost(context.Background(), domain.Post{Title: "x", Slug: "x"})
	require.ErrorContains(t, err, "slug already taken")
}

func TestAdminCallsCarryBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"posts":2,"products":5,"orders":1,"bookings":0}`))
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client()).WithToken("secret-token")
	stats, err := c.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer secret-token", auth)
	require.Equal(t, 5, stats.Products)
}

func TestReorderProjectsSendsOrderedIDs(t *testing.T) {
	var body map[string][]int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := content.NewClient(srv.URL, srv.Client()).WithToken("tok")
	require.NoError(t, c.ReorderProjects(context.Background(), []int{3, 1, 2}))
	require.Equal(t, []int{3, 1, 2}, body["order"])
}
