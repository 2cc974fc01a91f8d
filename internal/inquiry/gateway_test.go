package inquiry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"folio/internal/cart"
	"folio/internal/domain"
	"folio/internal/inquiry"
)

func product(id int, price string) domain.Product {
	return domain.Product{ID: id, Name: "Thing", Price: decimal.RequireFromString(price)}
}

func TestSubmitSingleProduct(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/marketplace/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Thanks! We will be in touch."})
	}))
	defer srv.Close()

	g := inquiry.NewGateway(srv.URL, srv.Client())
	msg, err := g.Submit(context.Background(), inquiry.Contact{Name: "Ada", Email: "ada@example.com"},
		inquiry.ProductTarget(product(7, "49.00")))
	require.NoError(t, err)
	// Confirmation text is the server's, verbatim.
	require.Equal(t, "Thanks! We will be in touch.", msg)
	require.EqualValues(t, 7, got["product_id"])
	require.NotContains(t, got, "cart")
}

func TestSubmitCartSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p struct {
			Cart *struct {
				Items []cart.Entry    `json:"items"`
				Total decimal.Decimal `json:"total"`
			} `json:"cart"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		require.NotNil(t, p.Cart)
		require.Len(t, p.Cart.Items, 2)
		require.True(t, p.Cart.Total.Equal(decimal.RequireFromString("24.99")))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	entries := []cart.Entry{
		{ProductID: 1, Name: "Theme", Price: decimal.RequireFromString("19.99"), Quantity: 1},
		{ProductID: 2, Name: "Preset", Price: decimal.RequireFromString("5.00"), Quantity: 1},
	}
	g := inquiry.NewGateway(srv.URL, srv.Client())
	_, err := g.Submit(context.Background(), inquiry.Contact{Name: "Ada", Email: "ada@example.com", Phone: "+1 301 555 0100"},
		inquiry.CartTarget(entries, decimal.RequireFromString("24.99")))
	require.NoError(t, err)
}

func TestValidationFailsBeforeTransport(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	g := inquiry.NewGateway(srv.URL, srv.Client())

	_, err := g.Submit(context.Background(), inquiry.Contact{Name: "", Email: "a@b.co"}, inquiry.ProductTarget(product(1, "5.00")))
	require.ErrorIs(t, err, inquiry.ErrMissingName)

	_, err = g.Submit(context.Background(), inquiry.Contact{Name: "Ada", Email: "not-an-email"}, inquiry.ProductTarget(product(1, "5.00")))
	require.ErrorIs(t, err, inquiry.ErrBadEmail)

	_, err = g.Submit(context.Background(), inquiry.Contact{Name: "Ada", Email: "a@b.co"}, inquiry.CartTarget(nil, decimal.Zero))
	require.ErrorIs(t, err, inquiry.ErrEmptyTarget)

	require.True(t, inquiry.IsValidation(err))
	require.EqualValues(t, 0, calls.Load(), "validation failures must not reach the server")
}

func TestRemoteErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "product no longer exists"})
	}))
	defer srv.Close()

	g := inquiry.NewGateway(srv.URL, srv.Client())
	_, err := g.Submit(context.Background(), inquiry.Contact{Name: "Ada", Email: "a@b.co"}, inquiry.ProductTarget(product(1, "5.00")))
	require.ErrorIs(t, err, inquiry.ErrSubmit)
	require.False(t, inquiry.IsValidation(err))
}

// A failed submission is not transactional with the cart: the entries the
// snapshot came from are still there afterward.
func TestFailedSubmissionLeavesCartIntact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	srv.Close() // closed server: simulated network error

	store := cart.NewMemoryStore()
	m := cart.NewManager(store)
	require.NoError(t, m.Add(product(1, "10.00")))
	require.NoError(t, m.Add(product(2, "15.00")))

	entries, err := m.Entries()
	require.NoError(t, err)
	total, err := m.Total()
	require.NoError(t, err)

	g := inquiry.NewGateway(srv.URL, nil)
	_, err = g.Submit(context.Background(), inquiry.Contact{Name: "Ada", Email: "a@b.co"},
		inquiry.CartTarget(entries, total))
	require.ErrorIs(t, err, inquiry.ErrSubmit)

	n, err := m.Count()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
