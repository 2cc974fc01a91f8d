// Package inquiry submits non-binding order inquiries to the marketplace
// order API. Submission is fire-once: no retries, no queueing, and never a
// cart mutation.
package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"folio/internal/cart"
	"folio/internal/domain"
	"folio/internal/validate"
)

var (
	ErrMissingName = errors.New("name is required")
	ErrBadEmail    = errors.New("a valid email is required")
	ErrBadPhone    = errors.New("phone number is not valid")
	ErrEmptyTarget = errors.New("nothing to order")

	// ErrSubmit is the generic transport/remote failure surfaced to the user.
	ErrSubmit = errors.New("failed to submit order inquiry")
)

type Contact struct {
	Name  string
	Email string
	Phone string // optional
}

// Target is what the inquiry is about: exactly one product, or the whole
// cart. A zero Target is invalid.
type Target struct {
	productID int
	entries   []cart.Entry
	total     decimal.Decimal
}

func ProductTarget(p domain.Product) Target {
	return Target{productID: p.ID, total: p.Price}
}

func CartTarget(entries []cart.Entry, total decimal.Decimal) Target {
	return Target{entries: entries, total: total}
}

type Gateway struct {
	base   string
	client *http.Client
}

func NewGateway(base string, client *http.Client) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{base: base, client: client}
}

type cartPayload struct {
	Items []cart.Entry    `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type payload struct {
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	ProductID int          `json:"product_id,omitempty"`
	Cart      *cartPayload `json:"cart,omitempty"`
}

// Submit validates locally, sends one inquiry, and returns the server's
// confirmation message verbatim. Any transport or remote failure comes back
// as ErrSubmit; the caller's cart is untouched either way.
func (g *Gateway) Submit(ctx context.Context, contact Contact, target Target) (string, error) {
	name, ok := validate.Name(contact.Name)
	if !ok {
		return "", ErrMissingName
	}
	email, ok := validate.Email(contact.Email)
	if !ok {
		return "", ErrBadEmail
	}
	phone, ok := validate.Phone(contact.Phone)
	if !ok {
		return "", ErrBadPhone
	}
	if target.productID <= 0 && len(target.entries) == 0 {
		return "", ErrEmptyTarget
	}
	if !target.total.IsPositive() {
		return "", ErrEmptyTarget
	}

	p := payload{Name: name, Email: email, Phone: phone}
	if target.productID > 0 {
		p.ProductID = target.productID
	} else {
		p.Cart = &cartPayload{Items: target.entries, Total: target.total}
	}

	body, err := json.Marshal(p)
	if err != nil {
		return "", ErrSubmit
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.base+"/api/marketplace/orders", bytes.NewReader(body))
	if err != nil {
		return "", ErrSubmit
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", ErrSubmit
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", ErrSubmit
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Message == "" {
		return "", ErrSubmit
	}
	return out.Message, nil
}

// IsValidation reports whether err is a local input error, caught before any
// request was sent.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingName) || errors.Is(err, ErrBadEmail) ||
		errors.Is(err, ErrBadPhone) || errors.Is(err, ErrEmptyTarget)
}
