package domain

import "github.com/shopspring/decimal"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	FileURL     string          `json:"file_url,omitempty"`
	Category    *Category       `json:"category,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type Post struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	CoverURL    string    `json:"cover_url"`
	Category    *Category `json:"category,omitempty"`
	PublishedAt string    `json:"published_at"`
}

// Readlist is a curated, ordered collection of posts.
type Readlist struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Posts       []Post `json:"posts,omitempty"`
}

type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	LiveURL     string   `json:"live_url"`
	RepoURL     string   `json:"repo_url"`
	Tags        []string `json:"tags,omitempty"`
	SortIndex   int      `json:"sort_index"`
}

type About struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
	PhotoURL string `json:"photo_url"`
}

type AvailabilitySlot struct {
	ID    int    `json:"id"`
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
	Open  bool   `json:"open"`
}

type Booking struct {
	ID      int    `json:"id"`
	SlotID  int    `json:"slot_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Topic   string `json:"topic"`
	Message string `json:"message"`
	Status  string `json:"status"` // PENDING | CONFIRMED | DECLINED
}

type OrderSummary struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type DashboardStats struct {
	Posts    int `json:"posts"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
	Bookings int `json:"bookings"`
}
