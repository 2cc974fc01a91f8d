// Package cart holds the session-scoped shopping cart: a durable slot of
// entry snapshots plus the in-memory manager that mutates it. Entries are a
// set keyed by product id; a product is either in the cart or not.
package cart

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// Entry is a point-in-time copy of the product the visitor clicked on. It is
// never reconciled with the live catalog; the order API re-checks at
// submission time.
type Entry struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Category  string          `json:"category,omitempty"`
	Quantity  int             `json:"quantity"`
}

// Store is the durable key-value slot behind one visitor's cart.
//
// Load treats any persisted value that does not parse as an entry list the
// same as no value at all: the slot is cleared and an empty list is returned.
// Persisted state is untrusted input; corruption never reaches the caller.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
	Clear() error
}

// SQLStore keeps the serialized entry list in a single row of the cart_slots
// table, keyed by the visitor's session id.
type SQLStore struct {
	db  *sqlx.DB
	sid string
}

func NewSQLStore(db *sqlx.DB, sessionID string) *SQLStore {
	return &SQLStore{db: db, sid: sessionID}
}

func (s *SQLStore) Load() ([]Entry, error) {
	var payload string
	err := s.db.Get(&payload, `SELECT payload FROM cart_slots WHERE session_id = ?`, s.sid)
	if err == sql.ErrNoRows {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, err
	}
	entries, ok := decodeEntries(payload)
	if !ok {
		// Corrupted slot: drop it so the bad value cannot resurface.
		if err := s.Clear(); err != nil {
			return nil, err
		}
		return []Entry{}, nil
	}
	return entries, nil
}

func (s *SQLStore) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO cart_slots(session_id, payload, updated_at)
		VALUES(?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, s.sid, string(b), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *SQLStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM cart_slots WHERE session_id = ?`, s.sid)
	return err
}

// decodeEntries parses a persisted payload, rejecting anything that is not a
// JSON array of well-formed entries (an object, a bare string, negative
// prices, missing ids).
func decodeEntries(payload string) ([]Entry, bool) {
	var entries []Entry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, false
	}
	for _, e := range entries {
		if e.ProductID <= 0 || e.Price.IsNegative() {
			return nil, false
		}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, true
}

// MemoryStore is an in-process Store used by tests and previews. The raw
// payload is kept as a string so corruption scenarios can be injected.
type MemoryStore struct {
	payload string
	present bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Seed places a raw payload in the slot, bypassing Save's serialization.
func (m *MemoryStore) Seed(raw string) {
	m.payload = raw
	m.present = true
}

func (m *MemoryStore) Load() ([]Entry, error) {
	if !m.present {
		return []Entry{}, nil
	}
	entries, ok := decodeEntries(m.payload)
	if !ok {
		if err := m.Clear(); err != nil {
			return nil, err
		}
		return []Entry{}, nil
	}
	return entries, nil
}

func (m *MemoryStore) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	m.payload = string(b)
	m.present = true
	return nil
}

func (m *MemoryStore) Clear() error {
	m.payload = ""
	m.present = false
	return nil
}
