package cart

import (
	"github.com/shopspring/decimal"

	"folio/internal/domain"
)

// Manager is the in-memory view of one visitor's cart, loaded lazily from its
// Store on first use and written back after every mutation.
//
// A Manager is confined to the request that created it. Two managers over the
// same store slot (two tabs of the same browser) do not see each other's
// writes until they reload; the last save wins.
type Manager struct {
	store   Store
	entries []Entry
	loaded  bool
}

func NewManager(store Store) *Manager { return &Manager{store: store} }

func (m *Manager) ensure() error {
	if m.loaded {
		return nil
	}
	entries, err := m.store.Load()
	if err != nil {
		return err
	}
	m.entries = entries
	m.loaded = true
	return nil
}

// Add appends a snapshot of the product. If the product is already in the
// cart this is a no-op: the existing entry keeps its original snapshot, even
// when the given product carries a newer price or name.
func (m *Manager) Add(p domain.Product) error {
	if err := m.ensure(); err != nil {
		return err
	}
	for _, e := range m.entries {
		if e.ProductID == p.ID {
			return nil
		}
	}
	cat := ""
	if p.Category != nil {
		cat = p.Category.Name
	}
	m.entries = append(m.entries, Entry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Category:  cat,
		Quantity:  1,
	})
	return m.store.Save(m.entries)
}

// Remove drops the entry with the given product id, keeping the order of the
// rest. Removing an absent id is a successful no-op.
func (m *Manager) Remove(productID int) error {
	if err := m.ensure(); err != nil {
		return err
	}
	for i, e := range m.entries {
		if e.ProductID == productID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return m.store.Save(m.entries)
		}
	}
	return nil
}

// Clear empties the cart and removes the persisted slot.
func (m *Manager) Clear() error {
	if err := m.ensure(); err != nil {
		return err
	}
	m.entries = []Entry{}
	return m.store.Clear()
}

// Entries returns the current entries in insertion order.
func (m *Manager) Entries() ([]Entry, error) {
	if err := m.ensure(); err != nil {
		return nil, err
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *Manager) Count() (int, error) {
	if err := m.ensure(); err != nil {
		return 0, err
	}
	return len(m.entries), nil
}

func (m *Manager) Total() (decimal.Decimal, error) {
	if err := m.ensure(); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range m.entries {
		total = total.Add(e.Price)
	}
	return total, nil
}
