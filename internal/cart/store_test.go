package cart_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"folio/internal/cart"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE cart_slots(
	  session_id TEXT PRIMARY KEY,
	  payload    TEXT NOT NULL,
	  updated_at TEXT
	);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestSQLStoreRoundTrip(t *testing.T) {
	db := memdb(t)
	store := cart.NewSQLStore(db, "sid-1")

	entries := []cart.Entry{
		{ProductID: 1, Name: "Theme", Price: decimal.RequireFromString("19.99"), Quantity: 1},
		{ProductID: 2, Name: "Preset", Price: decimal.RequireFromString("5.00"), Quantity: 1},
	}
	require.NoError(t, store.Save(entries))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].ProductID)
	require.True(t, got[0].Price.Equal(entries[0].Price))
	require.Equal(t, "Preset", got[1].Name)
}

func TestSQLStoreAbsentIsEmpty(t *testing.T) {
	store := cart.NewSQLStore(memdb(t), "sid-none")
	got, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLStoreSaveOverwrites(t *testing.T) {
	db := memdb(t)
	store := cart.NewSQLStore(db, "sid-1")

	require.NoError(t, store.Save([]cart.Entry{{ProductID: 1, Price: decimal.New(1, 0), Quantity: 1}}))
	require.NoError(t, store.Save([]cart.Entry{{ProductID: 2, Price: decimal.New(2, 0), Quantity: 1}}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 2, got[0].ProductID)
}

func TestSQLStoreCorruptPayloadClearedOnce(t *testing.T) {
	db := memdb(t)
	_, err := db.Exec(`INSERT INTO cart_slots(session_id, payload) VALUES('sid-1', 'garbage{{')`)
	require.NoError(t, err)

	store := cart.NewSQLStore(db, "sid-1")
	got, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, got)

	// The row is gone; a second load does not re-surface the bad value.
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_slots WHERE session_id='sid-1'`))
	require.Equal(t, 0, n)

	got, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLStoreRejectsWrongShape(t *testing.T) {
	db := memdb(t)
	// An object where an array is expected counts as corruption.
	_, err := db.Exec(`INSERT INTO cart_slots(session_id, payload) VALUES('sid-1', '{"id":9}')`)
	require.NoError(t, err)

	store := cart.NewSQLStore(db, "sid-1")
	got, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLStoreSlotsAreIsolatedBySession(t *testing.T) {
	db := memdb(t)
	a := cart.NewSQLStore(db, "sid-a")
	b := cart.NewSQLStore(db, "sid-b")

	require.NoError(t, a.Save([]cart.Entry{{ProductID: 1, Price: decimal.New(1, 0), Quantity: 1}}))
	require.NoError(t, b.Clear())

	got, err := a.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
}
