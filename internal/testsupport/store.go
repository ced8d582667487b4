package testsupport

import (
	"context"
	"testing"

	"github.com/danchopon/FeetForTarantino/internal/config"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// MustOpenStore opens a watchlist.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *watchlist.Store {
	t.Helper()

	store, err := watchlist.Open(cfg)
	if err != nil {
		t.Fatalf("watchlist.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddMovie adds a movie for tests using the provided store.
func AddMovie(t testing.TB, store *watchlist.Store, groupID int64, title, addedBy string) *watchlist.Item {
	t.Helper()

	item, err := store.Add(context.Background(), groupID, title, addedBy)
	if err != nil {
		t.Fatalf("store.Add(%q): %v", title, err)
	}
	return item
}
