package watchlist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danchopon/FeetForTarantino/internal/testsupport"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

func TestAddAndDuplicateTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	item, err := store.Add(ctx, 1, "Inception", "alice")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.Status != watchlist.StatusToWatch {
		t.Fatalf("new movie status = %s, want %s", item.Status, watchlist.StatusToWatch)
	}
	if item.AddedBy != "alice" {
		t.Fatalf("added_by = %q, want alice", item.AddedBy)
	}

	_, err = store.Add(ctx, 1, "INCEPTION", "bob")
	var dup *watchlist.DuplicateTitleError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateTitleError, got %v", err)
	}
	if dup.Existing.ID != item.ID {
		t.Fatalf("conflict reported item %d, want %d", dup.Existing.ID, item.ID)
	}
	if dup.Existing.Status != watchlist.StatusToWatch {
		t.Fatalf("conflict status = %s, want %s", dup.Existing.Status, watchlist.StatusToWatch)
	}

	items, err := store.ListByFilter(ctx, 1, watchlist.FilterAll)
	if err != nil {
		t.Fatalf("ListByFilter: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one stored movie, got %d", len(items))
	}
}

func TestDuplicateAcrossStatuses(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	item := testsupport.AddMovie(t, store, 1, "Heat", "alice")
	if _, err := store.MarkWatched(ctx, 1, item.ID, "bob"); err != nil {
		t.Fatalf("MarkWatched: %v", err)
	}

	_, err := store.Add(ctx, 1, "heat", "carol")
	var dup *watchlist.DuplicateTitleError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateTitleError for watched title, got %v", err)
	}
	if dup.Existing.Status != watchlist.StatusWatched {
		t.Fatalf("conflict status = %s, want %s", dup.Existing.Status, watchlist.StatusWatched)
	}
}

func TestGroupsAreIsolated(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.AddMovie(t, store, 1, "Alien", "alice")
	if _, err := store.Add(ctx, 2, "Alien", "bob"); err != nil {
		t.Fatalf("same title in another group should succeed: %v", err)
	}
}

func TestListOrderAndFilters(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	dune := testsupport.AddMovie(t, store, 1, "Dune", "alice")
	testsupport.AddMovie(t, store, 1, "Arrival", "alice")
	testsupport.AddMovie(t, store, 1, "Her", "bob")

	if _, err := store.MarkWatched(ctx, 1, dune.ID, "bob"); err != nil {
		t.Fatalf("MarkWatched: %v", err)
	}

	toWatch, err := store.ListByFilter(ctx, 1, watchlist.FilterToWatch)
	if err != nil {
		t.Fatalf("ListByFilter to-watch: %v", err)
	}
	if got := titles(toWatch); got[0] != "Arrival" || got[1] != "Her" || len(got) != 2 {
		t.Fatalf("to-watch listing = %v", got)
	}

	all, err := store.ListByFilter(ctx, 1, watchlist.FilterAll)
	if err != nil {
		t.Fatalf("ListByFilter all: %v", err)
	}
	if got := titles(all); len(got) != 3 || got[0] != "Arrival" || got[1] != "Her" || got[2] != "Dune" {
		t.Fatalf("all listing should place to-watch first, got %v", got)
	}
}

func TestWatchedTransitionRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	item := testsupport.AddMovie(t, store, 1, "Tenet", "alice")

	previous, err := store.MarkWatched(ctx, 1, item.ID, "bob")
	if err != nil {
		t.Fatalf("MarkWatched: %v", err)
	}
	if previous.Title != "Tenet" {
		t.Fatalf("previous title = %q", previous.Title)
	}

	watched, err := store.GetByID(ctx, 1, item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !watched.Watched() || watched.WatchedBy != "bob" || watched.WatchedAt == nil {
		t.Fatalf("watched fields not set: %+v", watched)
	}

	if _, err := store.MarkWatched(ctx, 1, item.ID, "carol"); !errors.Is(err, watchlist.ErrAlreadyWatched) {
		t.Fatalf("second MarkWatched = %v, want ErrAlreadyWatched", err)
	}

	if _, err := store.MarkUnwatched(ctx, 1, item.ID); err != nil {
		t.Fatalf("MarkUnwatched: %v", err)
	}
	reverted, err := store.GetByID(ctx, 1, item.ID)
	if err != nil {
		t.Fatalf("GetByID after unwatch: %v", err)
	}
	if reverted.Watched() || reverted.WatchedBy != "" || reverted.WatchedAt != nil {
		t.Fatalf("watcher fields should be cleared: %+v", reverted)
	}

	if _, err := store.MarkUnwatched(ctx, 1, item.ID); !errors.Is(err, watchlist.ErrNotWatched) {
		t.Fatalf("MarkUnwatched on pending = %v, want ErrNotWatched", err)
	}
}

func TestRemoveFromEitherStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	pending := testsupport.AddMovie(t, store, 1, "Sicario", "alice")
	watched := testsupport.AddMovie(t, store, 1, "Blade Runner", "alice")
	if _, err := store.MarkWatched(ctx, 1, watched.ID, "alice"); err != nil {
		t.Fatalf("MarkWatched: %v", err)
	}

	if err := store.Remove(ctx, 1, pending.ID); err != nil {
		t.Fatalf("Remove pending: %v", err)
	}
	if err := store.Remove(ctx, 1, watched.ID); err != nil {
		t.Fatalf("Remove watched: %v", err)
	}
	if err := store.Remove(ctx, 1, pending.ID); !errors.Is(err, watchlist.ErrNotFound) {
		t.Fatalf("Remove missing = %v, want ErrNotFound", err)
	}
}

func TestSetEnrichment(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	item := testsupport.AddMovie(t, store, 1, "Akira", "alice")
	err := store.SetEnrichment(ctx, 1, item.ID, watchlist.Enrichment{
		TMDBID:     149,
		Year:       1988,
		Rating:     8.0,
		PosterPath: "/akira.jpg",
		Genres:     []string{"Animation", "Science Fiction"},
	})
	if err != nil {
		t.Fatalf("SetEnrichment: %v", err)
	}

	enriched, err := store.GetByID(ctx, 1, item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if enriched.TMDBID == nil || *enriched.TMDBID != 149 {
		t.Fatalf("tmdb id not stored: %+v", enriched)
	}
	if enriched.Year == nil || *enriched.Year != 1988 {
		t.Fatalf("year not stored: %+v", enriched)
	}
	if len(enriched.Genres) != 2 || enriched.Genres[0] != "Animation" {
		t.Fatalf("genres not stored: %v", enriched.Genres)
	}

	if err := store.SetEnrichment(ctx, 1, 9999, watchlist.Enrichment{TMDBID: 1}); !errors.Is(err, watchlist.ErrNotFound) {
		t.Fatalf("SetEnrichment missing = %v, want ErrNotFound", err)
	}
}

func TestCounts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.AddMovie(t, store, 1, "Dune", "alice")
	her := testsupport.AddMovie(t, store, 1, "Her", "alice")
	if _, err := store.MarkWatched(ctx, 1, her.ID, "bob"); err != nil {
		t.Fatalf("MarkWatched: %v", err)
	}

	toWatch, watched, err := store.Counts(ctx, 1)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if toWatch != 1 || watched != 1 {
		t.Fatalf("Counts = (%d, %d), want (1, 1)", toWatch, watched)
	}
}

func TestBasketIdempotentAdd(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	added, err := store.AddBasketEntry(ctx, 1, 10, "alice", 3)
	if err != nil {
		t.Fatalf("AddBasketEntry: %v", err)
	}
	if !added {
		t.Fatal("first insert should report added")
	}

	added, err = store.AddBasketEntry(ctx, 1, 10, "alice", 3)
	if err != nil {
		t.Fatalf("AddBasketEntry repeat: %v", err)
	}
	if added {
		t.Fatal("repeat insert should report already present")
	}

	ordinals, err := store.ListBasketForUser(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListBasketForUser: %v", err)
	}
	if len(ordinals) != 1 || ordinals[0] != 3 {
		t.Fatalf("user basket = %v, want [3]", ordinals)
	}
}

func TestBasketAggregation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, ordinal := range []int{1, 5} {
		if _, err := store.AddBasketEntry(ctx, 1, 10, "alice", ordinal); err != nil {
			t.Fatalf("AddBasketEntry alice %d: %v", ordinal, err)
		}
	}
	for _, ordinal := range []int{5, 7} {
		if _, err := store.AddBasketEntry(ctx, 1, 20, "bob", ordinal); err != nil {
			t.Fatalf("AddBasketEntry bob %d: %v", ordinal, err)
		}
	}

	distinct, err := store.DistinctBasketOrdinals(ctx, 1)
	if err != nil {
		t.Fatalf("DistinctBasketOrdinals: %v", err)
	}
	if len(distinct) != 3 || distinct[0] != 1 || distinct[1] != 5 || distinct[2] != 7 {
		t.Fatalf("distinct ordinals = %v, want [1 5 7]", distinct)
	}

	entries, err := store.ListBasketGroup(ctx, 1)
	if err != nil {
		t.Fatalf("ListBasketGroup: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("group basket has %d entries, want 4", len(entries))
	}
	if entries[0].UserName != "alice" || entries[0].Ordinal != 1 {
		t.Fatalf("first entry = %+v, want alice/1", entries[0])
	}
	if entries[3].UserName != "bob" || entries[3].Ordinal != 7 {
		t.Fatalf("last entry = %+v, want bob/7", entries[3])
	}
}

func TestBasketRemovalAndClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, ordinal := range []int{1, 2, 3} {
		if _, err := store.AddBasketEntry(ctx, 1, 10, "alice", ordinal); err != nil {
			t.Fatalf("AddBasketEntry: %v", err)
		}
	}
	if _, err := store.AddBasketEntry(ctx, 1, 20, "bob", 2); err != nil {
		t.Fatalf("AddBasketEntry bob: %v", err)
	}

	removed, err := store.RemoveBasketEntries(ctx, 1, 10, []int{2, 9})
	if err != nil {
		t.Fatalf("RemoveBasketEntries: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	removed, err = store.ClearBasketForUser(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ClearBasketForUser: %v", err)
	}
	if removed != 2 {
		t.Fatalf("cleared = %d, want 2", removed)
	}

	removed, err = store.ClearBasketGroup(ctx, 1)
	if err != nil {
		t.Fatalf("ClearBasketGroup: %v", err)
	}
	if removed != 1 {
		t.Fatalf("group clear = %d, want 1 (bob)", removed)
	}
}

func TestFoldTitle(t *testing.T) {
	if watchlist.FoldTitle("  Das Boot ") != watchlist.FoldTitle("das boot") {
		t.Fatal("fold should trim and case-fold")
	}
	if watchlist.FoldTitle("İstanbul") == "" {
		t.Fatal("fold should handle non-ASCII input")
	}
}

func titles(items []*watchlist.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}
