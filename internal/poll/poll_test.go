package poll_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/danchopon/FeetForTarantino/internal/poll"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

func candidates(count int) []*watchlist.Item {
	items := make([]*watchlist.Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, &watchlist.Item{
			ID:    int64(i + 1),
			Title: strings.Repeat("x", i) + "Movie",
		})
	}
	return items
}

func TestComposeBounds(t *testing.T) {
	if _, err := poll.Compose("q", candidates(1)); !errors.Is(err, poll.ErrTooFewOptions) {
		t.Fatalf("1 candidate = %v, want ErrTooFewOptions", err)
	}
	if _, err := poll.Compose("q", candidates(11)); !errors.Is(err, poll.ErrTooManyOptions) {
		t.Fatalf("11 candidates = %v, want ErrTooManyOptions", err)
	}

	composed, err := poll.Compose("q", candidates(10))
	if err != nil {
		t.Fatalf("Compose(10): %v", err)
	}
	if len(composed.Options) != 10 {
		t.Fatalf("options = %d, want 10", len(composed.Options))
	}
	if composed.ID == "" {
		t.Fatal("poll should get an id")
	}
	if composed.Question != "q" {
		t.Fatalf("question = %q", composed.Question)
	}
}

func TestComposePreservesOrderAndDuplicates(t *testing.T) {
	items := []*watchlist.Item{
		{ID: 1, Title: "Dune"},
		{ID: 2, Title: "Dune"},
		{ID: 3, Title: "Her"},
	}
	composed, err := poll.Compose("q", items)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if composed.Options[0].Label != "Dune" || composed.Options[1].Label != "Dune" {
		t.Fatalf("duplicate labels should survive: %+v", composed.Options)
	}
	if composed.Options[0].ItemID == composed.Options[1].ItemID {
		t.Fatal("options must stay distinct by item id")
	}
	if composed.Options[2].Label != "Her" {
		t.Fatalf("order not preserved: %+v", composed.Options)
	}
}

func TestComposeTruncatesLabels(t *testing.T) {
	long := strings.Repeat("я", 150)
	composed, err := poll.Compose("q", []*watchlist.Item{
		{ID: 1, Title: long},
		{ID: 2, Title: "Short"},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got := len([]rune(composed.Options[0].Label)); got != poll.MaxLabelRunes {
		t.Fatalf("label runes = %d, want %d", got, poll.MaxLabelRunes)
	}
}

func TestComposeRandomClamps(t *testing.T) {
	composed, err := poll.ComposeRandom("q", candidates(4), 15)
	if err != nil {
		t.Fatalf("ComposeRandom: %v", err)
	}
	if len(composed.Options) != 4 {
		t.Fatalf("requested 15 of 4 should clamp to 4, got %d", len(composed.Options))
	}

	composed, err = poll.ComposeRandom("q", candidates(20), 15)
	if err != nil {
		t.Fatalf("ComposeRandom: %v", err)
	}
	if len(composed.Options) != poll.MaxOptions {
		t.Fatalf("requested 15 of 20 should clamp to %d, got %d", poll.MaxOptions, len(composed.Options))
	}

	composed, err = poll.ComposeRandom("q", candidates(5), 0)
	if err != nil {
		t.Fatalf("ComposeRandom: %v", err)
	}
	if len(composed.Options) != poll.MinOptions {
		t.Fatalf("count 0 should clamp up to %d, got %d", poll.MinOptions, len(composed.Options))
	}

	if _, err := poll.ComposeRandom("q", candidates(1), 3); !errors.Is(err, poll.ErrTooFewOptions) {
		t.Fatalf("1 candidate = %v, want ErrTooFewOptions", err)
	}
}

func TestComposeRandomSamplesWithoutReplacement(t *testing.T) {
	composed, err := poll.ComposeRandom("q", candidates(8), 8)
	if err != nil {
		t.Fatalf("ComposeRandom: %v", err)
	}
	seen := make(map[int64]bool, len(composed.Options))
	for _, option := range composed.Options {
		if seen[option.ItemID] {
			t.Fatalf("item %d sampled twice", option.ItemID)
		}
		seen[option.ItemID] = true
	}
}
