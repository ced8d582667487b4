package watchlist

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Status represents the lifecycle of a movie within a group list.
type Status string

const (
	// StatusToWatch is the initial status for every added movie.
	StatusToWatch Status = "to_watch"
	// StatusWatched marks a movie the group has seen. Reversible.
	StatusWatched Status = "watched"
)

// Filter selects which listing a read operation addresses.
type Filter string

const (
	FilterToWatch Filter = "to_watch"
	FilterWatched Filter = "watched"
	// FilterAll lists the to-watch block first, then watched, each in
	// creation order, with continuous numbering across the boundary.
	FilterAll Filter = "all"
)

// ParseFilter maps user input onto a Filter.
func ParseFilter(value string) (Filter, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "to-watch", "to_watch", "towatch", "pending":
		return FilterToWatch, true
	case "watched", "seen":
		return FilterWatched, true
	case "all":
		return FilterAll, true
	}
	return "", false
}

// Item is one movie in a group's list.
type Item struct {
	ID      int64
	GroupID int64
	Title   string
	Status  Status

	AddedBy string
	AddedAt time.Time

	// Set only while Status is StatusWatched.
	WatchedBy string
	WatchedAt *time.Time

	// Enrichment from the metadata collaborator; all absent when the
	// collaborator is unconfigured or had no match.
	TMDBID     *int64
	Year       *int
	Rating     *float64
	PosterPath *string
	Genres     []string
}

// Watched reports whether the item has been marked watched.
func (i *Item) Watched() bool {
	return i != nil && i.Status == StatusWatched
}

// BasketEntry is one participant's selection of a to-watch ordinal. The
// ordinal value is captured at selection time and is not re-resolved when the
// underlying list changes.
type BasketEntry struct {
	ID       int64
	GroupID  int64
	UserID   int64
	UserName string
	Ordinal  int
	AddedAt  time.Time
}

var titleFolder = cases.Fold()

// FoldTitle returns the canonical case-folded form of a title, used for the
// per-group uniqueness key and for fuzzy matching.
func FoldTitle(title string) string {
	return titleFolder.String(strings.TrimSpace(title))
}
