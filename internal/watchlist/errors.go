package watchlist

import (
	"errors"
	"fmt"
)

var (
	// ErrStore marks storage-layer failures. Callers treat it as
	// unrecoverable locally and surface it without retrying.
	ErrStore = errors.New("store unavailable")

	// ErrNotFound indicates a movie id that does not exist in the group.
	ErrNotFound = errors.New("movie not found")

	// ErrAlreadyWatched rejects a watched transition on an already
	// watched movie.
	ErrAlreadyWatched = errors.New("movie already watched")

	// ErrNotWatched rejects an unwatch on a movie still in to-watch.
	ErrNotWatched = errors.New("movie not watched yet")
)

// DuplicateTitleError reports a title collision on add. Existing is the item
// already holding the title, so callers can report where the conflict lives
// and in which status.
type DuplicateTitleError struct {
	Existing *Item
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("title %q already in list (status %s)", e.Existing.Title, e.Existing.Status)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStore, err))
}
