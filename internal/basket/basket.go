package basket

import (
	"context"
	"fmt"

	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// Basket exposes the vote basket operations for one store.
type Basket struct {
	store *watchlist.Store
}

// New wraps a store with basket semantics.
func New(store *watchlist.Store) *Basket {
	return &Basket{store: store}
}

// InvalidOrdinalsError rejects a basket add whose ordinals are not all
// within the current to-watch listing. Nothing is inserted when this is
// returned.
type InvalidOrdinalsError struct {
	Offending []int
	Length    int
}

func (e *InvalidOrdinalsError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("invalid positions %v: the to-watch list is empty", e.Offending)
	}
	return fmt.Sprintf("invalid positions %v: valid positions are 1..%d", e.Offending, e.Length)
}

// AddResult partitions an add call into newly created entries and entries
// the participant already held.
type AddResult struct {
	Added          []int
	AlreadyPresent []int
}

// Add validates every ordinal against the current to-watch listing before
// touching the basket; one bad ordinal rejects the whole call. Valid
// ordinals insert idempotently and the result reports which were new.
func (b *Basket) Add(ctx context.Context, groupID, userID int64, userName string, ordinals []int) (*AddResult, error) {
	items, err := b.store.ListByFilter(ctx, groupID, watchlist.FilterToWatch)
	if err != nil {
		return nil, err
	}
	length := len(items)

	var offending []int
	for _, ordinal := range ordinals {
		if ordinal < 1 || ordinal > length {
			offending = append(offending, ordinal)
		}
	}
	if len(offending) > 0 {
		return nil, &InvalidOrdinalsError{Offending: offending, Length: length}
	}

	result := &AddResult{}
	for _, ordinal := range ordinals {
		added, err := b.store.AddBasketEntry(ctx, groupID, userID, userName, ordinal)
		if err != nil {
			return nil, err
		}
		if added {
			result.Added = append(result.Added, ordinal)
		} else {
			result.AlreadyPresent = append(result.AlreadyPresent, ordinal)
		}
	}
	return result, nil
}

// Remove deletes the listed ordinals for the participant; with no ordinals
// it clears everything the participant holds. Returns the number of entries
// removed.
func (b *Basket) Remove(ctx context.Context, groupID, userID int64, ordinals []int) (int64, error) {
	if len(ordinals) == 0 {
		return b.store.ClearBasketForUser(ctx, groupID, userID)
	}
	return b.store.RemoveBasketEntries(ctx, groupID, userID, ordinals)
}

// ClearGroup deletes every participant's entries in the group.
func (b *Basket) ClearGroup(ctx context.Context, groupID int64) (int64, error) {
	return b.store.ClearBasketGroup(ctx, groupID)
}

// ListMine returns the participant's ordinals, ascending.
func (b *Basket) ListMine(ctx context.Context, groupID, userID int64) ([]int, error) {
	return b.store.ListBasketForUser(ctx, groupID, userID)
}

// ParticipantSelections is one participant's slice of the group view.
type ParticipantSelections struct {
	UserID   int64
	UserName string
	Ordinals []int
}

// ListAll groups every entry by participant, participants ordered by name,
// each participant's ordinals ascending.
func (b *Basket) ListAll(ctx context.Context, groupID int64) ([]ParticipantSelections, error) {
	entries, err := b.store.ListBasketGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	var out []ParticipantSelections
	for _, entry := range entries {
		if len(out) == 0 || out[len(out)-1].UserID != entry.UserID {
			out = append(out, ParticipantSelections{UserID: entry.UserID, UserName: entry.UserName})
		}
		last := &out[len(out)-1]
		last.Ordinals = append(last.Ordinals, entry.Ordinal)
	}
	return out, nil
}

// UniqueOrdinals returns the sorted distinct ordinals across the group,
// the candidate set for poll composition.
func (b *Basket) UniqueOrdinals(ctx context.Context, groupID int64) ([]int, error) {
	return b.store.DistinctBasketOrdinals(ctx, groupID)
}
