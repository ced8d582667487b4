package resolve

import (
	"context"
	"fmt"

	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// Lister is the read-only slice of the store this package needs.
type Lister interface {
	ListByFilter(ctx context.Context, groupID int64, filter watchlist.Filter) ([]*watchlist.Item, error)
}

// OrdinalRangeError reports an ordinal outside the current listing. Length
// is the listing size at resolution time so callers can render the valid
// range.
type OrdinalRangeError struct {
	Requested int
	Length    int
}

func (e *OrdinalRangeError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("position %d is out of range: the list is empty", e.Requested)
	}
	return fmt.Sprintf("position %d is out of range: valid positions are 1..%d", e.Requested, e.Length)
}

// ByOrdinal returns the item at the 1-based position within items.
func ByOrdinal(items []*watchlist.Item, ordinal int) (*watchlist.Item, error) {
	if ordinal < 1 || ordinal > len(items) {
		return nil, &OrdinalRangeError{Requested: ordinal, Length: len(items)}
	}
	return items[ordinal-1], nil
}

// Ordinal fetches the current listing for the filter and resolves the
// position against it.
func Ordinal(ctx context.Context, lister Lister, groupID int64, filter watchlist.Filter, ordinal int) (*watchlist.Item, error) {
	items, err := lister.ListByFilter(ctx, groupID, filter)
	if err != nil {
		return nil, err
	}
	return ByOrdinal(items, ordinal)
}
