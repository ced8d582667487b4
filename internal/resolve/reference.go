package resolve

import (
	"context"
	"strconv"
	"strings"

	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// Reference resolves a free-form argument the way every mutating command
// does: a positive integer is treated as an ordinal against the filtered
// listing, anything else as a fuzzy title query. A numeric argument that
// misses as an ordinal still falls through to title matching, so "1917"
// keeps working on short lists; when both miss, the ordinal error wins
// because it carries the valid range.
func Reference(ctx context.Context, lister Lister, groupID int64, filter watchlist.Filter, arg string) (*watchlist.Item, error) {
	arg = strings.TrimSpace(arg)

	items, err := lister.ListByFilter(ctx, groupID, filter)
	if err != nil {
		return nil, err
	}

	if ordinal, numErr := strconv.Atoi(arg); numErr == nil && ordinal > 0 {
		item, ordErr := ByOrdinal(items, ordinal)
		if ordErr == nil {
			return item, nil
		}
		if item := ByTitle(items, arg); item != nil {
			return item, nil
		}
		return nil, ordErr
	}

	return ByTitle(items, arg), nil
}
