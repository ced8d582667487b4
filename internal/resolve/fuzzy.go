package resolve

import (
	"context"
	"strings"

	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// ByTitle matches a free-text query against titles: folded exact equality
// first, then folded substring containment, first hit in creation order.
// A miss returns nil, not an error.
func ByTitle(items []*watchlist.Item, query string) *watchlist.Item {
	fold := watchlist.FoldTitle(query)
	if fold == "" {
		return nil
	}
	for _, item := range items {
		if watchlist.FoldTitle(item.Title) == fold {
			return item
		}
	}
	for _, item := range items {
		if strings.Contains(watchlist.FoldTitle(item.Title), fold) {
			return item
		}
	}
	return nil
}

// Title fetches the current listing for the filter and matches against it.
func Title(ctx context.Context, lister Lister, groupID int64, filter watchlist.Filter, query string) (*watchlist.Item, error) {
	items, err := lister.ListByFilter(ctx, groupID, filter)
	if err != nil {
		return nil, err
	}
	return ByTitle(items, query), nil
}
