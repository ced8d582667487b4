package engine

import (
	"context"
	"fmt"

	"github.com/danchopon/FeetForTarantino/internal/poll"
	"github.com/danchopon/FeetForTarantino/internal/resolve"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// ComposeRandomPoll samples count random to-watch movies into a poll. The
// count clamps to the available movies and to the transport maximum instead
// of failing; only a list below two candidates is an error.
func (e *Engine) ComposeRandomPoll(ctx context.Context, groupID int64, count int) (*poll.Poll, error) {
	items, err := e.store.ListByFilter(ctx, groupID, watchlist.FilterToWatch)
	if err != nil {
		return nil, err
	}

	composed, err := poll.ComposeRandom(e.pollQuestion, items, count)
	if err != nil {
		return nil, err
	}

	e.logger.Info("poll composed", "group", groupID, "poll", composed.ID, "options", len(composed.Options), "mode", "random")
	return composed, nil
}

// ComposePollFromOrdinals builds a poll from explicit to-watch positions.
// More than the transport maximum is rejected up front; ordinals that no
// longer resolve (stale basket entries after a removal) are dropped, and the
// remainder must still form a votable set.
func (e *Engine) ComposePollFromOrdinals(ctx context.Context, groupID int64, ordinals []int) (*poll.Poll, error) {
	if len(ordinals) > poll.MaxOptions {
		return nil, fmt.Errorf("%w: at most %d positions, have %d", poll.ErrTooManyOptions, poll.MaxOptions, len(ordinals))
	}

	items, err := e.store.ListByFilter(ctx, groupID, watchlist.FilterToWatch)
	if err != nil {
		return nil, err
	}

	var candidates []*watchlist.Item
	seen := make(map[int]struct{}, len(ordinals))
	for _, ordinal := range ordinals {
		if _, dup := seen[ordinal]; dup {
			continue
		}
		seen[ordinal] = struct{}{}
		item, err := resolve.ByOrdinal(items, ordinal)
		if err != nil {
			continue
		}
		candidates = append(candidates, item)
	}

	composed, err := poll.Compose(e.pollQuestion, candidates)
	if err != nil {
		return nil, err
	}

	e.logger.Info("poll composed", "group", groupID, "poll", composed.ID, "options", len(composed.Options), "mode", "ordinals")
	return composed, nil
}

// ComposeBasketPoll builds a poll from the group's distinct basket ordinals.
func (e *Engine) ComposeBasketPoll(ctx context.Context, groupID int64) (*poll.Poll, error) {
	ordinals, err := e.basket.UniqueOrdinals(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return e.ComposePollFromOrdinals(ctx, groupID, ordinals)
}
