package watchlist

import (
	"context"
	"time"
)

// MarkWatched transitions a movie from to-watch to watched, recording who
// watched it and when. Returns the item as it was before the transition so
// callers can confirm the canonical title. Fails with ErrAlreadyWatched when
// the movie is watched already.
//
// The status guard lives in the UPDATE itself; a concurrent transition loses
// the race cleanly instead of double-writing watcher fields.
func (s *Store) MarkWatched(ctx context.Context, groupID, id int64, watchedBy string) (*Item, error) {
	ctx = ensureContext(ctx)

	item, err := s.GetByID(ctx, groupID, id)
	if err != nil {
		return nil, err
	}
	if item.Watched() {
		return nil, ErrAlreadyWatched
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.execWithRetry(ctx,
		`UPDATE movies SET status = ?, watched_by = ?, watched_at = ?
         WHERE group_id = ? AND id = ? AND status = ?`,
		StatusWatched, watchedBy, timestamp,
		groupID, id, StatusToWatch,
	)
	if err != nil {
		return nil, storeErr("mark watched", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, storeErr("mark watched rows", err)
	}
	if affected == 0 {
		// Lost a race: either removed or watched since the read.
		current, getErr := s.GetByID(ctx, groupID, id)
		if getErr != nil {
			return nil, getErr
		}
		if current.Watched() {
			return nil, ErrAlreadyWatched
		}
		return nil, ErrNotFound
	}
	return item, nil
}

// MarkUnwatched reverses a watched transition, clearing watcher fields and
// returning the movie to to-watch. Fails with ErrNotWatched when the movie
// is still pending.
func (s *Store) MarkUnwatched(ctx context.Context, groupID, id int64) (*Item, error) {
	ctx = ensureContext(ctx)

	item, err := s.GetByID(ctx, groupID, id)
	if err != nil {
		return nil, err
	}
	if !item.Watched() {
		return nil, ErrNotWatched
	}

	res, err := s.execWithRetry(ctx,
		`UPDATE movies SET status = ?, watched_by = NULL, watched_at = NULL
         WHERE group_id = ? AND id = ? AND status = ?`,
		StatusToWatch,
		groupID, id, StatusWatched,
	)
	if err != nil {
		return nil, storeErr("mark unwatched", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, storeErr("mark unwatched rows", err)
	}
	if affected == 0 {
		current, getErr := s.GetByID(ctx, groupID, id)
		if getErr != nil {
			return nil, getErr
		}
		if !current.Watched() {
			return nil, ErrNotWatched
		}
		return nil, ErrNotFound
	}
	return item, nil
}
