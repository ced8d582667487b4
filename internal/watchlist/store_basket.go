package watchlist

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AddBasketEntry records one ordinal selection for a participant. The insert
// is idempotent under the (group, user, ordinal) unique index; the return
// value reports whether a new entry was created.
func (s *Store) AddBasketEntry(ctx context.Context, groupID, userID int64, userName string, ordinal int) (bool, error) {
	ctx = ensureContext(ctx)
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.execWithRetry(ctx,
		`INSERT OR IGNORE INTO basket_entries (group_id, user_id, user_name, ordinal, added_at)
         VALUES (?, ?, ?, ?, ?)`,
		groupID, userID, userName, ordinal, timestamp,
	)
	if err != nil {
		return false, storeErr("insert basket entry", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("insert basket entry rows", err)
	}
	return affected > 0, nil
}

// RemoveBasketEntries deletes the listed ordinals for a participant and
// returns how many entries actually existed.
func (s *Store) RemoveBasketEntries(ctx context.Context, groupID, userID int64, ordinals []int) (int64, error) {
	if len(ordinals) == 0 {
		return 0, nil
	}
	ctx = ensureContext(ctx)

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ordinals)), ",")
	args := []any{groupID, userID}
	for _, ordinal := range ordinals {
		args = append(args, ordinal)
	}

	res, err := s.execWithRetry(ctx,
		fmt.Sprintf(`DELETE FROM basket_entries WHERE group_id = ? AND user_id = ? AND ordinal IN (%s)`, placeholders),
		args...,
	)
	if err != nil {
		return 0, storeErr("delete basket entries", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("delete basket entries rows", err)
	}
	return affected, nil
}

// ClearBasketForUser deletes every entry a participant holds in the group.
func (s *Store) ClearBasketForUser(ctx context.Context, groupID, userID int64) (int64, error) {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx,
		`DELETE FROM basket_entries WHERE group_id = ? AND user_id = ?`,
		groupID, userID,
	)
	if err != nil {
		return 0, storeErr("clear user basket", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("clear user basket rows", err)
	}
	return affected, nil
}

// ClearBasketGroup deletes every participant's entries in the group.
func (s *Store) ClearBasketGroup(ctx context.Context, groupID int64) (int64, error) {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx,
		`DELETE FROM basket_entries WHERE group_id = ?`, groupID,
	)
	if err != nil {
		return 0, storeErr("clear group basket", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("clear group basket rows", err)
	}
	return affected, nil
}

// ListBasketForUser returns a participant's selected ordinals, ascending.
func (s *Store) ListBasketForUser(ctx context.Context, groupID, userID int64) ([]int, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT ordinal FROM basket_entries WHERE group_id = ? AND user_id = ? ORDER BY ordinal`,
		groupID, userID,
	)
	if err != nil {
		return nil, storeErr("list user basket", err)
	}
	defer rows.Close()

	var ordinals []int
	for rows.Next() {
		var ordinal int
		if err := rows.Scan(&ordinal); err != nil {
			return nil, storeErr("scan basket ordinal", err)
		}
		ordinals = append(ordinals, ordinal)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate user basket", err)
	}
	return ordinals, nil
}

// ListBasketGroup returns every entry in the group ordered by participant
// name, then ordinal.
func (s *Store) ListBasketGroup(ctx context.Context, groupID int64) ([]BasketEntry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, user_id, user_name, ordinal, added_at
         FROM basket_entries WHERE group_id = ?
         ORDER BY user_name, user_id, ordinal`,
		groupID,
	)
	if err != nil {
		return nil, storeErr("list group basket", err)
	}
	defer rows.Close()

	var entries []BasketEntry
	for rows.Next() {
		var (
			entry   BasketEntry
			addedAt string
		)
		if err := rows.Scan(&entry.ID, &entry.GroupID, &entry.UserID, &entry.UserName, &entry.Ordinal, &addedAt); err != nil {
			return nil, storeErr("scan basket entry", err)
		}
		if entry.AddedAt, err = parseTimestamp(addedAt); err != nil {
			return nil, fmt.Errorf("parse basket added_at: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate group basket", err)
	}
	return entries, nil
}

// DistinctBasketOrdinals returns the sorted set of distinct ordinals across
// all participants in the group. This is the candidate set for basket polls.
func (s *Store) DistinctBasketOrdinals(ctx context.Context, groupID int64) ([]int, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT ordinal FROM basket_entries WHERE group_id = ? ORDER BY ordinal`,
		groupID,
	)
	if err != nil {
		return nil, storeErr("list distinct ordinals", err)
	}
	defer rows.Close()

	var ordinals []int
	for rows.Next() {
		var ordinal int
		if err := rows.Scan(&ordinal); err != nil {
			return nil, storeErr("scan distinct ordinal", err)
		}
		ordinals = append(ordinals, ordinal)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate distinct ordinals", err)
	}
	return ordinals, nil
}
