package watchlist

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const itemColumns = `id, group_id, title, title_fold, status, added_by, added_at,
    watched_by, watched_at, tmdb_id, year, rating, poster_path, genres_json`

// Add inserts a movie into the group's to-watch list. When the folded title
// already exists in the group, in either status, the insert is a no-op and
// the returned error is a *DuplicateTitleError carrying the existing item.
// Insert and conflict lookup run in one transaction so a concurrent add
// cannot slip between them.
func (s *Store) Add(ctx context.Context, groupID int64, title, addedBy string) (*Item, error) {
	ctx = ensureContext(ctx)
	fold := FoldTitle(title)
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin add tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO movies (group_id, title, title_fold, status, added_by, added_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		groupID, title, fold, StatusToWatch, addedBy, timestamp,
	)
	if err != nil {
		return nil, storeErr("insert movie", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, storeErr("insert movie rows", err)
	}
	if affected == 0 {
		existing, err := scanItem(tx.QueryRowContext(ctx,
			`SELECT `+itemColumns+` FROM movies WHERE group_id = ? AND title_fold = ?`,
			groupID, fold,
		))
		if err != nil {
			return nil, storeErr("fetch conflicting movie", err)
		}
		return nil, &DuplicateTitleError{Existing: existing}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("last insert id", err)
	}
	item, err := scanItem(tx.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM movies WHERE id = ?`, id,
	))
	if err != nil {
		return nil, storeErr("fetch inserted movie", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storeErr("commit add", err)
	}
	return item, nil
}

// GetByID fetches a single movie within a group.
func (s *Store) GetByID(ctx context.Context, groupID, id int64) (*Item, error) {
	ctx = ensureContext(ctx)
	item, err := scanItem(s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM movies WHERE group_id = ? AND id = ?`,
		groupID, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("fetch movie", err)
	}
	return item, nil
}

// ListByFilter returns the group's movies for the given filter in creation
// order. FilterAll places the to-watch block first, then watched.
func (s *Store) ListByFilter(ctx context.Context, groupID int64, filter Filter) ([]*Item, error) {
	ctx = ensureContext(ctx)

	query := `SELECT ` + itemColumns + ` FROM movies WHERE group_id = ?`
	args := []any{groupID}
	switch filter {
	case FilterAll:
		query += ` ORDER BY CASE status WHEN ? THEN 0 ELSE 1 END, id`
		args = append(args, StatusToWatch)
	case FilterToWatch, FilterWatched:
		query += ` AND status = ? ORDER BY id`
		args = append(args, filter)
	default:
		return nil, fmt.Errorf("unknown filter %q", filter)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list movies", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, storeErr("scan movie", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate movies", err)
	}
	return items, nil
}

// Enrichment carries the optional metadata fields supplied by the TMDB
// collaborator.
type Enrichment struct {
	TMDBID     int64
	Year       int
	Rating     float64
	PosterPath string
	Genres     []string
}

// SetEnrichment stores metadata fields on an existing movie.
func (s *Store) SetEnrichment(ctx context.Context, groupID, id int64, meta Enrichment) error {
	ctx = ensureContext(ctx)

	var genresJSON any
	if len(meta.Genres) > 0 {
		encoded, err := json.Marshal(meta.Genres)
		if err != nil {
			return fmt.Errorf("marshal genres: %w", err)
		}
		genresJSON = string(encoded)
	}

	res, err := s.execWithRetry(ctx,
		`UPDATE movies SET tmdb_id = ?, year = ?, rating = ?, poster_path = ?, genres_json = ?
         WHERE group_id = ? AND id = ?`,
		nullableInt64(meta.TMDBID), nullableInt(meta.Year), nullableFloat(meta.Rating),
		nullableString(meta.PosterPath), genresJSON,
		groupID, id,
	)
	if err != nil {
		return storeErr("set enrichment", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("set enrichment rows", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove deletes a movie from either status. Returns ErrNotFound when the id
// does not exist in the group.
func (s *Store) Remove(ctx context.Context, groupID, id int64) error {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx,
		`DELETE FROM movies WHERE group_id = ? AND id = ?`, groupID, id,
	)
	if err != nil {
		return storeErr("delete movie", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete movie rows", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Counts reports the to-watch and watched list lengths for a group.
func (s *Store) Counts(ctx context.Context, groupID int64) (toWatch, watched int, err error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, COUNT(1) FROM movies WHERE group_id = ? GROUP BY status`, groupID,
	)
	if err != nil {
		return 0, 0, storeErr("count movies", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return 0, 0, storeErr("scan counts", err)
		}
		switch status {
		case StatusToWatch:
			toWatch = count
		case StatusWatched:
			watched = count
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, storeErr("iterate counts", err)
	}
	return toWatch, watched, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*Item, error) {
	var (
		item       Item
		fold       string
		addedAt    string
		watchedBy  sql.NullString
		watchedAt  sql.NullString
		tmdbID     sql.NullInt64
		year       sql.NullInt64
		rating     sql.NullFloat64
		posterPath sql.NullString
		genresJSON sql.NullString
	)
	err := row.Scan(
		&item.ID, &item.GroupID, &item.Title, &fold, &item.Status,
		&item.AddedBy, &addedAt,
		&watchedBy, &watchedAt,
		&tmdbID, &year, &rating, &posterPath, &genresJSON,
	)
	if err != nil {
		return nil, err
	}

	if item.AddedAt, err = parseTimestamp(addedAt); err != nil {
		return nil, fmt.Errorf("parse added_at: %w", err)
	}
	if watchedBy.Valid {
		item.WatchedBy = watchedBy.String
	}
	if watchedAt.Valid {
		ts, err := parseTimestamp(watchedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse watched_at: %w", err)
		}
		item.WatchedAt = &ts
	}
	if tmdbID.Valid {
		item.TMDBID = &tmdbID.Int64
	}
	if year.Valid {
		y := int(year.Int64)
		item.Year = &y
	}
	if rating.Valid {
		item.Rating = &rating.Float64
	}
	if posterPath.Valid {
		item.PosterPath = &posterPath.String
	}
	if genresJSON.Valid && genresJSON.String != "" {
		if err := json.Unmarshal([]byte(genresJSON.String), &item.Genres); err != nil {
			return nil, fmt.Errorf("parse genres: %w", err)
		}
	}
	return &item, nil
}

func parseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt64(value int64) any {
	if value == 0 {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}

func nullableFloat(value float64) any {
	if value == 0 {
		return nil
	}
	return value
}
