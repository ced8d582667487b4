package engine

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/danchopon/FeetForTarantino/internal/resolve"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// AddMovieResult reports a successful add.
type AddMovieResult struct {
	Item         *watchlist.Item
	ToWatchCount int
	Enriched     bool
}

// AddMovie inserts a title into the group's to-watch list and, when the
// metadata collaborator is configured, enriches it with the first TMDB
// search hit. Enrichment misses and failures are silent: the movie stays,
// unenriched.
func (e *Engine) AddMovie(ctx context.Context, groupID int64, p Participant, title string) (*AddMovieResult, error) {
	item, err := e.store.Add(ctx, groupID, title, p.Name)
	if err != nil {
		return nil, err
	}

	enriched := e.enrich(ctx, item)
	if enriched {
		if refreshed, err := e.store.GetByID(ctx, groupID, item.ID); err == nil {
			item = refreshed
		}
	}

	toWatch, _, err := e.store.Counts(ctx, groupID)
	if err != nil {
		return nil, err
	}

	e.logger.Info("movie added",
		"group", groupID, "title", item.Title, "by", p.Name, "enriched", enriched)
	return &AddMovieResult{Item: item, ToWatchCount: toWatch, Enriched: enriched}, nil
}

func (e *Engine) enrich(ctx context.Context, item *watchlist.Item) bool {
	if e.meta == nil {
		return false
	}
	resp, err := e.meta.SearchMovie(ctx, item.Title)
	if err != nil {
		e.logger.Warn("metadata search failed", "title", item.Title, "error", err)
		return false
	}
	if len(resp.Results) == 0 {
		return false
	}
	hit := resp.Results[0]

	genres := e.genreNames(ctx, hit.GenreIDs)
	err = e.store.SetEnrichment(ctx, item.GroupID, item.ID, watchlist.Enrichment{
		TMDBID:     hit.ID,
		Year:       hit.Year(),
		Rating:     hit.VoteAverage,
		PosterPath: hit.PosterPath,
		Genres:     genres,
	})
	if err != nil {
		e.logger.Warn("store enrichment failed", "title", item.Title, "error", err)
		return false
	}
	return true
}

func (e *Engine) genreNames(ctx context.Context, ids []int64) []string {
	if len(ids) == 0 {
		return nil
	}
	catalogue, err := e.meta.MovieGenres(ctx)
	if err != nil {
		e.logger.Warn("genre catalogue fetch failed", "error", err)
		return nil
	}
	byID := make(map[int64]string, len(catalogue))
	for _, genre := range catalogue {
		byID[genre.ID] = genre.Name
	}
	var names []string
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// TransitionResult reports a watched/unwatched transition.
type TransitionResult struct {
	Title        string
	ToWatchCount int
	WatchedCount int
}

// MarkWatched resolves a reference against the to-watch listing and
// transitions the movie. A reference that only matches a watched movie
// fails with ErrAlreadyWatched so the caller can say so precisely; a full
// miss fails with ErrNoMatch.
func (e *Engine) MarkWatched(ctx context.Context, groupID int64, p Participant, ref string) (*TransitionResult, error) {
	item, err := resolve.Reference(ctx, e.store, groupID, watchlist.FilterToWatch, ref)
	if err != nil {
		return nil, err
	}
	if item == nil {
		watched, err := resolve.Title(ctx, e.store, groupID, watchlist.FilterWatched, ref)
		if err != nil {
			return nil, err
		}
		if watched != nil {
			return nil, fmt.Errorf("%q: %w", watched.Title, watchlist.ErrAlreadyWatched)
		}
		return nil, fmt.Errorf("%q: %w", ref, ErrNoMatch)
	}

	previous, err := e.store.MarkWatched(ctx, groupID, item.ID, p.Name)
	if err != nil {
		return nil, err
	}

	toWatch, watched, err := e.store.Counts(ctx, groupID)
	if err != nil {
		return nil, err
	}

	e.logger.Info("movie watched", "group", groupID, "title", previous.Title, "by", p.Name)
	return &TransitionResult{Title: previous.Title, ToWatchCount: toWatch, WatchedCount: watched}, nil
}

// MarkUnwatched reverses a watched transition by reference against the
// watched listing. A reference that only matches a pending movie fails with
// ErrNotWatched.
func (e *Engine) MarkUnwatched(ctx context.Context, groupID int64, p Participant, ref string) (*TransitionResult, error) {
	item, err := resolve.Reference(ctx, e.store, groupID, watchlist.FilterWatched, ref)
	if err != nil {
		return nil, err
	}
	if item == nil {
		pending, err := resolve.Title(ctx, e.store, groupID, watchlist.FilterToWatch, ref)
		if err != nil {
			return nil, err
		}
		if pending != nil {
			return nil, fmt.Errorf("%q: %w", pending.Title, watchlist.ErrNotWatched)
		}
		return nil, fmt.Errorf("%q: %w", ref, ErrNoMatch)
	}

	previous, err := e.store.MarkUnwatched(ctx, groupID, item.ID)
	if err != nil {
		return nil, err
	}

	toWatch, watched, err := e.store.Counts(ctx, groupID)
	if err != nil {
		return nil, err
	}

	e.logger.Info("movie unwatched", "group", groupID, "title", previous.Title, "by", p.Name)
	return &TransitionResult{Title: previous.Title, ToWatchCount: toWatch, WatchedCount: watched}, nil
}

// RemoveResult reports a removal.
type RemoveResult struct {
	Title  string
	Status watchlist.Status
}

// RemoveMovie deletes a movie referenced against the combined listing, so a
// position from the full rendering works and a title matches either status.
func (e *Engine) RemoveMovie(ctx context.Context, groupID int64, p Participant, ref string) (*RemoveResult, error) {
	item, err := resolve.Reference(ctx, e.store, groupID, watchlist.FilterAll, ref)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%q: %w", ref, ErrNoMatch)
	}

	if err := e.store.Remove(ctx, groupID, item.ID); err != nil {
		return nil, err
	}

	e.logger.Info("movie removed", "group", groupID, "title", item.Title, "by", p.Name)
	return &RemoveResult{Title: item.Title, Status: item.Status}, nil
}

// Listing is both lists of a group in rendering order.
type Listing struct {
	ToWatch []*watchlist.Item
	Watched []*watchlist.Item
}

// List returns the group's lists. Ordinals shown to users are the 1-based
// positions within each returned slice.
func (e *Engine) List(ctx context.Context, groupID int64) (*Listing, error) {
	toWatch, err := e.store.ListByFilter(ctx, groupID, watchlist.FilterToWatch)
	if err != nil {
		return nil, err
	}
	watched, err := e.store.ListByFilter(ctx, groupID, watchlist.FilterWatched)
	if err != nil {
		return nil, err
	}
	return &Listing{ToWatch: toWatch, Watched: watched}, nil
}

// RandomPick returns a uniformly random to-watch movie.
func (e *Engine) RandomPick(ctx context.Context, groupID int64) (*watchlist.Item, error) {
	items, err := e.store.ListByFilter(ctx, groupID, watchlist.FilterToWatch)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyList
	}
	return items[rand.IntN(len(items))], nil
}
