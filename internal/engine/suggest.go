package engine

import (
	"context"
	"sort"

	"github.com/danchopon/FeetForTarantino/internal/tmdb"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// suggestGenreCount bounds how many top genres bias the discovery query.
const suggestGenreCount = 3

// Suggest proposes unseen movies biased toward the genres the group watches
// most: tally genre tags across watched movies (falling back to the whole
// list when nothing is watched yet), take the top genres by frequency, and
// discover by those genres excluding every TMDB id already listed.
func (e *Engine) Suggest(ctx context.Context, groupID int64, limit int) ([]tmdb.Result, error) {
	if e.meta == nil {
		return nil, ErrMetadataDisabled
	}

	all, err := e.store.ListByFilter(ctx, groupID, watchlist.FilterAll)
	if err != nil {
		return nil, err
	}

	frequency := make(map[string]int)
	for _, item := range all {
		if !item.Watched() {
			continue
		}
		for _, genre := range item.Genres {
			frequency[genre]++
		}
	}
	if len(frequency) == 0 {
		for _, item := range all {
			for _, genre := range item.Genres {
				frequency[genre]++
			}
		}
	}

	genreIDs, err := e.topGenreIDs(ctx, frequency)
	if err != nil {
		return nil, err
	}

	var excludeIDs []int64
	for _, item := range all {
		if item.TMDBID != nil {
			excludeIDs = append(excludeIDs, *item.TMDBID)
		}
	}

	resp, err := e.meta.DiscoverMovies(ctx, genreIDs, excludeIDs)
	if err != nil {
		return nil, err
	}

	results := resp.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	e.logger.Info("suggestions fetched", "group", groupID, "genres", len(genreIDs), "results", len(results))
	return results, nil
}

func (e *Engine) topGenreIDs(ctx context.Context, frequency map[string]int) ([]int64, error) {
	if len(frequency) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(frequency))
	for name := range frequency {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if frequency[names[i]] != frequency[names[j]] {
			return frequency[names[i]] > frequency[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > suggestGenreCount {
		names = names[:suggestGenreCount]
	}

	catalogue, err := e.meta.MovieGenres(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int64, len(catalogue))
	for _, genre := range catalogue {
		byName[genre.Name] = genre.ID
	}

	var ids []int64
	for _, name := range names {
		if id, ok := byName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
