// Package tmdb provides the minimal TMDB API client used for title
// enrichment and genre-biased discovery.
//
// It authenticates requests and exposes movie search, genre catalogue
// lookup, and discover-by-genre with client-side exclusion of already-listed
// ids. Options allow tests to supply custom HTTP clients without modifying
// production code.
package tmdb
