package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danchopon/FeetForTarantino/internal/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestSearchMovieSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "key" {
			t.Fatalf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("query") != "Dune" {
			t.Fatalf("expected query parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":438631,"title":"Dune","release_date":"2021-09-15","vote_average":7.8,"genre_ids":[878,12]}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.SearchMovie(context.Background(), "Dune")
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Dune" {
		t.Fatalf("unexpected results %+v", resp.Results)
	}
	if resp.Results[0].Year() != 2021 {
		t.Fatalf("year = %d, want 2021", resp.Results[0].Year())
	}
}

func TestSearchMovieRejectsEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestSearchMovieNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "Dune"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestDiscoverMoviesFiltersExclusions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("with_genres") != "878,12" {
			t.Fatalf("with_genres = %q", r.URL.Query().Get("with_genres"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"Seen"},{"id":2,"title":"Fresh"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.DiscoverMovies(context.Background(), []int64{878, 12}, []int64{1})
	if err != nil {
		t.Fatalf("DiscoverMovies returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Fresh" {
		t.Fatalf("exclusion filter failed: %+v", resp.Results)
	}
}

func TestMovieGenres(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"genres":[{"id":878,"name":"Science Fiction"},{"id":12,"name":"Adventure"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	genres, err := client.MovieGenres(context.Background())
	if err != nil {
		t.Fatalf("MovieGenres returned error: %v", err)
	}
	if len(genres) != 2 || genres[0].Name != "Science Fiction" {
		t.Fatalf("unexpected genres %+v", genres)
	}
}
