package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Result represents a single TMDB movie entry.
type Result struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	GenreIDs    []int64 `json:"genre_ids"`
}

// Year extracts the release year, 0 when unknown.
func (r Result) Year() int {
	if len(r.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(r.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// Response models the TMDB paginated results payload.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Genre is one entry of the TMDB genre catalogue.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Searcher defines the TMDB operations the engine consumes.
type Searcher interface {
	SearchMovie(ctx context.Context, query string) (*Response, error)
	DiscoverMovies(ctx context.Context, genreIDs []int64, excludeIDs []int64) (*Response, error)
	MovieGenres(ctx context.Context) ([]Genre, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	language = strings.TrimSpace(language)
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchMovie searches TMDB for the supplied title.
func (c *Client) SearchMovie(ctx context.Context, query string) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)

	var payload Response
	if err := c.get(ctx, "/search/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DiscoverMovies lists movies matching all the given genres, sorted by
// popularity. TMDB has no exclusion parameter, so excludeIDs filters the
// page client-side; callers see only unseen candidates.
func (c *Client) DiscoverMovies(ctx context.Context, genreIDs []int64, excludeIDs []int64) (*Response, error) {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	if len(genreIDs) > 0 {
		encoded := make([]string, 0, len(genreIDs))
		for _, id := range genreIDs {
			encoded = append(encoded, strconv.FormatInt(id, 10))
		}
		params.Set("with_genres", strings.Join(encoded, ","))
	}

	var payload Response
	if err := c.get(ctx, "/discover/movie", params, &payload); err != nil {
		return nil, err
	}

	if len(excludeIDs) > 0 {
		excluded := make(map[int64]struct{}, len(excludeIDs))
		for _, id := range excludeIDs {
			excluded[id] = struct{}{}
		}
		kept := payload.Results[:0]
		for _, result := range payload.Results {
			if _, skip := excluded[result.ID]; !skip {
				kept = append(kept, result)
			}
		}
		payload.Results = kept
	}
	return &payload, nil
}

// MovieGenres fetches the TMDB movie genre catalogue.
func (c *Client) MovieGenres(ctx context.Context) ([]Genre, error) {
	var payload struct {
		Genres []Genre `json:"genres"`
	}
	if err := c.get(ctx, "/genre/movie/list", url.Values{}, &payload); err != nil {
		return nil, err
	}
	return payload.Genres, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
