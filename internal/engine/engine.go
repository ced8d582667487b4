package engine

import (
	"errors"
	"log/slog"

	"github.com/danchopon/FeetForTarantino/internal/basket"
	"github.com/danchopon/FeetForTarantino/internal/logging"
	"github.com/danchopon/FeetForTarantino/internal/tmdb"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

var (
	// ErrNoMatch indicates a reference that resolved to nothing: no such
	// ordinal fallback and no title matched.
	ErrNoMatch = errors.New("no matching movie")

	// ErrEmptyList indicates an operation that needs at least one
	// to-watch movie found none.
	ErrEmptyList = errors.New("the to-watch list is empty")

	// ErrMetadataDisabled indicates a metadata-backed operation was
	// called without a configured TMDB collaborator.
	ErrMetadataDisabled = errors.New("metadata lookups are not configured")
)

// Participant identifies the caller of an operation. The transport supplies
// both values; the engine trusts them as-is.
type Participant struct {
	ID   int64
	Name string
}

// Engine wires the store, basket, and optional metadata collaborator behind
// the operation surface the transport calls.
type Engine struct {
	store        *watchlist.Store
	basket       *basket.Basket
	meta         tmdb.Searcher
	logger       *slog.Logger
	pollQuestion string
}

// New constructs an Engine. meta may be nil when the metadata collaborator
// is unconfigured; metadata-backed operations then fail with
// ErrMetadataDisabled and enrichment is skipped silently.
func New(store *watchlist.Store, meta tmdb.Searcher, logger *slog.Logger, pollQuestion string) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		store:        store,
		basket:       basket.New(store),
		meta:         meta,
		logger:       logger,
		pollQuestion: pollQuestion,
	}
}

// Store exposes the underlying store for read-only collaborators such as
// export.
func (e *Engine) Store() *watchlist.Store {
	return e.store
}
