package poll

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

const (
	// MinOptions is the smallest choice set worth voting on.
	MinOptions = 2
	// MaxOptions matches the poll transport's hard limit.
	MaxOptions = 10
	// MaxLabelRunes truncates option labels for transport compatibility.
	MaxLabelRunes = 100
)

var (
	// ErrTooFewOptions rejects a candidate set smaller than MinOptions.
	ErrTooFewOptions = errors.New("too few poll options")
	// ErrTooManyOptions rejects an explicit candidate set larger than MaxOptions.
	ErrTooManyOptions = errors.New("too many poll options")
)

// Option is one poll choice. ItemID ties the choice back to the movie for
// transports that track answers; two items with identical truncated labels
// stay distinct options.
type Option struct {
	ItemID int64
	Label  string
}

// Poll is a composed choice set. Dispatching it is the transport's concern.
type Poll struct {
	ID       string
	Question string
	Options  []Option
}

// Compose builds a poll from an explicit candidate list. Fails when the list
// falls outside [MinOptions, MaxOptions].
func Compose(question string, items []*watchlist.Item) (*Poll, error) {
	if len(items) < MinOptions {
		return nil, fmt.Errorf("%w: need at least %d movies, have %d", ErrTooFewOptions, MinOptions, len(items))
	}
	if len(items) > MaxOptions {
		return nil, fmt.Errorf("%w: at most %d movies, have %d", ErrTooManyOptions, MaxOptions, len(items))
	}
	return compose(question, items), nil
}

// ComposeRandom samples count movies from the candidate list. Unlike
// Compose, the requested count clamps to the available candidates and to
// MaxOptions instead of failing; only a candidate set below MinOptions is an
// error.
func ComposeRandom(question string, items []*watchlist.Item, count int) (*Poll, error) {
	if len(items) < MinOptions {
		return nil, fmt.Errorf("%w: need at least %d movies to poll, have %d", ErrTooFewOptions, MinOptions, len(items))
	}
	if count < MinOptions {
		count = MinOptions
	}
	if count > MaxOptions {
		count = MaxOptions
	}
	if count > len(items) {
		count = len(items)
	}

	sampled := make([]*watchlist.Item, len(items))
	copy(sampled, items)
	rand.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})
	return compose(question, sampled[:count]), nil
}

func compose(question string, items []*watchlist.Item) *Poll {
	options := make([]Option, 0, len(items))
	for _, item := range items {
		options = append(options, Option{
			ItemID: item.ID,
			Label:  truncateLabel(item.Title),
		})
	}
	return &Poll{
		ID:       uuid.NewString(),
		Question: question,
		Options:  options,
	}
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= MaxLabelRunes {
		return label
	}
	return string(runes[:MaxLabelRunes])
}
