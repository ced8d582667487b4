package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// Entry is one movie in a snapshot, flattened for serialization. Position
// is the 1-based ordinal within its list at snapshot time.
type Entry struct {
	Position  int        `json:"position"`
	Title     string     `json:"title"`
	AddedBy   string     `json:"added_by"`
	AddedAt   time.Time  `json:"added_at"`
	WatchedBy string     `json:"watched_by,omitempty"`
	WatchedAt *time.Time `json:"watched_at,omitempty"`
	Year      *int       `json:"year,omitempty"`
	Rating    *float64   `json:"rating,omitempty"`
	Genres    []string   `json:"genres,omitempty"`
}

// Snapshot is a point-in-time dump of both lists of a group.
type Snapshot struct {
	GroupID     int64     `json:"group_id"`
	GeneratedAt time.Time `json:"generated_at"`
	ToWatch     []Entry   `json:"to_watch"`
	Watched     []Entry   `json:"watched"`
}

type lister interface {
	ListByFilter(ctx context.Context, groupID int64, filter watchlist.Filter) ([]*watchlist.Item, error)
}

// Build reads the group's lists and shapes them into a Snapshot.
func Build(ctx context.Context, store lister, groupID int64) (*Snapshot, error) {
	toWatch, err := store.ListByFilter(ctx, groupID, watchlist.FilterToWatch)
	if err != nil {
		return nil, err
	}
	watched, err := store.ListByFilter(ctx, groupID, watchlist.FilterWatched)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		GroupID:     groupID,
		GeneratedAt: time.Now().UTC(),
		ToWatch:     entries(toWatch),
		Watched:     entries(watched),
	}, nil
}

func entries(items []*watchlist.Item) []Entry {
	out := make([]Entry, 0, len(items))
	for i, item := range items {
		out = append(out, Entry{
			Position:  i + 1,
			Title:     item.Title,
			AddedBy:   item.AddedBy,
			AddedAt:   item.AddedAt,
			WatchedBy: item.WatchedBy,
			WatchedAt: item.WatchedAt,
			Year:      item.Year,
			Rating:    item.Rating,
			Genres:    item.Genres,
		})
	}
	return out
}

// WriteJSON renders the snapshot as indented JSON.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// WriteMarkdown renders the snapshot as a numbered two-section document,
// mirroring the list rendering users see in chat.
func (s *Snapshot) WriteMarkdown(w io.Writer) error {
	var err error
	write := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	write("# Movie list (group %d)\n\n", s.GroupID)
	write("Generated %s\n\n", s.GeneratedAt.Format(time.RFC3339))

	write("## To watch (%d)\n\n", len(s.ToWatch))
	writeSection(write, s.ToWatch)
	write("\n## Watched (%d)\n\n", len(s.Watched))
	writeSection(write, s.Watched)

	if err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func writeSection(write func(string, ...any), section []Entry) {
	if len(section) == 0 {
		write("_empty_\n")
		return
	}
	for _, entry := range section {
		write("%d. %s", entry.Position, entry.Title)
		if entry.Year != nil {
			write(" (%d)", *entry.Year)
		}
		if entry.WatchedBy != "" {
			write(" - watched by %s", entry.WatchedBy)
		}
		write("\n")
	}
}
