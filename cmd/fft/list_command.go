package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/engine"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var watchedOnly bool
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the group's to-watch and watched lists",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchedOnly && pendingOnly {
				return fmt.Errorf("--watched and --pending are mutually exclusive")
			}

			groupID, err := ctx.groupID()
			if err != nil {
				return err
			}

			return ctx.withEngine(func(cctx context.Context, eng *engine.Engine) error {
				listing, err := eng.List(cctx, groupID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				pretty := isTerminal(out)

				if !watchedOnly {
					printToWatch(out, listing.ToWatch, pretty)
				}
				if !pendingOnly {
					if !watchedOnly {
						fmt.Fprintln(out)
					}
					printWatched(out, listing.Watched, pretty)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&watchedOnly, "watched", false, "Show only the watched list")
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "Show only the to-watch list")
	return cmd
}

func printToWatch(out io.Writer, items []*watchlist.Item, pretty bool) {
	fmt.Fprintf(out, "To watch (%d):\n", len(items))
	if len(items) == 0 {
		fmt.Fprintln(out, "  nothing yet; add a movie with `fft add`")
		return
	}
	if !pretty {
		for i, item := range items {
			fmt.Fprintf(out, "%d. %s%s\n", i+1, item.Title, itemSuffix(item))
		}
		return
	}
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		year := ""
		if item.Year != nil {
			year = strconv.Itoa(*item.Year)
		}
		rating := ""
		if item.Rating != nil {
			rating = fmt.Sprintf("%.1f", *item.Rating)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Title,
			year,
			rating,
			item.AddedBy,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Title", "Year", "Rating", "Added by"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft},
	))
}

func printWatched(out io.Writer, items []*watchlist.Item, pretty bool) {
	fmt.Fprintf(out, "Watched (%d):\n", len(items))
	if len(items) == 0 {
		fmt.Fprintln(out, "  nothing watched yet")
		return
	}
	if !pretty {
		for i, item := range items {
			fmt.Fprintf(out, "%d. %s%s\n", i+1, item.Title, watchedSuffix(item))
		}
		return
	}
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		watchedAt := ""
		if item.WatchedAt != nil {
			watchedAt = item.WatchedAt.Local().Format(time.DateOnly)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Title,
			item.WatchedBy,
			watchedAt,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Title", "Watched by", "Watched on"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))
}

func watchedSuffix(item *watchlist.Item) string {
	if item.WatchedBy == "" {
		return ""
	}
	return fmt.Sprintf(" - watched by %s", item.WatchedBy)
}
