package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/engine"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Add a movie to the group's to-watch list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("movie title is required")
			}

			groupID, err := ctx.groupID()
			if err != nil {
				return err
			}
			participant, err := ctx.participant()
			if err != nil {
				return err
			}

			return ctx.withEngine(func(cctx context.Context, eng *engine.Engine) error {
				result, err := eng.AddMovie(cctx, groupID, participant, title)
				if err != nil {
					var dup *watchlist.DuplicateTitleError
					if errors.As(err, &dup) {
						return fmt.Errorf("%q is already on the list (added by %s)", dup.Existing.Title, dup.Existing.AddedBy)
					}
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Added %q%s\n", result.Item.Title, itemSuffix(result.Item))
				fmt.Fprintf(out, "%d movies to watch\n", result.ToWatchCount)
				return nil
			})
		},
	}
}
