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

func newWatchedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watched <position or title>",
		Short: "Mark a to-watch movie as watched",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.TrimSpace(strings.Join(args, " "))
			if ref == "" {
				return errors.New("a list position or title is required")
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
				result, err := eng.MarkWatched(cctx, groupID, participant, ref)
				if err != nil {
					if errors.Is(err, watchlist.ErrAlreadyWatched) {
						return fmt.Errorf("that movie is already marked as watched")
					}
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Watched %q\n", result.Title)
				fmt.Fprintf(out, "%d to watch, %d watched\n", result.ToWatchCount, result.WatchedCount)
				return nil
			})
		},
	}
}

func newUnwatchedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unwatched <position or title>",
		Short: "Move a watched movie back to the to-watch list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.TrimSpace(strings.Join(args, " "))
			if ref == "" {
				return errors.New("a list position or title is required")
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
				result, err := eng.MarkUnwatched(cctx, groupID, participant, ref)
				if err != nil {
					if errors.Is(err, watchlist.ErrNotWatched) {
						return fmt.Errorf("that movie has not been watched yet")
					}
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Moved %q back to the to-watch list\n", result.Title)
				fmt.Fprintf(out, "%d to watch, %d watched\n", result.ToWatchCount, result.WatchedCount)
				return nil
			})
		},
	}
}
