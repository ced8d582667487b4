package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/engine"
)

func newRandomCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Pick a random movie from the to-watch list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := ctx.groupID()
			if err != nil {
				return err
			}

			return ctx.withEngine(func(cctx context.Context, eng *engine.Engine) error {
				item, err := eng.RandomPick(cctx, groupID)
				if err != nil {
					if errors.Is(err, engine.ErrEmptyList) {
						return errors.New("the to-watch list is empty; add a movie first")
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tonight's pick: %s%s\n", item.Title, itemSuffix(item))
				return nil
			})
		},
	}
}
