package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/engine"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <position or title>",
		Aliases: []string{"rm"},
		Short:   "Remove a movie from either list",
		Args:    cobra.MinimumNArgs(1),
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
				result, err := eng.RemoveMovie(cctx, groupID, participant, ref)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q (%s)\n", result.Title, result.Status)
				return nil
			})
		},
	}
}
