package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/engine"
)

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest new movies based on the group's taste",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := ctx.groupID()
			if err != nil {
				return err
			}

			return ctx.withEngine(func(cctx context.Context, eng *engine.Engine) error {
				results, err := eng.Suggest(cctx, groupID, limit)
				if err != nil {
					if errors.Is(err, engine.ErrMetadataDisabled) {
						return errors.New("suggestions need a TMDB API key; set tmdb.api_key or export TMDB_API_KEY")
					}
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No suggestions right now")
					return nil
				}

				out := cmd.OutOrStdout()
				for i, result := range results {
					line := result.Title
					if year := result.Year(); year > 0 {
						line = fmt.Sprintf("%s (%d)", line, year)
					}
					fmt.Fprintf(out, "%d. %s\n", i+1, line)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum number of suggestions")
	return cmd
}
