package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/engine"
	"github.com/danchopon/FeetForTarantino/internal/poll"
)

func newPollCommand(ctx *commandContext) *cobra.Command {
	var positions []string
	var fromBasket bool

	cmd := &cobra.Command{
		Use:   "poll [count]",
		Short: "Compose a movie poll from the to-watch list",
		Long: `Compose a movie poll. By default the options are sampled randomly from
the to-watch list. Pass --positions to pick exact list positions, or
--basket to build the poll from everyone's basket selections.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromBasket && len(positions) > 0 {
				return fmt.Errorf("--basket and --positions are mutually exclusive")
			}
			if (fromBasket || len(positions) > 0) && len(args) > 0 {
				return fmt.Errorf("a count only applies to random polls")
			}

			groupID, err := ctx.groupID()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			count := cfg.Poll.DefaultOptions
			if len(args) == 1 {
				count, err = strconv.Atoi(args[0])
				if err != nil || count < 1 {
					return fmt.Errorf("invalid option count %q", args[0])
				}
			}

			return ctx.withEngine(func(cctx context.Context, eng *engine.Engine) error {
				var (
					composed *poll.Poll
					err      error
				)
				switch {
				case fromBasket:
					composed, err = eng.ComposeBasketPoll(cctx, groupID)
				case len(positions) > 0:
					ordinals, parseErr := parseOrdinals(positions)
					if parseErr != nil {
						return parseErr
					}
					composed, err = eng.ComposePollFromOrdinals(cctx, groupID, ordinals)
				default:
					composed, err = eng.ComposeRandomPoll(cctx, groupID, count)
				}
				if err != nil {
					if errors.Is(err, poll.ErrTooFewOptions) {
						return fmt.Errorf("not enough movies for a poll: %w", err)
					}
					return err
				}

				printPoll(cmd.OutOrStdout(), composed)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&positions, "positions", "p", nil, "Exact to-watch list positions for the poll")
	cmd.Flags().BoolVarP(&fromBasket, "basket", "b", false, "Build the poll from the group's basket selections")
	return cmd
}

func printPoll(out io.Writer, p *poll.Poll) {
	fmt.Fprintf(out, "%s\n", p.Question)
	for i, option := range p.Options {
		fmt.Fprintf(out, "  %d. %s\n", i+1, option.Label)
	}
	fmt.Fprintf(out, "poll id: %s\n", p.ID)
}
