package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/basket"
	"github.com/danchopon/FeetForTarantino/internal/engine"
)

func newBasketCommand(ctx *commandContext) *cobra.Command {
	basketCmd := &cobra.Command{
		Use:   "basket",
		Short: "Collect poll candidates from the group",
	}

	basketCmd.AddCommand(newBasketAddCommand(ctx))
	basketCmd.AddCommand(newBasketRemoveCommand(ctx))
	basketCmd.AddCommand(newBasketListCommand(ctx))
	basketCmd.AddCommand(newBasketClearCommand(ctx))

	return basketCmd
}

func newBasketAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <positions...>",
		Short: "Add to-watch list positions to your basket",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ordinals, err := parseOrdinals(args)
			if err != nil {
				return err
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
				result, err := eng.BasketAdd(cctx, groupID, participant, ordinals)
				if err != nil {
					var invalid *basket.InvalidOrdinalsError
					if errors.As(err, &invalid) {
						return fmt.Errorf("positions %s are not on the to-watch list (it has %d movies); nothing was added",
							formatOrdinals(invalid.Offending), invalid.Length)
					}
					return err
				}

				out := cmd.OutOrStdout()
				if len(result.Added) > 0 {
					fmt.Fprintf(out, "Added %s to your basket\n", formatOrdinals(result.Added))
				}
				if len(result.AlreadyPresent) > 0 {
					fmt.Fprintf(out, "Already in your basket: %s\n", formatOrdinals(result.AlreadyPresent))
				}
				return nil
			})
		},
	}
}

func newBasketRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [positions...]",
		Short: "Remove positions from your basket, or empty it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var ordinals []int
			if len(args) > 0 {
				parsed, err := parseOrdinals(args)
				if err != nil {
					return err
				}
				ordinals = parsed
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
				removed, err := eng.BasketRemove(cctx, groupID, participant, ordinals)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d basket entries\n", removed)
				return nil
			})
		},
	}
}

func newBasketListCommand(ctx *commandContext) *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show basket selections for the group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := ctx.groupID()
			if err != nil {
				return err
			}
			participant, err := ctx.participant()
			if err != nil {
				return err
			}

			return ctx.withEngine(func(cctx context.Context, eng *engine.Engine) error {
				out := cmd.OutOrStdout()
				if mine {
					ordinals, err := eng.BasketMine(cctx, groupID, participant)
					if err != nil {
						return err
					}
					if len(ordinals) == 0 {
						fmt.Fprintln(out, "Your basket is empty")
						return nil
					}
					fmt.Fprintf(out, "Your basket: %s\n", formatOrdinals(ordinals))
					return nil
				}

				selections, err := eng.BasketAll(cctx, groupID)
				if err != nil {
					return err
				}
				if len(selections) == 0 {
					fmt.Fprintln(out, "The basket is empty")
					return nil
				}
				for _, sel := range selections {
					fmt.Fprintf(out, "%s: %s\n", sel.UserName, formatOrdinals(sel.Ordinals))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "Show only your own selections")
	return cmd
}

func newBasketClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the basket for every participant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := ctx.groupID()
			if err != nil {
				return err
			}
			participant, err := ctx.participant()
			if err != nil {
				return err
			}

			return ctx.withEngine(func(cctx context.Context, eng *engine.Engine) error {
				removed, err := eng.BasketClearGroup(cctx, groupID, participant)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d basket entries\n", removed)
				return nil
			})
		},
	}
}
