package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/config"
	"github.com/danchopon/FeetForTarantino/internal/engine"
	"github.com/danchopon/FeetForTarantino/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var format string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export both lists as JSON or Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "markdown" {
				return fmt.Errorf("unsupported format %q (want json or markdown)", format)
			}

			groupID, err := ctx.groupID()
			if err != nil {
				return err
			}

			return ctx.withEngine(func(cctx context.Context, eng *engine.Engine) error {
				snapshot, err := export.Build(cctx, eng.Store(), groupID)
				if err != nil {
					return err
				}

				var out io.Writer = cmd.OutOrStdout()
				if outputPath != "" {
					path, err := config.ExpandPath(outputPath)
					if err != nil {
						return fmt.Errorf("resolve output path: %w", err)
					}
					file, err := os.Create(path)
					if err != nil {
						return fmt.Errorf("create output file: %w", err)
					}
					defer file.Close()
					out = file
				}

				if format == "json" {
					return snapshot.WriteJSON(out)
				}
				return snapshot.WriteMarkdown(out)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or markdown")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
