package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskshell/internal/fonts"
	"deskshell/internal/options"
)

func newFontsCommand(ctx *commandContext) *cobra.Command {
	var fixedWidth bool
	var fallback string

	cmd := &cobra.Command{
		Use:   "fonts [candidate...]",
		Short: "Show the selected fonts, or pick one from candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOptions(func(opts *options.Options) error {
				out := cmd.OutOrStdout()
				if len(args) > 0 {
					if fallback == "" {
						fallback = fonts.GenericSansSerif
						if fixedWidth {
							fallback = fonts.GenericMonospace
						}
					}
					fmt.Fprintln(out, opts.SelectFont(args, fallback, fixedWidth).String())
					return nil
				}

				rows := [][]string{
					fontRow(opts, "proportional", options.KeyProportionalFont, opts.ProportionalFont()),
					fontRow(opts, "fixed width", options.KeyFixedWidthFont, opts.FixedWidthFont()),
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Kind", "Font", "Source"},
					rows,
					nil,
					shouldColorize(out),
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&fixedWidth, "fixed-width", false, "Only accept monospaced candidates")
	cmd.Flags().StringVar(&fallback, "fallback", "", "Generic family used when no candidate is installed")
	return cmd
}

func fontRow(opts *options.Options, kind, key string, choice fonts.Choice) []string {
	source := options.SourceDetected
	if opts.Settings().Contains(key) {
		source = options.SourceStored
	} else if choice.Generic {
		source = options.SourceDefault
	}
	return []string{kind, choice.String(), string(source)}
}
