package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskshell/internal/options"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every option with its effective value and source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOptions(func(opts *options.Options) error {
				out := cmd.OutOrStdout()
				rows := make([][]string, 0, len(options.Keys()))
				for _, row := range opts.Snapshot() {
					rows = append(rows, []string{row.Key, displayValue(row.Value), string(row.Source)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Key", "Value", "Source"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
					shouldColorize(out),
				))
				fmt.Fprintf(out, "Platform: %s\n", opts.Platform())
				fmt.Fprintf(out, "Diagnostics: %s\n", yesNo(opts.RunDiagnostics()))
				return nil
			})
		},
	}
}

func displayValue(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
