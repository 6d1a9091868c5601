package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskshell/internal/options"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of one option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOptions(func(opts *options.Options) error {
				row, err := opts.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", displayValue(row.Value), row.Source)
				return nil
			})
		},
	}
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store an option",
		Long: "Store an option. Booleans accept true/false, lists are comma-separated,\n" +
			"and mainwindow/bounds takes x,y,width,height. An empty font name removes\n" +
			"the font override.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOptions(func(opts *options.Options) error {
				if err := opts.SetText(args[0], args[1]); err != nil {
					return fmt.Errorf("set %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
				return nil
			})
		},
	}
}

func newUnsetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a stored option so its default applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOptions(func(opts *options.Options) error {
				if err := opts.Unset(args[0]); err != nil {
					return fmt.Errorf("unset %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}
