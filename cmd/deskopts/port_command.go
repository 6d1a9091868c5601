package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskshell/internal/options"
)

func newPortCommand(ctx *commandContext) *cobra.Command {
	var regenerate bool

	cmd := &cobra.Command{
		Use:   "port",
		Short: "Show the worker endpoint this process would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOptions(func(opts *options.Options) error {
				port := opts.PortNumber()
				if regenerate {
					port = opts.NewPortNumber()
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Port: %d\n", port)
				if peer := opts.LocalPeer(); peer != "" {
					fmt.Fprintf(out, "Local peer: %s\n", peer)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&regenerate, "new", false, "Discard the first endpoint and draw another")
	return cmd
}
