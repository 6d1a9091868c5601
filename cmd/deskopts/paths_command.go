package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskshell/internal/options"
	"deskshell/internal/paths"
)

func newPathsCommand(ctx *commandContext) *cobra.Command {
	var scratchDefault string
	var cleanScratch bool

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show resolved filesystem locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withOptions(func(opts *options.Options) error {
				out := cmd.OutOrStdout()
				scratch := opts.ScratchTempDir(scratchDefault)
				if cleanScratch {
					opts.CleanUpScratchTempDir()
					fmt.Fprintln(out, "Scratch cleanup requested")
				}

				entries := []struct {
					name     string
					resolved paths.ResolvedPath
				}{
					{"executable", opts.ExecutablePath()},
					{"supporting files", opts.SupportingFilePath()},
					{"scripts", opts.ScriptsPath()},
					{"resources", opts.ResourcesPath()},
					{"docs", opts.DocsPath()},
					{"scratch temp", scratch},
					{"url opener", opts.URLOpenerPath()},
					{"inverse search", opts.InverseSearchPath()},
				}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{entry.name, displayValue(entry.resolved.Path), entry.resolved.Strategy.String()})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Location", "Path", "Strategy"},
					rows,
					nil,
					shouldColorize(out),
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&scratchDefault, "scratch-default", "", "Directory reported when no scratch root is usable")
	cmd.Flags().BoolVar(&cleanScratch, "clean-scratch", false, "Remove the scratch temp directory first unless another instance holds it")
	return cmd
}
