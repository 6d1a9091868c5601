package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "deskopts",
		Short:         "Inspect and edit desktop shell runtime options",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.settings, "settings", "", "Settings database path (overrides paths.settings_db)")
	rootCmd.PersistentFlags().StringVar(&flags.platform, "platform", "", "Target platform: windows, macos or linux (overrides platform.target)")
	rootCmd.PersistentFlags().BoolVar(&flags.diagnostics, "run-diagnostics", false, "Resolve options as the shell would in diagnostics mode")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newSetCommand(ctx))
	rootCmd.AddCommand(newUnsetCommand(ctx))
	rootCmd.AddCommand(newPathsCommand(ctx))
	rootCmd.AddCommand(newFontsCommand(ctx))
	rootCmd.AddCommand(newPortCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
