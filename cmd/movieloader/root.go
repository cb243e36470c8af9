package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "movieloader",
		Short:         "Command line tools for Movieland API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newInitDBCommand(ctx))
	rootCmd.AddCommand(newSeedDemoCommand(ctx))
	rootCmd.AddCommand(newLoadCSVCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))

	return rootCmd
}
