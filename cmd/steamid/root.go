package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "steamid",
		Short:         "Decode, convert, and inspect Steam identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newConvertCommand())

	return rootCmd
}
