package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var contentFlag string

	ctx := newCommandContext(&configFlag, &contentFlag)

	rootCmd := &cobra.Command{
		Use:           "weddingstory",
		Short:         "An animated wedding invitation for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStory(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&contentFlag, "content", "", "Invitation content file (YAML) merged over the built-in text")

	rootCmd.AddCommand(newICSCommand(ctx))
	rootCmd.AddCommand(newLinksCommand(ctx))

	return rootCmd
}
