package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the basic CLI.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "basic",
		Short: "Request binding demo server and tools",
		Long: `basic serves the request binding demo application and binds
ad-hoc query strings against field specs from the command line.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newBindCommand())

	return rootCmd
}
