// Package cmd provides the command-line interface for the Nexus CLI application.
// It implements subcommands for authentication, profile management, and the
// photo feed using the Cobra CLI framework. The package handles command
// parsing, execution, and terminal output with pterm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the Nexus CLI application.
var rootCmd = &cobra.Command{
	Use:           "nexus",
	Short:         "Nexus CLI, a terminal client for the Nexus photo feed",
	Long:          `Nexus is a terminal client for the Nexus social photo-feed service: browse the feed, publish posts, and manage your profile from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("nexus %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
