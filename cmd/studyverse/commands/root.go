// Package commands defines the studyverse CLI.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configPath string

	// Define root command
	rootCmd := &cobra.Command{
		Use:           "studyverse",
		Short:         "StudyVerse productivity tracker API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file, e.g. ./config.yaml")

	// Add subcommands
	rootCmd.AddCommand(
		NewServeCommand(&configPath),
		NewVersionCommand(),
	)

	return rootCmd
}
