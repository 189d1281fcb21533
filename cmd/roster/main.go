// Package main is the entry point for the roster CLI.
//
// roster runs an interactive menu for keeping a list of people in memory.
// Records live only as long as the process; a YAML file can preload some.
//
// Usage:
//
//	roster run                      # Start the menu with the seed records
//	roster run -c roster.yaml       # Start the menu from a config file
//	roster validate -c roster.yaml  # Validate configuration
//	roster version                  # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "An interactive in-memory list of people",
	Long: `roster keeps a list of people (last name, first name, age) in memory
and lets you add, list and remove them through a numbered menu.

Quick start:
  1. Run: roster run
  2. Choose 1 to add, 2 to list, 3 to remove, 4 to quit

Example config:
  seed: true
  on_missing_remove: report
  records:
    - last_name: Curie
      first_name: Marie
      age: 66`,
	SilenceUsage: true,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this roster binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roster %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
