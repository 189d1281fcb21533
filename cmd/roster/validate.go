package main

import (
	"fmt"

	"github.com/jpalmerr/roster"
	"github.com/jpalmerr/roster/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without starting a session.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a roster configuration file without starting a session.

This command parses the YAML, expands environment variables, and rejects
unknown keys and duplicate records.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  roster validate -c roster.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seedCount := 0
	if cfg.SeedEnabled() {
		seedCount = len(roster.SeedRecords())
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Missing record: %s\n", cfg.OnMissingRemove.MissingPolicy())
	fmt.Printf("  Records:        %d seed + %d from file = %d total\n",
		seedCount, len(cfg.Records), seedCount+len(cfg.Records))

	return nil
}
