package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpalmerr/roster"
	"github.com/jpalmerr/roster/config"
	"github.com/spf13/cobra"
)

// newLogger creates a JSON logger for CLI use.
// Logs go to stderr so they never mix with the menu on stdout.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// runCmd starts an interactive session.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive menu",
	Long: `Start an interactive roster session on the terminal.

The session:
  - Prints the startup demonstrations (a mapping with a misspelt key and
    the seed set) unless --no-demo
  - Starts from the four seed records unless --no-seed or "seed: false"
  - Adds any records listed in the config file
  - Reads menu choices from stdin until you quit

Any answer other than 1-4 at the menu prints "Error" and ends the session.
Removing a record that does not exist prints a notice, or ends the session
with exit code 1 when --fatal-missing (or "on_missing_remove: fatal") is set.
Ctrl-C ends the session at any prompt.

Example:
  roster run
  roster run -c roster.yaml --no-demo`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to config file")
	runCmd.Flags().Bool("no-demo", false, "skip the startup demonstrations before the menu")
	runCmd.Flags().Bool("no-seed", false, "start without the seed records")
	runCmd.Flags().Bool("fatal-missing", false, "end the session when removing a missing record")
	runCmd.Flags().BoolP("verbose", "v", false, "log session activity to stderr")
}

func runRun(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	cfg := config.Default()
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Info("config loaded", "path", configFile, "records", len(cfg.Records))
	}

	// flags override the config file
	if noSeed, _ := cmd.Flags().GetBool("no-seed"); noSeed {
		seed := false
		cfg.Seed = &seed
	}
	if fatal, _ := cmd.Flags().GetBool("fatal-missing"); fatal {
		cfg.OnMissingRemove = config.Policy(roster.MissingFatal)
	}

	out := cmd.OutOrStdout()

	if noDemo, _ := cmd.Flags().GetBool("no-demo"); !noDemo {
		if err := roster.WriteDemo(out); err != nil {
			return fmt.Errorf("failed to write demo: %w", err)
		}
	}

	opts := append(config.BuildOptions(cfg),
		roster.WithInput(cmd.InOrStdin()),
		roster.WithOutput(out),
		roster.WithLogger(logger),
	)

	session, err := roster.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("session error: %w", err)
	}
	return nil
}
