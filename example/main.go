// Scripted roster session.
//
// Usage:
//
//	go run ./example
//
// The same records can be loaded by the CLI:
//
//	go run ./cmd/roster run -c example/roster.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jpalmerr/roster"
)

func main() {
	// add a duplicate, remove a seed record, list, quit
	script := strings.Join([]string{
		"1", "Martin", "Pierre", "23",
		"1", "Curie", "Marie", "66",
		"3", "Doe", "John", "42",
		"2",
		"4",
	}, "\n") + "\n"

	if err := roster.WriteDemo(os.Stdout); err != nil {
		slog.Error("failed to write demo", "error", err)
		os.Exit(1)
	}

	s, err := roster.New(
		roster.WithSeed(),
		roster.WithInput(strings.NewReader(script)),
		roster.WithChangeCallback(func(c roster.Change) {
			fmt.Printf("  [%s] %s\n", c.Kind, c.Record)
		}),
	)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		os.Exit(1)
	}

	if err := s.Run(context.Background()); err != nil {
		slog.Error("session error", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\n%d records left\n", s.Len())
}
