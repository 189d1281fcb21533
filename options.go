package roster

import (
	"errors"
	"io"
	"log/slog"
)

// sessionConfig holds mutable state during Session construction.
type sessionConfig struct {
	input           io.Reader
	output          io.Writer
	logger          *slog.Logger
	records         []Record
	missingPolicy   MissingPolicy
	changeCallbacks []func(Change)
}

// Option is a function that configures a [Session] during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
type Option func(*sessionConfig) error

// WithInput sets where menu choices and record fields are read from.
// Defaults to os.Stdin.
//
// Returns an error if r is nil.
func WithInput(r io.Reader) Option {
	return func(cfg *sessionConfig) error {
		if r == nil {
			return errors.New("input cannot be nil")
		}
		cfg.input = r
		return nil
	}
}

// WithOutput sets where the menu, prompts and listings are written.
// Defaults to os.Stdout.
//
// Returns an error if w is nil.
func WithOutput(w io.Writer) Option {
	return func(cfg *sessionConfig) error {
		if w == nil {
			return errors.New("output cannot be nil")
		}
		cfg.output = w
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the session.
//
// Log records are diagnostics and never appear in the menu output.
// If not specified, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	s, err := roster.New(roster.WithLogger(logger))
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *sessionConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithRecords adds records the session starts with.
//
// Can be called multiple times. Duplicates are collapsed: equal records are
// stored once.
func WithRecords(records ...Record) Option {
	return func(cfg *sessionConfig) error {
		cfg.records = append(cfg.records, records...)
		return nil
	}
}

// WithSeed adds the records returned by [SeedRecords].
func WithSeed() Option {
	return WithRecords(SeedRecords()...)
}

// WithMissingPolicy sets what removing an absent record does.
// Defaults to [MissingReport].
//
// Returns an error for a value other than [MissingReport] or [MissingFatal].
func WithMissingPolicy(p MissingPolicy) Option {
	return func(cfg *sessionConfig) error {
		if p != MissingReport && p != MissingFatal {
			return errors.New("missing policy must be 'report' or 'fatal'")
		}
		cfg.missingPolicy = p
		return nil
	}
}

// WithChangeCallback registers a function to be called after every record
// the session adds or removes.
//
// Records passed at construction through [WithRecords] or [WithSeed] do not
// trigger callbacks. Multiple callbacks may be registered; they execute in
// registration order.
//
// Callbacks are invoked synchronously from the menu loop. Panics within
// callbacks are recovered and logged; they do not end the session.
//
// Example:
//
//	s, err := roster.New(
//	    roster.WithChangeCallback(func(c roster.Change) {
//	        log.Printf("%s %s", c.Kind, c.Record)
//	    }),
//	)
//
// Nil callbacks are silently ignored.
func WithChangeCallback(cb func(Change)) Option {
	return func(cfg *sessionConfig) error {
		if cb != nil {
			cfg.changeCallbacks = append(cfg.changeCallbacks, cb)
		}
		return nil
	}
}
