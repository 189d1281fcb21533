// Package roster provides a small interactive console for keeping a list of
// people in memory.
//
// A [Session] owns a duplicate-free collection of [Record] values and drives
// a numbered text menu over an input and an output stream. Records are
// compared field by field: two records with the same last name, first name
// and age are the same record, and the session never stores both.
//
// # Quick Start
//
// Run the menu on the terminal, starting from the built-in seed records:
//
//	s, _ := roster.New(roster.WithSeed())
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	s.Run(ctx) // blocks until the user quits
//
// # Configuration
//
// Sessions use the functional options pattern:
//
//	s, err := roster.New(
//	    roster.WithInput(strings.NewReader("2\n4\n")),
//	    roster.WithOutput(&buf),
//	    roster.WithRecords(roster.NewRecord("Curie", "Marie", roster.AgeFromInt(66))),
//	    roster.WithMissingPolicy(roster.MissingFatal),
//	    roster.WithLogger(logger),
//	)
//
// # Menu
//
// The menu offers four choices:
//
//   - 1: read a record and add it, unless an equal record is already present
//   - 2: list every record, one per line, in insertion order
//   - 3: read a record and remove the equal one
//   - 4: quit
//
// Any other answer prints an error and ends the session. What happens when
// the record to remove does not exist is set by [MissingPolicy].
//
// # Ages
//
// Ages are kept as the text the user typed. Integer ages, such as those of
// the seed records, are converted with [AgeFromInt], so a seed age of 42 and
// a typed "42" compare equal.
//
// # Architecture
//
// The session is built on two internal packages:
//
//   - internal/store: Duplicate-free in-memory collection with change notification
//   - internal/prompt: Line-based prompting for free-form answers
//
// The config package loads an optional YAML file with extra records and the
// session policy, and cmd/roster wraps everything in a CLI.
package roster
