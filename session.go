package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jpalmerr/roster/internal/prompt"
	"github.com/jpalmerr/roster/internal/store"
)

var (
	// ErrDuplicate reports that an equal record is already stored.
	ErrDuplicate = store.ErrDuplicate

	// ErrNotFound reports that no equal record is stored.
	ErrNotFound = store.ErrNotFound
)

// menu is printed before every choice.
const menu = `
Menu:
1. Add a name
2. List all names
3. Remove a name
4. Quit
`

const choicePrompt = "Choose an option (1-4): "

// Record field prompts, in the order they are asked.
const (
	lastNamePrompt  = "Last name: "
	firstNamePrompt = "First name: "
	agePrompt       = "Age: "
)

// ChangeKind identifies the mutation reported by a [Change].
type ChangeKind string

const (
	// ChangeAdded is reported after a record was added.
	ChangeAdded ChangeKind = "added"

	// ChangeRemoved is reported after a record was removed.
	ChangeRemoved ChangeKind = "removed"
)

// Change describes a record added or removed during [Session.Run].
type Change struct {
	Kind   ChangeKind
	Record Record
}

// Session is an interactive menu over a duplicate-free set of records.
//
// A Session is created with [New] and driven with [Session.Run]. It is not
// meant to be run more than once or from several goroutines.
type Session struct {
	store           *store.MemoryStore[Record]
	prompt          *prompt.Reader
	out             io.Writer
	logger          *slog.Logger
	missingPolicy   MissingPolicy
	changeCallbacks []func(Change)
	state           State
}

// New creates a new [Session] with the given options.
//
// Defaults:
//   - Input: os.Stdin
//   - Output: os.Stdout
//   - Records: none (use [WithSeed] for the built-in ones)
//   - Missing policy: [MissingReport]
//
// Returns an error if any option is invalid.
//
// Example:
//
//	s, err := roster.New(
//	    roster.WithSeed(),
//	    roster.WithMissingPolicy(roster.MissingFatal),
//	)
func New(opts ...Option) (*Session, error) {
	cfg := &sessionConfig{
		input:         os.Stdin,
		output:        os.Stdout,
		missingPolicy: MissingReport,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	records := store.NewMemoryStore[Record]()
	for _, r := range cfg.records {
		if err := records.Add(r); err != nil {
			logger.Debug("initial record collapsed", "record", r.String())
		}
	}

	s := &Session{
		store:           records,
		prompt:          prompt.NewReader(cfg.input, cfg.output),
		out:             cfg.output,
		logger:          logger,
		missingPolicy:   cfg.missingPolicy,
		changeCallbacks: cfg.changeCallbacks,
		state:           StateAwaitingChoice,
	}

	// registered after the initial records so they produce no callbacks
	records.OnChange(s.handleChange)

	return s, nil
}

// Run shows the menu and executes choices until the session terminates.
//
// Run returns nil when the user quits, answers with an unknown choice,
// input ends, or ctx is cancelled, including while a prompt is waiting for
// input. With [MissingFatal], removing an absent record ends the session
// with an error wrapping [ErrNotFound]. Errors writing to the output or
// reading the input are returned as well.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started", "records", s.store.Len(), "missing_policy", string(s.missingPolicy))

	for s.state != StateTerminated {
		if ctx.Err() != nil {
			s.logger.Info("session cancelled")
			s.state = StateTerminated
			break
		}

		if err := s.step(ctx); err != nil {
			s.state = StateTerminated
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				s.logger.Info("session cancelled", "pending_state", s.pendingState(err))
				break
			}
			if errors.Is(err, io.EOF) {
				s.logger.Info("input closed")
				break
			}
			s.logger.Error("session failed", "error", err)
			return err
		}
	}

	s.logger.Info("session ended", "records", s.store.Len())
	return nil
}

// pendingState names the prompt abandoned by a cancellation, for logging.
func (s *Session) pendingState(err error) string {
	var pe *pendingError
	if errors.As(err, &pe) {
		return pe.state.String()
	}
	return StateAwaitingChoice.String()
}

// pendingError records which state a read was interrupted in.
type pendingError struct {
	state State
	err   error
}

func (e *pendingError) Error() string { return e.state.String() + ": " + e.err.Error() }
func (e *pendingError) Unwrap() error { return e.err }

// step runs one iteration of the menu loop, from showing the menu back to
// awaiting the next choice or to termination.
func (s *Session) step(ctx context.Context) error {
	s.state = StateAwaitingChoice

	if _, err := io.WriteString(s.out, menu); err != nil {
		return fmt.Errorf("failed to write menu: %w", err)
	}
	choice, err := s.prompt.Line(ctx, choicePrompt)
	if err != nil {
		return err
	}

	cmd := ParseCommand(choice)
	s.logger.Debug("menu choice", "choice", choice, "command", cmd.String())

	switch cmd {
	case CommandAdd:
		s.state = StateAdding
		err = s.add(ctx)
	case CommandList:
		s.state = StateListing
		err = s.list()
	case CommandRemove:
		s.state = StateRemoving
		err = s.remove(ctx)
	case CommandQuit:
		s.state = StateTerminated
		return s.println("Quit")
	default:
		s.logger.Warn("unrecognized menu choice", "choice", choice)
		s.state = StateTerminated
		return s.println("Error")
	}

	if err != nil {
		return err
	}
	s.state = StateAwaitingChoice
	return nil
}

// add reads a record and stores it unless an equal one is present.
func (s *Session) add(ctx context.Context) error {
	if err := s.println("Adding a name"); err != nil {
		return err
	}

	r, err := s.readRecord(ctx)
	if err != nil {
		return err
	}

	if s.store.Contains(r) {
		s.logger.Info("duplicate record rejected", "record", r.String())
		return s.println("This record is already present")
	}
	if err := s.store.Add(r); err != nil {
		return fmt.Errorf("add %s: %w", r, err)
	}
	return nil
}

// list prints every record, one per line.
func (s *Session) list() error {
	if err := s.println("Listing all names:"); err != nil {
		return err
	}
	for _, r := range s.store.List() {
		if err := s.println(r.String()); err != nil {
			return err
		}
	}
	return nil
}

// remove reads a record and deletes the equal one.
func (s *Session) remove(ctx context.Context) error {
	if err := s.println("Removing a name"); err != nil {
		return err
	}

	r, err := s.readRecord(ctx)
	if err != nil {
		return err
	}

	err = s.store.Remove(r)
	if errors.Is(err, store.ErrNotFound) {
		if s.missingPolicy == MissingFatal {
			return fmt.Errorf("remove %s: %w", r, err)
		}
		s.logger.Info("record to remove not found", "record", r.String())
		return s.printf("No such record: %s\n", r)
	}
	if err != nil {
		return fmt.Errorf("remove %s: %w", r, err)
	}

	return s.printf("The name %s was removed successfully\n", r.LastName())
}

// readRecord prompts for the three record fields.
func (s *Session) readRecord(ctx context.Context) (Record, error) {
	fields, err := s.prompt.Fields(ctx, lastNamePrompt, firstNamePrompt, agePrompt)
	if err != nil {
		return Record{}, &pendingError{state: s.state, err: err}
	}
	return NewRecord(fields[0], fields[1], Age(fields[2])), nil
}

// handleChange logs a store mutation and forwards it to change callbacks.
func (s *Session) handleChange(c store.Change[Record]) {
	change := Change{
		Kind:   ChangeKind(c.Kind),
		Record: c.Item,
	}

	s.logger.Debug("record changed", "kind", string(change.Kind), "record", change.Record.String())

	for _, cb := range s.changeCallbacks {
		invokeCallbackSafe(cb, change, s.logger)
	}
}

// invokeCallbackSafe calls a change callback with panic recovery.
// Panics are logged with a correlation ID but do not propagate.
func invokeCallbackSafe(cb func(Change), change Change, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("change callback panicked",
				"correlation_id", uuid.NewString(),
				"panic", fmt.Sprintf("%v", r),
				"kind", string(change.Kind),
				"record", change.Record.String(),
			)
		}
	}()
	cb(change)
}

// Records returns the current records in insertion order.
//
// The returned slice is a copy; modifying it does not affect the session.
func (s *Session) Records() []Record {
	return s.store.List()
}

// Len returns the number of records.
func (s *Session) Len() int {
	return s.store.Len()
}

// Contains reports whether a record equal to r is stored.
func (s *Session) Contains(r Record) bool {
	return s.store.Contains(r)
}

// State returns the current position in the menu loop.
func (s *Session) State() State {
	return s.state
}

// println writes a line to the session output.
func (s *Session) println(line string) error {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// printf writes formatted text to the session output.
func (s *Session) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
