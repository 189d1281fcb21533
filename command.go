package roster

import (
	"fmt"
	"strings"
)

// Command is a menu choice.
type Command int

const (
	// CommandUnknown is any answer that is not a menu entry.
	CommandUnknown Command = iota

	// CommandAdd reads a record and adds it.
	CommandAdd

	// CommandList prints every record.
	CommandList

	// CommandRemove reads a record and removes it.
	CommandRemove

	// CommandQuit ends the session.
	CommandQuit
)

// ParseCommand maps a raw menu answer to a [Command].
//
// The answer must match exactly; " 1" or "1 " is [CommandUnknown].
func ParseCommand(choice string) Command {
	switch choice {
	case "1":
		return CommandAdd
	case "2":
		return CommandList
	case "3":
		return CommandRemove
	case "4":
		return CommandQuit
	default:
		return CommandUnknown
	}
}

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "add"
	case CommandList:
		return "list"
	case CommandRemove:
		return "remove"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// State is the position of a [Session] in its menu loop.
type State int

const (
	// StateAwaitingChoice is the initial state: the menu is shown and a choice read.
	StateAwaitingChoice State = iota

	// StateAdding is entered on [CommandAdd].
	StateAdding

	// StateListing is entered on [CommandList].
	StateListing

	// StateRemoving is entered on [CommandRemove].
	StateRemoving

	// StateTerminated is terminal. It is reached on [CommandQuit], on an
	// unknown choice, at end of input, or on a fatal error.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateAdding:
		return "adding"
	case StateListing:
		return "listing"
	case StateRemoving:
		return "removing"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MissingPolicy decides what removing an absent record does.
type MissingPolicy string

const (
	// MissingReport prints a notice and returns to the menu. This is the default.
	MissingReport MissingPolicy = "report"

	// MissingFatal ends the session with an error wrapping [ErrNotFound].
	MissingFatal MissingPolicy = "fatal"
)

// ParseMissingPolicy converts s to a [MissingPolicy].
// Case is ignored; the empty string is [MissingReport].
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(s) {
	case "", string(MissingReport):
		return MissingReport, nil
	case string(MissingFatal):
		return MissingFatal, nil
	default:
		return "", fmt.Errorf("unknown missing-record policy %q (expected 'report' or 'fatal')", s)
	}
}
