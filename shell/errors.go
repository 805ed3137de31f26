package shell

import (
	"errors"
	"fmt"
)

// Sentinel errors for shell lookups.
var (
	// ErrUnknownCommand indicates a command or help topic that does not exist.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument indicates a command was called without a required argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidValue indicates an argument that could not be parsed.
	ErrInvalidValue = errors.New("invalid value")
)

// ErrorKind categorizes shell errors.
type ErrorKind int

const (
	// KindUnknownCommand indicates an unknown command or help topic.
	KindUnknownCommand ErrorKind = iota
	// KindMissingArgument indicates a required argument was not provided.
	KindMissingArgument
	// KindInvalidValue indicates an option value that failed to parse.
	KindInvalidValue
)

// Error represents a failure detected while dispatching or running a
// built-in command.
type Error struct {
	Kind    ErrorKind
	Value   string // The offending name or text
	Message string // Additional context
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownCommand:
		return fmt.Sprintf("unknown command: %s", e.Value)
	case KindMissingArgument:
		return e.Message
	case KindInvalidValue:
		if e.Cause != nil {
			return fmt.Sprintf("can't parse option: %s: %v", e.Value, e.Cause)
		}
		return fmt.Sprintf("can't parse option: %s", e.Value)
	default:
		return fmt.Sprintf("shell error: %s", e.Value)
	}
}

// Is matches the sentinel error for the error's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindUnknownCommand:
		return target == ErrUnknownCommand
	case KindMissingArgument:
		return target == ErrMissingArgument
	case KindInvalidValue:
		return target == ErrInvalidValue
	}
	return false
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newUnknownCommandError(name string) error {
	return &Error{Kind: KindUnknownCommand, Value: name}
}

// NewMissingArgumentError creates the error a handler returns when a required
// argument is absent. msg is shown as is.
func NewMissingArgumentError(msg string) error {
	return &Error{Kind: KindMissingArgument, Message: msg}
}

func newInvalidValueError(value string, cause error) error {
	return &Error{Kind: KindInvalidValue, Value: value, Cause: cause}
}
