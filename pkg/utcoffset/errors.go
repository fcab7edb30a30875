package utcoffset

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Hard errors returned directly to the caller.
var (
	// ErrUninitialized is returned by Cache.Get before any offset has been stored.
	ErrUninitialized = errors.New("the global offset is not initialized")
	// ErrWriteLock is returned when the cache is busy and a write would have to wait.
	ErrWriteLock = errors.New("unable to acquire a write lock")
	// ErrInvalidOffsetString is returned when an offset string does not match [+|-]HH[:]MM.
	ErrInvalidOffsetString = errors.New("unable to parse offset string")
	// ErrOffsetOutOfRange is returned when a zone offset falls outside -12:59..+14:59.
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrDatetimeOverflow is returned when applying an offset leaves the representable time range.
	ErrDatetimeOverflow = errors.New("datetime overflow")
	// ErrTimeFormat is returned when a timestamp cannot be rendered in the fixed layout.
	ErrTimeFormat = errors.New("unable to format timestamp")
)

// ErrNativeOffset is recorded when the host local zone cannot be queried.
var ErrNativeOffset = errors.New("unable to query the host local offset")

// InvalidOffsetHoursError is returned when the hour component is outside [-12,14].
type InvalidOffsetHoursError struct {
	Hours int
}

func (e *InvalidOffsetHoursError) Error() string {
	return fmt.Sprintf("invalid offset hours: %d", e.Hours)
}

// InvalidOffsetMinutesError is returned when the minute component is outside [0,59].
type InvalidOffsetMinutesError struct {
	Minutes int
}

func (e *InvalidOffsetMinutesError) Error() string {
	return fmt.Sprintf("invalid offset minutes: %d", e.Minutes)
}

// CommandErrorKind classifies a platform command failure.
type CommandErrorKind int

const (
	// CommandLaunch means the process could not be started.
	CommandLaunch CommandErrorKind = iota
	// CommandExit means the process exited with a non-zero status.
	CommandExit
	// CommandNonUTF8 means the process wrote bytes that are not valid UTF-8.
	CommandNonUTF8
	// CommandParse means the output was not a recognizable offset.
	CommandParse
)

func (k CommandErrorKind) String() string {
	switch k {
	case CommandLaunch:
		return "launch"
	case CommandExit:
		return "exit"
	case CommandNonUTF8:
		return "non-utf8 output"
	case CommandParse:
		return "parse"
	default:
		return fmt.Sprintf("CommandErrorKind(%d)", int(k))
	}
}

// CommandError is recorded when the platform command fallback fails.
type CommandError struct {
	Kind    CommandErrorKind
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("error executing command to get system time (%s): %s", e.Command, e.Kind)
	if e.Output != "" {
		msg += fmt.Sprintf(" %q", e.Output)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Errors is the ordered list of soft errors collected by one resolution.
// The zero value is an empty list.
type Errors struct {
	list *multierror.Error
}

func (e *Errors) push(err error) {
	e.list = multierror.Append(e.list, err)
}

// Len returns the number of recorded errors.
func (e Errors) Len() int {
	return len(e.list.WrappedErrors())
}

// All returns the recorded errors in the order they occurred.
func (e Errors) All() []error {
	return e.list.WrappedErrors()
}

// Err returns the recorded errors combined into one, or nil when empty.
func (e Errors) Err() error {
	return e.list.ErrorOrNil()
}
