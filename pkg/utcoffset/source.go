package utcoffset

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
	"unicode/utf8"

	"github.com/mpyw/utcoffset/internal/osoffset"
)

// Source derives an Offset from the environment.
type Source interface {
	// Name identifies the source in diagnostics.
	Name() string
	// Offset returns the current offset or a soft error.
	Offset(ctx context.Context) (Offset, error)
}

// DefaultSources returns the host local zone query followed by the
// platform command fallback.
func DefaultSources() []Source {
	return []Source{NativeSource{}, CommandSource{}}
}

// NativeSource asks the host for the local zone.
type NativeSource struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

// Name implements Source.
func (NativeSource) Name() string {
	return "native"
}

// Offset implements Source.
func (s NativeSource) Offset(_ context.Context) (Offset, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	_, seconds, err := osoffset.LocalZone(now())
	if err != nil {
		return UTC, fmt.Errorf("%w: %w", ErrNativeOffset, err)
	}

	o, err := FromSeconds(seconds)
	if err != nil {
		return UTC, fmt.Errorf("%w: %w", ErrNativeOffset, err)
	}

	return o, nil
}

// CommandSource runs a platform command and parses the offset it prints.
// The zero value runs osoffset.PlatformCommand.
type CommandSource struct {
	Command osoffset.Command
	Run     osoffset.RunFunc
}

// Name implements Source.
func (CommandSource) Name() string {
	return "command"
}

// Offset implements Source. Every failure is returned as *CommandError.
func (s CommandSource) Offset(ctx context.Context) (Offset, error) {
	c := s.Command
	if c.Name == "" {
		c = osoffset.PlatformCommand()
	}

	run := s.Run
	if run == nil {
		run = osoffset.Run
	}

	stdout, err := run(ctx, c)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return UTC, &CommandError{
				Kind:    CommandExit,
				Command: c.String(),
				Output:  string(exitErr.Stderr),
				Err:     err,
			}
		}

		return UTC, &CommandError{Kind: CommandLaunch, Command: c.String(), Err: err}
	}

	return ParseCommandOutput(c.String(), stdout)
}

// ParseCommandOutput parses the stdout of an offset command, accepting both
// ±HHMM and ±HH:MM.
func ParseCommandOutput(command string, stdout []byte) (Offset, error) {
	if !utf8.Valid(stdout) {
		return UTC, &CommandError{Kind: CommandNonUTF8, Command: command}
	}

	o, err := Parse(string(stdout))
	if err != nil {
		return UTC, &CommandError{
			Kind:    CommandParse,
			Command: command,
			Output:  string(stdout),
			Err:     err,
		}
	}

	return o, nil
}
