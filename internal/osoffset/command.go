// Package osoffset queries the operating system for the local UTC offset.
//
// It only gathers raw data (zone offsets, command output). Parsing and
// validation belong to the caller.
package osoffset

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/samber/lo"
)

const goosWindows = "windows"

// Command is an external program that prints the local UTC offset.
type Command struct {
	Name string
	Args []string
}

// String returns the command line as it would be typed in a shell.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

//nolint:gochecknoglobals // immutable command definitions
var (
	// DateCommand prints the offset as ±HHMM on Unix-like systems.
	DateCommand = Command{Name: "date", Args: []string{"+%z"}}

	// PowerShellCommand prints the offset as ±HH:MM on Windows.
	PowerShellCommand = Command{
		Name: "powershell",
		Args: []string{"-NoProfile", "-NonInteractive", "-Command", "Get-Date -Format K"},
	}
)

// PlatformCommand returns the command suitable for the running OS.
func PlatformCommand() Command {
	return lo.Ternary(runtime.GOOS == goosWindows, PowerShellCommand, DateCommand)
}

// RunFunc runs a command and returns its standard output.
// A non-zero exit status is reported as *exec.ExitError.
type RunFunc func(ctx context.Context, c Command) ([]byte, error)

// Run executes c and returns its standard output.
func Run(ctx context.Context, c Command) ([]byte, error) {
	//nolint:gosec // command comes from a fixed list or the caller's own configuration
	return exec.CommandContext(ctx, c.Name, c.Args...).Output()
}
