// Package commands provides the command-line interface for utcoffset.
package commands

import (
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/utcoffset/internal/cli/commands/internal"
	"github.com/mpyw/utcoffset/internal/cli/commands/now"
	"github.com/mpyw/utcoffset/internal/cli/commands/offset"
	"github.com/mpyw/utcoffset/internal/cli/commands/probe"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "utcoffset",
		Usage:   "Print local timestamps without a timezone database",
		Version: "0.1.0",
		Flags:   cliinternal.GlobalFlags(),
		Commands: []*cli.Command{
			now.Command(),
			offset.Command(),
			probe.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}

// App is the main CLI application.
var App = MakeApp()
