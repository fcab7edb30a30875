// Package now provides the now command.
package now

import (
	"context"
	"encoding/json"
	"io"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cliinternal "github.com/mpyw/utcoffset/internal/cli/commands/internal"
	"github.com/mpyw/utcoffset/internal/cli/output"
	"github.com/mpyw/utcoffset/pkg/utcoffset"
)

// Runner executes the now command.
type Runner struct {
	Resolver *utcoffset.Resolver
	Logger   *zap.Logger
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the now command.
type Options struct {
	Output  output.Format
	Verbose bool
}

// JSONOutput represents the JSON output structure for the now command.
type JSONOutput struct {
	Timestamp string   `json:"timestamp"`
	Offset    string   `json:"offset"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Command returns the now command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "now",
		Usage: "Print the current local timestamp",
		Description: `Print the current time as YYYY-MM-DDTHH:MM:SS±HH:MM.

The offset comes from, in order: --offset / $UTCOFFSET, the config profile,
the host local zone, the platform command (date +%z or PowerShell), or UTC.

EXAMPLES:
  utcoffset now                         Print the local timestamp
  utcoffset --offset=+05:30 now         Print the timestamp at +05:30
  utcoffset now --output=json           Output as JSON
  utcoffset -v now                      Also report why lookups fell back`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	env, err := cliinternal.NewEnv(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := env.WithTimeout(ctx)
	defer cancel()

	r := &Runner{
		Resolver: env.Resolver,
		Logger:   env.Logger,
		Stdout:   env.Stdout,
		Stderr:   env.Stderr,
	}

	return r.Run(ctx, Options{
		Output:  output.ParseFormat(cmd.String("output")),
		Verbose: env.Verbose,
	})
}

// Run executes the now command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	o, errs := r.Resolver.Resolve(ctx)
	cliinternal.ReportSoftErrors(r.Logger, r.Stderr, errs, opts.Verbose)

	ts, err := r.Resolver.Formatter.FormatNow(o)
	if err != nil {
		return err
	}

	r.Logger.Debug("rendered timestamp", zap.String("timestamp", ts), zap.Stringer("offset", o))

	if opts.Output == output.FormatJSON {
		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(JSONOutput{
			Timestamp: ts,
			Offset:    o.String(),
			Warnings:  cliinternal.ErrorStrings(errs),
		})
	}

	output.Println(r.Stdout, ts)

	return nil
}
