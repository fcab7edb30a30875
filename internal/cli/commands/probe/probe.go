// Package probe provides the probe command.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cliinternal "github.com/mpyw/utcoffset/internal/cli/commands/internal"
	"github.com/mpyw/utcoffset/internal/cli/output"
	"github.com/mpyw/utcoffset/internal/cli/terminal"
	"github.com/mpyw/utcoffset/internal/parallel"
	"github.com/mpyw/utcoffset/pkg/utcoffset"
)

// ErrNoSource is returned when every source failed.
var ErrNoSource = errors.New("no source could determine the offset")

// Runner executes the probe command.
type Runner struct {
	Sources []utcoffset.Source
	Logger  *zap.Logger
	Stdout  io.Writer
}

// Options holds the options for the probe command.
type Options struct {
	Output output.Format
}

// JSONEntry is one source in the JSON output of the probe command.
type JSONEntry struct {
	Source string `json:"source"`
	Offset string `json:"offset,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Command returns the probe command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Query every offset source and report each result",
		Description: `Run the host local zone query and the platform command side by side,
ignoring any explicit or cached offset, and report what each one returns.

Exits with an error when no source succeeds.

EXAMPLES:
  utcoffset probe                       Report every source
  utcoffset probe --output=json         Output as JSON
  utcoffset --timeout=2s probe          Give up on slow sources`,
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
		Sources: env.Resolver.Sources,
		Logger:  env.Logger,
		Stdout:  env.Stdout,
	}

	return r.Run(ctx, Options{Output: output.ParseFormat(cmd.String("output"))})
}

// Run executes the probe command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	results := parallel.Execute(ctx, r.Sources, func(ctx context.Context, s utcoffset.Source) (utcoffset.Offset, error) {
		return s.Offset(ctx)
	})

	entries := make([]JSONEntry, len(r.Sources))

	for i, s := range r.Sources {
		entries[i] = JSONEntry{Source: s.Name()}

		if err := results[i].Err; err != nil {
			r.Logger.Debug("source failed", zap.String("source", s.Name()), zap.Error(err))
			entries[i].Error = err.Error()

			continue
		}

		r.Logger.Debug("source resolved", zap.String("source", s.Name()), zap.Stringer("offset", results[i].Value))
		entries[i].Offset = results[i].Value.String()
	}

	if opts.Output == output.FormatJSON {
		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(entries); err != nil {
			return err
		}
	} else {
		r.printText(entries)
	}

	if lo.EveryBy(entries, func(e JSONEntry) bool { return e.Error != "" }) {
		return ErrNoSource
	}

	return nil
}

func (r *Runner) printText(entries []JSONEntry) {
	width, isTerminal := terminal.Width(r.Stdout)

	for _, e := range entries {
		if e.Error == "" {
			output.Success(r.Stdout, "%s: %s", e.Source, e.Offset)

			continue
		}

		msg := e.Error
		// Keep each failure on one terminal line: "Failed <source>: <msg>"
		if limit := width - len("Failed : ") - len(e.Source); isTerminal && limit > 3 {
			msg = lo.Ellipsis(msg, limit)
		}

		output.Failed(r.Stdout, e.Source, errors.New(msg))
	}
}
