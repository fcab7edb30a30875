// Package offset provides the offset command.
package offset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cliinternal "github.com/mpyw/utcoffset/internal/cli/commands/internal"
	"github.com/mpyw/utcoffset/internal/cli/output"
	"github.com/mpyw/utcoffset/pkg/utcoffset"
)

// Runner executes the offset command.
type Runner struct {
	Resolver *utcoffset.Resolver
	Logger   *zap.Logger
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the offset command.
type Options struct {
	Output  output.Format
	Raw     bool
	Verbose bool
}

// JSONOutput represents the JSON output structure for the offset command.
type JSONOutput struct {
	Offset   string   `json:"offset"`
	Hours    int      `json:"hours"`
	Minutes  int      `json:"minutes"`
	Negative bool     `json:"negative"`
	Seconds  int      `json:"seconds"`
	Warnings []string `json:"warnings,omitempty"`
}

// Command returns the offset command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "offset",
		Usage: "Show the resolved UTC offset",
		Description: `Resolve the local UTC offset and show its components.

Use --raw to output only the ±HH:MM value (for piping/scripting).

EXAMPLES:
  utcoffset offset                      Show the offset with its components
  utcoffset offset --raw                Output only ±HH:MM
  utcoffset offset --output=json        Output as JSON`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Output the offset only without components (for piping)",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	outputFormat := output.ParseFormat(cmd.String("output"))
	raw := cmd.Bool("raw")

	if raw && outputFormat == output.FormatJSON {
		return fmt.Errorf("--raw and --output=json cannot be used together")
	}

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
		Output:  outputFormat,
		Raw:     raw,
		Verbose: env.Verbose,
	})
}

// Run executes the offset command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	o, errs := r.Resolver.Resolve(ctx)
	cliinternal.ReportSoftErrors(r.Logger, r.Stderr, errs, opts.Verbose)

	if opts.Raw {
		output.Println(r.Stdout, o.String())

		return nil
	}

	if opts.Output == output.FormatJSON {
		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(JSONOutput{
			Offset:   o.String(),
			Hours:    o.Hours(),
			Minutes:  o.Minutes(),
			Negative: o.IsNegative(),
			Seconds:  o.WholeMinutes() * 60,
			Warnings: cliinternal.ErrorStrings(errs),
		})
	}

	out := output.New(r.Stdout)
	out.Field("Offset", o.String())
	out.Field("Hours", strconv.Itoa(o.Hours()))
	out.Field("Minutes", strconv.Itoa(o.Minutes()))
	out.Field("Seconds", strconv.Itoa(o.WholeMinutes()*60))

	if errs.Len() > 0 {
		out.Field("Fallbacks", strconv.Itoa(errs.Len()))
	}

	return nil
}
