// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/mpyw/utcoffset/internal/cli/output"
	"github.com/mpyw/utcoffset/pkg/utcoffset"
)

// CommandNotFound is a shared handler for unknown subcommands.
// It displays the command help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
	output.Printf(w, "\nUnknown command: %s\n", command)
}

// ReportSoftErrors logs every soft error at debug level and, when verbose,
// prints each one as a warning on w.
func ReportSoftErrors(logger *zap.Logger, w io.Writer, errs utcoffset.Errors, verbose bool) {
	for _, err := range errs.All() {
		logger.Debug("offset resolution fallback", zap.Error(err))

		if verbose {
			output.Warning(w, "%v", err)
		}
	}
}

// ErrorStrings returns the message of every soft error.
func ErrorStrings(errs utcoffset.Errors) []string {
	return lo.Map(errs.All(), func(err error, _ int) string {
		return err.Error()
	})
}
