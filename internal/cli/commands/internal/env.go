package internal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/mpyw/utcoffset/internal/cli/logging"
	"github.com/mpyw/utcoffset/internal/cli/terminal"
	"github.com/mpyw/utcoffset/internal/config"
	"github.com/mpyw/utcoffset/internal/osoffset"
	"github.com/mpyw/utcoffset/pkg/utcoffset"
)

// Global flag names.
const (
	FlagOffset  = "offset"
	FlagProfile = "profile"
	FlagConfig  = "config"
	FlagTimeout = "timeout"
	FlagColor   = "color"
	FlagDebug   = "debug"
	FlagVerbose = "verbose"
)

// GlobalFlags returns the flags shared by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagOffset,
			Usage:   "Use this offset instead of asking the OS ([+|-]HH[:]MM)",
			Sources: cli.EnvVars("UTCOFFSET"),
		},
		&cli.StringFlag{
			Name:    FlagProfile,
			Usage:   "Config profile to use",
			Sources: cli.EnvVars("UTCOFFSET_PROFILE"),
		},
		&cli.StringFlag{
			Name:  FlagConfig,
			Usage: "Path to the config file (default: $" + config.EnvConfigFile + " or the user config directory)",
		},
		&cli.DurationFlag{
			Name:  FlagTimeout,
			Usage: "Give up on OS lookups after this long (0 waits indefinitely)",
		},
		&cli.StringFlag{
			Name:  FlagColor,
			Usage: "Colorize output: auto, always or never",
		},
		&cli.BoolFlag{
			Name:  FlagDebug,
			Usage: "Write debug logs to stderr",
		},
		&cli.BoolFlag{
			Name:    FlagVerbose,
			Aliases: []string{"v"},
			Usage:   "Print fallback errors as warnings",
		},
	}
}

// Env holds the dependencies built from the global flags for one invocation.
type Env struct {
	Resolver *utcoffset.Resolver
	Logger   *zap.Logger
	Timeout  time.Duration
	Verbose  bool
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewEnv reads the global flags and the selected config profile.
//
// Each invocation gets its own cache. An explicit offset from --offset,
// $UTCOFFSET or the profile is stored in it before any command runs.
func NewEnv(cmd *cli.Command) (*Env, error) {
	root := cmd.Root()
	stdout := root.Writer
	stderr := lo.CoalesceOrEmpty(root.ErrWriter, root.Writer)

	if err := applyColor(cmd.String(FlagColor), stdout); err != nil {
		return nil, err
	}

	logger := logging.New(stderr, cmd.Bool(FlagDebug))

	path := lo.CoalesceOrEmpty(cmd.String(FlagConfig), config.DefaultPath())

	profile, err := config.Load(path, cmd.String(FlagProfile))
	if err != nil {
		return nil, err
	}

	cache := utcoffset.NewCache()

	switch explicit := cmd.String(FlagOffset); {
	case explicit != "":
		if err := cache.TrySetFromString(explicit); err != nil {
			return nil, fmt.Errorf("invalid --offset %q: %w", explicit, err)
		}
	case profile.Offset != nil:
		if err := cache.TrySet(*profile.Offset); err != nil {
			return nil, err
		}
	}

	timeout := profile.Timeout
	if cmd.IsSet(FlagTimeout) {
		timeout = cmd.Duration(FlagTimeout)
	}

	logger.Debug("configuration loaded",
		zap.String("config", path),
		zap.String("profile", profile.Name),
		zap.Duration("timeout", timeout),
		zap.Stringer("command", lo.Ternary(profile.Command.Name != "", profile.Command, osoffset.PlatformCommand())),
	)

	return &Env{
		Resolver: utcoffset.NewResolver(cache,
			utcoffset.NativeSource{},
			utcoffset.CommandSource{Command: profile.Command},
		),
		Logger:  logger,
		Timeout: timeout,
		Verbose: cmd.Bool(FlagVerbose),
		Stdout:  stdout,
		Stderr:  stderr,
	}, nil
}

// WithTimeout bounds ctx by the configured timeout, if any.
func (e *Env) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, e.Timeout)
}

// applyColor overrides color detection only when --color is given.
func applyColor(mode string, w io.Writer) error {
	switch mode {
	case "":
	case "auto":
		color.NoColor = !terminal.IsTerminalWriter(w)
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color %q: must be auto, always or never", mode)
	}

	return nil
}
