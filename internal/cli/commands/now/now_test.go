package now_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appcli "github.com/mpyw/utcoffset/internal/cli/commands"
	"github.com/mpyw/utcoffset/internal/cli/commands/now"
	"github.com/mpyw/utcoffset/internal/cli/output"
	"github.com/mpyw/utcoffset/pkg/utcoffset"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}\n$`)

type stubSource struct {
	offset utcoffset.Offset
	err    error
}

func (s stubSource) Name() string {
	return "stub"
}

func (s stubSource) Offset(_ context.Context) (utcoffset.Offset, error) {
	return s.offset, s.err
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 22, 5, 9, 0, time.UTC)
}

func newRunner(t *testing.T, sources ...utcoffset.Source) (*now.Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	resolver := utcoffset.NewResolver(utcoffset.NewCache(), sources...)
	resolver.Formatter = utcoffset.Formatter{Now: fixedClock}

	var stdout, stderr bytes.Buffer

	return &now.Runner{
		Resolver: resolver,
		Logger:   zap.NewNop(),
		Stdout:   &stdout,
		Stderr:   &stderr,
	}, &stdout, &stderr
}

func mustPair(t *testing.T, hours, minutes int) utcoffset.Offset {
	t.Helper()

	o, err := utcoffset.FromPair(hours, minutes)
	require.NoError(t, err)

	return o
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		r, stdout, stderr := newRunner(t, stubSource{offset: mustPair(t, -8, 0)})

		require.NoError(t, r.Run(t.Context(), now.Options{}))
		assert.Equal(t, "2024-03-01T14:05:09-08:00\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		r, stdout, _ := newRunner(t, stubSource{offset: mustPair(t, 5, 30)})

		require.NoError(t, r.Run(t.Context(), now.Options{Output: output.FormatJSON}))

		var got now.JSONOutput
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "2024-03-02T03:35:09+05:30", got.Timestamp)
		assert.Equal(t, "+05:30", got.Offset)
		assert.Empty(t, got.Warnings)
	})

	t.Run("fallback to utc with warnings", func(t *testing.T) {
		t.Parallel()

		r, stdout, stderr := newRunner(t, stubSource{err: errors.New("no zone")})

		require.NoError(t, r.Run(t.Context(), now.Options{Verbose: true}))
		assert.Equal(t, "2024-03-01T22:05:09+00:00\n", stdout.String())
		assert.Contains(t, stderr.String(), "Warning: no zone")
	})

	t.Run("json carries warnings", func(t *testing.T) {
		t.Parallel()

		r, stdout, stderr := newRunner(t, stubSource{err: errors.New("no zone")})

		require.NoError(t, r.Run(t.Context(), now.Options{Output: output.FormatJSON}))
		assert.Empty(t, stderr.String())

		var got now.JSONOutput
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, []string{"no zone"}, got.Warnings)
		assert.Equal(t, "+00:00", got.Offset)
	})

	t.Run("format error is returned", func(t *testing.T) {
		t.Parallel()

		r, stdout, _ := newRunner(t, stubSource{offset: mustPair(t, 1, 0)})
		r.Resolver.Formatter = utcoffset.Formatter{
			Now: func() time.Time { return time.Date(9999, 12, 31, 23, 30, 0, 0, time.UTC) },
		}

		err := r.Run(t.Context(), now.Options{})
		require.ErrorIs(t, err, utcoffset.ErrTimeFormat)
		assert.Empty(t, stdout.String())
	})
}

func TestCommand(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")

	t.Run("explicit offset", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer

		app := appcli.MakeApp()
		app.Writer = &stdout
		app.ErrWriter = &bytes.Buffer{}

		err := app.Run(t.Context(), []string{"utcoffset", "--config", missing, "--offset", "+06:00", "now"})
		require.NoError(t, err)
		assert.Regexp(t, timestampPattern, stdout.String())
		assert.Contains(t, stdout.String(), "+06:00")
	})

	t.Run("invalid offset", func(t *testing.T) {
		t.Parallel()

		app := appcli.MakeApp()
		app.Writer = &bytes.Buffer{}
		app.ErrWriter = &bytes.Buffer{}

		err := app.Run(t.Context(), []string{"utcoffset", "--config", missing, "--offset", "+25:00", "now"})
		require.ErrorIs(t, err, utcoffset.ErrInvalidOffsetString)
	})
}
