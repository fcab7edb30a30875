package osoffset_test

import (
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/utcoffset/internal/osoffset"
)

const goosWindows = "windows"

func TestPlatformCommand(t *testing.T) {
	t.Parallel()

	c := osoffset.PlatformCommand()
	if runtime.GOOS == goosWindows {
		assert.Equal(t, osoffset.PowerShellCommand, c)
	} else {
		assert.Equal(t, osoffset.DateCommand, c)
	}
}

func TestCommand_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "date +%z", osoffset.DateCommand.String())
	assert.Equal(t, "powershell -NoProfile -NonInteractive -Command Get-Date -Format K", osoffset.PowerShellCommand.String())
	assert.Equal(t, "true", osoffset.Command{Name: "true"}.String())
}

func TestRun(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == goosWindows {
		t.Skip("Skipping on Windows - requires Unix shell")
	}

	t.Run("captures stdout", func(t *testing.T) {
		t.Parallel()

		out, err := osoffset.Run(t.Context(), osoffset.Command{Name: "sh", Args: []string{"-c", "printf '+0900\\n'"}})
		require.NoError(t, err)
		assert.Equal(t, "+0900\n", string(out))
	})

	t.Run("non-zero exit", func(t *testing.T) {
		t.Parallel()

		_, err := osoffset.Run(t.Context(), osoffset.Command{Name: "sh", Args: []string{"-c", "echo oops >&2; exit 3"}})

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
		assert.Equal(t, "oops\n", string(exitErr.Stderr))
	})

	t.Run("missing executable", func(t *testing.T) {
		t.Parallel()

		_, err := osoffset.Run(t.Context(), osoffset.Command{Name: "utcoffset-command-that-does-not-exist"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, exec.ErrNotFound))
	})
}
