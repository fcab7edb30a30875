package terminal_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpyw/utcoffset/internal/cli/terminal"
)

func TestWidth_NonFder(t *testing.T) {
	t.Parallel()

	// bytes.Buffer doesn't implement Fder
	var buf bytes.Buffer

	width, ok := terminal.Width(&buf)
	assert.False(t, ok)
	assert.Zero(t, width)
}

func TestIsTerminalWriter_NonFder(t *testing.T) {
	t.Parallel()

	// bytes.Buffer doesn't implement Fder, should return false
	var buf bytes.Buffer

	result := terminal.IsTerminalWriter(&buf)
	assert.False(t, result)
}
