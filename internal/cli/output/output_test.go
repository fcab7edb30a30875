package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_Field(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(&buf)

	w.Field("Offset", "+05:30")

	output := buf.String()
	assert.Contains(t, output, "Offset:")
	assert.Contains(t, output, "+05:30")
}

func TestWarning(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Warning(&buf, "test %s", "message")
	assert.Contains(t, buf.String(), "Warning:")
	assert.Contains(t, buf.String(), "test message")
}

func TestError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Error(&buf, "error %d", 42)
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "error 42")
}

func TestSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Success(&buf, "%s: %s", "native", "+09:00")
	assert.Contains(t, buf.String(), "✓")
	assert.Contains(t, buf.String(), "native: +09:00")
}

func TestFailed(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Failed(&buf, "command", assert.AnError)
	assert.Contains(t, buf.String(), "Failed")
	assert.Contains(t, buf.String(), "command")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestPrintln(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Println(&buf, "2024-03-01T14:05:09-08:00")
	assert.Equal(t, "2024-03-01T14:05:09-08:00\n", buf.String())
}

func TestPrintf(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Printf(&buf, "%s=%d", "hours", 9)
	assert.Equal(t, "hours=9", buf.String())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatText}, // Not case-insensitive
		{"text", FormatText},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			result := ParseFormat(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
