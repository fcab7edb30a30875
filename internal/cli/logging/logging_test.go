package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mpyw/utcoffset/internal/cli/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("debug enabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := logging.New(&buf, true)
		logger.Debug("resolved offset", zap.String("offset", "+09:00"))

		assert.Contains(t, buf.String(), "DEBUG")
		assert.Contains(t, buf.String(), "resolved offset")
		assert.Contains(t, buf.String(), "+09:00")
	})

	t.Run("debug disabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := logging.New(&buf, false)
		logger.Debug("resolved offset")
		logger.Error("still silent")

		assert.Empty(t, buf.String())
	})
}
