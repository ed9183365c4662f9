package zap_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/blocks/zap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty path is a no-op logger", func(t *testing.T) {
		t.Parallel()
		logger, err := zap.New("", true)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("writes json lines to the file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "logs", "blocks.log")
		logger, err := zap.New(path, false)
		require.NoError(t, err)

		logger.Info("split", uberzap.Int("index", 2))
		logger.Debug("hidden at info level")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "split", entry["msg"])
		assert.Equal(t, float64(2), entry["index"])
	})

	t.Run("debug enables debug entries", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "blocks.log")
		logger, err := zap.New(path, true)
		require.NoError(t, err)

		logger.Debug("drag start")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "drag start")
	})
}
