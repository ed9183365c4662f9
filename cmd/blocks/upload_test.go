package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUpload(t *testing.T) {
	t.Parallel()

	t.Run("single file prints a data URL", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "pic.png")
		require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

		var buf bytes.Buffer
		require.NoError(t, upload(context.Background(), &buf, path, zap.NewNop()))
		assert.True(t, strings.HasPrefix(buf.String(), "data:image/png;base64,"))
	})

	t.Run("directory prints every image and skips the rest", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), pngHeader, 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.png"), pngHeader, 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "fake.png"), []byte("not an image"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("text"), 0o600))

		var buf bytes.Buffer
		require.NoError(t, upload(context.Background(), &buf, dir, zap.NewNop()))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], filepath.Join(dir, "a.png")+"\tdata:image/png;base64,"))
		assert.True(t, strings.HasPrefix(lines[1], filepath.Join(dir, "nested", "b.png")+"\tdata:image/png;base64,"))
	})

	t.Run("directory matches image names in any case", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		photo := filepath.Join(dir, "PHOTO.PNG")
		require.NoError(t, os.WriteFile(photo, pngHeader, 0o600))

		var single bytes.Buffer
		require.NoError(t, upload(context.Background(), &single, photo, zap.NewNop()))

		var all bytes.Buffer
		require.NoError(t, upload(context.Background(), &all, dir, zap.NewNop()))
		assert.Equal(t, photo+"\t"+single.String(), all.String())
	})

	t.Run("rejected files are logged", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("text"), 0o600))
		core, logs := observer.New(zapcore.WarnLevel)

		var buf bytes.Buffer
		require.NoError(t, upload(context.Background(), &buf, dir, zap.New(core)))

		assert.Empty(t, buf.String())
		entries := logs.FilterMessage("skipped file").All()
		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Join(dir, "notes.txt"), entries[0].ContextMap()["path"])
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		err := upload(context.Background(), &bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.png"), zap.NewNop())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
