// Package fs reads image files from disk and turns them into data URLs.
package fs

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/blocks"
)

// DefaultMaxBytes is the largest image ImageUploader accepts by default.
const DefaultMaxBytes = 10 << 20

// DefaultPattern matches the file names ImageUploader accepts by default.
const DefaultPattern = "*.{png,jpg,jpeg,gif,webp,svg}"

// ErrTooLarge indicates a file exceeds the uploader's size limit.
var ErrTooLarge = errors.New("file too large")

var _ blocks.ImageUploader = (*ImageUploader)(nil)

// ImageUploader implements blocks.ImageUploader. The zero value accepts
// DefaultPattern up to DefaultMaxBytes.
type ImageUploader struct {
	// Pattern is a doublestar pattern matched case-insensitively against
	// the base name of the file.
	Pattern string
	// MaxBytes caps the file size. 0 means DefaultMaxBytes.
	MaxBytes int64
}

// AcceptFile reads an image and returns it as a base64 data URL. Files whose
// name does not match Pattern, or whose content does not sniff as an image,
// are rejected with blocks.ErrNotImage.
func (u *ImageUploader) AcceptFile(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pattern := u.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return "", fmt.Errorf("invalid pattern %q", pattern)
	}
	base := strings.ToLower(filepath.Base(name))
	if ok, _ := doublestar.Match(strings.ToLower(pattern), base); !ok {
		return "", fmt.Errorf("%s: %w", name, blocks.ErrNotImage)
	}

	limit := u.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%s exceeds %d bytes: %w", name, limit, ErrTooLarge)
	}

	mime := sniff(base, data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s has type %s: %w", name, mime, blocks.ErrNotImage)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// AcceptPath opens path and passes it to AcceptFile.
func (u *ImageUploader) AcceptPath(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	return u.AcceptFile(ctx, path, f)
}

// sniff detects the MIME type of data. SVG is text to the content sniffer,
// so it is recognized by extension.
func sniff(name string, data []byte) string {
	if strings.HasSuffix(name, ".svg") && strings.Contains(string(data), "<svg") {
		return "image/svg+xml"
	}
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return mime
}
