package blocks

import (
	"context"
	"io"
)

// ImageUploader turns an image file into a data URL for preview.
// Files that are not images are rejected with ErrNotImage.
type ImageUploader interface {
	AcceptFile(ctx context.Context, name string, r io.Reader) (dataURL string, err error)
}
