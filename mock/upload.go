package mock

import (
	"context"
	"io"

	"github.com/fwojciec/blocks"
)

// Interface compliance check.
var _ blocks.ImageUploader = (*ImageUploader)(nil)

// ImageUploader is a test double for blocks.ImageUploader.
// Set AcceptFileFn before calling AcceptFile.
type ImageUploader struct {
	AcceptFileFn func(ctx context.Context, name string, r io.Reader) (string, error)
}

// AcceptFile delegates to AcceptFileFn.
func (u *ImageUploader) AcceptFile(ctx context.Context, name string, r io.Reader) (string, error) {
	return u.AcceptFileFn(ctx, name, r)
}
